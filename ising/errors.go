// File: errors.go — sentinel errors for the ising package.
//
// Error policy (mirrors core):
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; call sites attach context via %w.
//   - Structural errors from core (e.g. ErrEmptyNodeID) propagate
//     unwrapped — this package adds no translation layer for them.
package ising

import "errors"

var (
	// ErrMixedAttributeKeys indicates a named attribute map mixes node-id
	// keys and edge-pair keys (or contains keys of an unsupported type).
	// Call sites wrap it with the offending attribute name.
	ErrMixedAttributeKeys = errors.New("ising: attribute map mixes node and edge keys")

	// ErrNilGraph indicates WithGraph or AttachAttributes received a nil
	// target graph.
	ErrNilGraph = errors.New("ising: target graph is nil")

	// ErrEmptyAttributeName indicates an attribute option was constructed
	// with an empty name.
	ErrEmptyAttributeName = errors.New("ising: attribute name is empty")
)
