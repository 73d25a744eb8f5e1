package viz

import "errors"

var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("viz: graph is nil")

	// ErrOptionViolation is returned when an invalid option value is supplied.
	ErrOptionViolation = errors.New("viz: invalid option value")

	// ErrLengthMismatch is returned by DrawSVG when a color slice is not
	// positionally aligned with the graph's node or edge enumeration.
	ErrLengthMismatch = errors.New("viz: color slice length does not match graph")

	// ErrMissingPosition is returned by DrawSVG when a node has no usable
	// coordinate in the supplied position map.
	ErrMissingPosition = errors.New("viz: node has no position")
)
