// File: draw.go — SVG rendering of an Ising graph with bias coloring.
package viz

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/spinvane/isingviz/core"
)

// Drawing defaults.
const (
	DefaultCanvasWidth  = 640
	DefaultCanvasHeight = 640
	DefaultNodeRadius   = 12
	DefaultEdgeWidth    = 4

	// canvasPadding keeps nodes and the colorbar clear of the frame.
	canvasPadding = 48

	// colorbarSteps discretizes the legend gradient.
	colorbarSteps = 64
)

// DrawOption configures DrawSVG via functional arguments.
// An invalid option is recorded internally and surfaced when DrawSVG is
// invoked.
type DrawOption func(*drawConfig)

type drawConfig struct {
	width, height int
	nodeRadius    int
	edgeWidth     int
	scale         Scale
	vmin, vmax    float64
	boundsSet     bool
	colorbar      bool

	err error
}

func defaultDrawConfig() drawConfig {
	return drawConfig{
		width:      DefaultCanvasWidth,
		height:     DefaultCanvasHeight,
		nodeRadius: DefaultNodeRadius,
		edgeWidth:  DefaultEdgeWidth,
		scale:      Coolwarm(),
		colorbar:   true,
	}
}

// WithCanvasSize sets the output size in pixels (both > 0).
func WithCanvasSize(width, height int) DrawOption {
	return func(c *drawConfig) {
		if width <= 0 || height <= 0 {
			c.recordErr(fmt.Errorf("%w: canvas size must be positive (%dx%d)", ErrOptionViolation, width, height))

			return
		}
		c.width, c.height = width, height
	}
}

// WithNodeRadius sets the node circle radius in pixels (r > 0).
func WithNodeRadius(r int) DrawOption {
	return func(c *drawConfig) {
		if r <= 0 {
			c.recordErr(fmt.Errorf("%w: node radius must be positive (%d)", ErrOptionViolation, r))

			return
		}
		c.nodeRadius = r
	}
}

// WithEdgeWidth sets the edge stroke width in pixels (w > 0).
func WithEdgeWidth(w int) DrawOption {
	return func(c *drawConfig) {
		if w <= 0 {
			c.recordErr(fmt.Errorf("%w: edge width must be positive (%d)", ErrOptionViolation, w))

			return
		}
		c.edgeWidth = w
	}
}

// WithScale replaces the default Coolwarm color scale.
func WithScale(s Scale) DrawOption {
	return func(c *drawConfig) { c.scale = s }
}

// WithBounds overrides the symmetric color-scale bounds derived from the
// color arrays. Requires vmin < vmax.
func WithBounds(vmin, vmax float64) DrawOption {
	return func(c *drawConfig) {
		if vmin >= vmax {
			c.recordErr(fmt.Errorf("%w: bounds must satisfy vmin < vmax (%g, %g)", ErrOptionViolation, vmin, vmax))

			return
		}
		c.vmin, c.vmax, c.boundsSet = vmin, vmax, true
	}
}

// WithColorbar toggles the legend gradient (on by default).
func WithColorbar(enabled bool) DrawOption {
	return func(c *drawConfig) { c.colorbar = enabled }
}

func (c *drawConfig) recordErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

// DrawSVG renders g as an SVG document on w.
//
// nodeColors and edgeColors must align positionally with g.Nodes() and
// g.EdgeKeys() (the graph's sorted enumeration order — the same order
// callers feed to ColorMap). pos must supply at least two coordinates for
// every node; only the first two are drawn.
//
// Unless WithBounds overrides them, the color bounds are the shared
// zero-centered range from ColorRange, so node and edge colors sit on one
// scale. Loops are not stroked — their bias is already folded into the
// node color by ColorMap.
//
// Errors:
//   - ErrNilGraph, ErrLengthMismatch, ErrMissingPosition, and option
//     violations. Nothing is written to w on error.
//
// Complexity: O(V + E).
func DrawSVG(w io.Writer, g *core.Graph, pos map[string][]float64, nodeColors, edgeColors []float64, opts ...DrawOption) error {
	if g == nil {
		return ErrNilGraph
	}

	cfg := defaultDrawConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg.err
	}

	nodes := g.Nodes()
	edges := g.EdgeKeys()
	if len(nodeColors) != len(nodes) {
		return fmt.Errorf("%w: %d node colors for %d nodes", ErrLengthMismatch, len(nodeColors), len(nodes))
	}
	if len(edgeColors) != len(edges) {
		return fmt.Errorf("%w: %d edge colors for %d edges", ErrLengthMismatch, len(edgeColors), len(edges))
	}
	for _, id := range nodes {
		if len(pos[id]) < 2 {
			return fmt.Errorf("%w: %q", ErrMissingPosition, id)
		}
	}

	if !cfg.boundsSet {
		cfg.vmin, cfg.vmax = ColorRange(nodeColors, edgeColors)
	}

	px := project(nodes, pos, cfg)

	canvas := svg.New(w)
	canvas.Start(cfg.width, cfg.height)
	canvas.Title(g.Name())

	// Edges beneath nodes; loops carry no stroke of their own.
	for i, e := range edges {
		if e.IsLoop() {
			continue
		}
		u, v := px[e.U], px[e.V]
		canvas.Line(u[0], u[1], v[0], v[1],
			fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-linecap:round", cfg.scale.Hex(edgeColors[i], cfg.vmin, cfg.vmax), cfg.edgeWidth))
	}
	for i, id := range nodes {
		p := px[id]
		canvas.Circle(p[0], p[1], cfg.nodeRadius,
			fmt.Sprintf("fill:%s;stroke:#333333;stroke-width:1", cfg.scale.Hex(nodeColors[i], cfg.vmin, cfg.vmax)))
	}

	if cfg.colorbar {
		drawColorbar(canvas, cfg)
	}

	canvas.End()

	return nil
}

// project maps model coordinates into pixel space, preserving aspect by
// scaling each axis independently onto the padded frame. The colorbar
// margin on the right is reserved whether or not the legend is drawn, so
// toggling it never shifts the graph.
func project(nodes []string, pos map[string][]float64, cfg drawConfig) map[string][2]int {
	if len(nodes) == 0 {
		return map[string][2]int{}
	}

	minX, maxX := pos[nodes[0]][0], pos[nodes[0]][0]
	minY, maxY := pos[nodes[0]][1], pos[nodes[0]][1]
	for _, id := range nodes {
		p := pos[id]
		if p[0] < minX {
			minX = p[0]
		}
		if p[0] > maxX {
			maxX = p[0]
		}
		if p[1] < minY {
			minY = p[1]
		}
		if p[1] > maxY {
			maxY = p[1]
		}
	}

	frameW := float64(cfg.width - 3*canvasPadding) // left pad + right pad + colorbar margin
	frameH := float64(cfg.height - 2*canvasPadding)
	spanX := maxX - minX
	spanY := maxY - minY

	px := make(map[string][2]int, len(nodes))
	for _, id := range nodes {
		p := pos[id]
		tx, ty := 0.5, 0.5
		if spanX > 0 {
			tx = (p[0] - minX) / spanX
		}
		if spanY > 0 {
			ty = (p[1] - minY) / spanY
		}
		// SVG y grows downward; model y grows upward.
		px[id] = [2]int{
			canvasPadding + int(tx*frameW),
			canvasPadding + int((1-ty)*frameH),
		}
	}

	return px
}

// drawColorbar renders the vertical legend gradient with its bound labels,
// vmax on top.
func drawColorbar(canvas *svg.SVG, cfg drawConfig) {
	barW := canvasPadding / 3
	barH := cfg.height - 2*canvasPadding
	barX := cfg.width - canvasPadding - barW
	stepH := float64(barH) / float64(colorbarSteps)

	for i := 0; i < colorbarSteps; i++ {
		t := 1 - (float64(i)+0.5)/float64(colorbarSteps)
		y := canvasPadding + int(float64(i)*stepH)
		h := int(stepH) + 1 // overlap hides rounding seams
		canvas.Rect(barX, y, barW, h,
			fmt.Sprintf("fill:%s;stroke:none", cfg.scale.At(t).Hex()))
	}

	labelStyle := "font-size:11px;font-family:sans-serif;fill:#333333"
	canvas.Text(barX, canvasPadding-8, fmt.Sprintf("%.3g", cfg.vmax), labelStyle)
	canvas.Text(barX, cfg.height-canvasPadding+16, fmt.Sprintf("%.3g", cfg.vmin), labelStyle)
}
