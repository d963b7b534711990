package molview

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Renderer holds what every molecule renderer shares: the canvas it draws
// on, its style configuration and the model-to-screen transform.
//
// Renderer is not safe for concurrent use.
type Renderer struct {
	canvas    Canvas
	config    Config
	transform gg.Matrix
}

// NewRenderer creates a Renderer drawing on c.
// It returns ErrNilCanvas for a nil canvas and an error wrapping
// ErrInvalidConfig when the configured style does not validate.
func NewRenderer(c Canvas, opts ...Option) (*Renderer, error) {
	if c == nil {
		return nil, ErrNilCanvas
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(); err != nil {
		return nil, fmt.Errorf("molview: new renderer: %w", err)
	}
	return &Renderer{
		canvas:    c,
		config:    o.config,
		transform: o.transform,
	}, nil
}

// Canvas returns the canvas the renderer draws on.
func (r *Renderer) Canvas() Canvas {
	return r.canvas
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config {
	return r.config
}

// SetConfig validates and installs a new configuration.
func (r *Renderer) SetConfig(c Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	r.config = c
	return nil
}

// Transform returns the model-to-screen transform.
func (r *Renderer) Transform() gg.Matrix {
	return r.transform
}

// SetTransform replaces the model-to-screen transform.
func (r *Renderer) SetTransform(m gg.Matrix) {
	r.transform = m
}

// ScaleX returns the horizontal scale factor of the transform (its A term).
// View transforms are built from scale, y-flip and translation, for which
// this is the number of screen pixels per model unit.
func (r *Renderer) ScaleX() float64 {
	return r.transform.A
}

// TransformCoords maps model-space points to screen space.
func (r *Renderer) TransformCoords(pts ...gg.Point) []gg.Point {
	out := make([]gg.Point, len(pts))
	for i, p := range pts {
		out[i] = r.transform.TransformPoint(p)
	}
	return out
}

// FitTransform returns a transform that maps the model-space box
// [minPt, maxPt] into a width×height screen with the given margin, using a
// uniform scale, flipping y so model y points up, and centring the box.
// The scale never exceeds maxScale when maxScale > 0.
func FitTransform(minPt, maxPt gg.Point, width, height int, margin, maxScale float64) gg.Matrix {
	w := maxPt.X - minPt.X
	h := maxPt.Y - minPt.Y
	availW := float64(width) - 2*margin
	availH := float64(height) - 2*margin

	scale := maxScale
	if w > 0 && availW > 0 {
		scale = minPositive(scale, availW/w)
	}
	if h > 0 && availH > 0 {
		scale = minPositive(scale, availH/h)
	}
	if scale <= 0 {
		scale = 1
	}

	center := gg.Pt((minPt.X+maxPt.X)/2, (minPt.Y+maxPt.Y)/2)
	return gg.Translate(float64(width)/2, float64(height)/2).
		Multiply(gg.Scale(scale, -scale)).
		Multiply(gg.Translate(-center.X, -center.Y))
}

// minPositive returns the smaller of a and b, treating a non-positive a as
// unset.
func minPositive(a, b float64) float64 {
	if a <= 0 || b < a {
		return b
	}
	return a
}
