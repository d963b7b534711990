package molview

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// Scene is an in-memory Canvas that keeps elements in draw order.
// It can be rasterised onto a gg.Context or replayed into a
// recording.Recorder for export through any registered recording backend.
//
// Scene is not safe for concurrent use.
type Scene struct {
	// Background, when not fully transparent, is painted before the
	// elements by Draw and Record.
	Background gg.RGBA

	elems []*Element
}

var _ Canvas = (*Scene)(nil)

// NewScene creates an empty scene with a transparent background.
func NewScene() *Scene {
	return &Scene{}
}

// DrawPath implements Canvas. The path is cloned, so the caller may reuse p.
func (s *Scene) DrawPath(p *gg.Path, stroke *Stroke, fill *Fill) *Element {
	if p == nil {
		p = gg.NewPath()
	}
	e := &Element{Path: p.Clone(), Stroke: stroke, Fill: fill}
	s.elems = append(s.elems, e)
	return e
}

// Remove implements Canvas.
func (s *Scene) Remove(e *Element) bool {
	for i, x := range s.elems {
		if x == e {
			s.elems = append(s.elems[:i], s.elems[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of elements in the scene.
func (s *Scene) Len() int {
	return len(s.elems)
}

// Elements returns a copy of the elements in draw order.
func (s *Scene) Elements() []*Element {
	out := make([]*Element, len(s.elems))
	copy(out, s.elems)
	return out
}

// Reset removes all elements.
func (s *Scene) Reset() {
	s.elems = s.elems[:0]
}

// Draw rasterises the scene onto dc. Each element is filled first, then
// stroked, using dc's current transform.
func (s *Scene) Draw(dc *gg.Context) error {
	if s.Background.A > 0 {
		dc.ClearWithColor(s.Background)
	}
	for i, e := range s.elems {
		if e.Fill != nil && e.Fill.Color.A > 0 {
			dc.SetFillBrush(gg.Solid(e.Fill.Color))
			tracePath(dc, e.Path)
			if err := dc.Fill(); err != nil {
				return fmt.Errorf("element %d: fill: %w", i, err)
			}
		}
		if e.Stroke != nil && e.Stroke.Width > 0 {
			dc.SetStrokeBrush(gg.Solid(e.Stroke.Color))
			dc.SetLineWidth(e.Stroke.Width)
			tracePath(dc, e.Path)
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("element %d: stroke: %w", i, err)
			}
		}
	}
	return nil
}

// pathSink is the path-building subset shared by gg.Context and
// recording.Recorder.
type pathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
	ClearPath()
}

func tracePath(dst pathSink, p *gg.Path) {
	dst.ClearPath()
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			dst.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			dst.LineTo(e.Point.X, e.Point.Y)
		case gg.QuadTo:
			dst.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case gg.CubicTo:
			dst.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case gg.Close:
			dst.ClosePath()
		}
	}
}

// Record replays the scene into rec as fill and stroke commands.
func (s *Scene) Record(rec *recording.Recorder) {
	if s.Background.A > 0 {
		rec.ClearWithColor(s.Background)
	}
	for _, e := range s.elems {
		if e.Fill != nil && e.Fill.Color.A > 0 {
			rec.SetFillStyle(recording.NewSolidBrush(e.Fill.Color))
			tracePath(rec, e.Path)
			rec.Fill()
		}
		if e.Stroke != nil && e.Stroke.Width > 0 {
			rec.SetStrokeStyle(recording.NewSolidBrush(e.Stroke.Color))
			rec.SetLineWidth(e.Stroke.Width)
			tracePath(rec, e.Path)
			rec.Stroke()
		}
	}
}

// Recording records the scene on a width×height canvas.
func (s *Scene) Recording(width, height int) *recording.Recording {
	rec := recording.NewRecorder(width, height)
	s.Record(rec)
	return rec.FinishRecording()
}

// Export plays the scene back to a new instance of the named recording
// backend ("raster", "svg", ...) and returns it after End. The backend
// package must be imported for its registration to take effect.
func (s *Scene) Export(backend string, width, height int) (recording.Backend, error) {
	b, err := recording.NewBackend(backend)
	if err != nil {
		return nil, err
	}
	if err := s.Recording(width, height).Playback(b); err != nil {
		return nil, fmt.Errorf("molview: playback to %s backend: %w", backend, err)
	}
	Logger().Debug("molview: scene exported", "backend", backend, "elements", len(s.elems))
	return b, nil
}
