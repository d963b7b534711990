package molview

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/molview/geom"
	"github.com/gogpu/molview/model"
)

// BondRenderer draws bonds as lines, stereo wedges and hatches, and draws
// translucent highlight halos around selected bonds.
//
// Example:
//
//	scene := molview.NewScene()
//	br, err := molview.NewBondRenderer(scene, molview.WithTransform(view))
//	if err != nil {
//	    return err
//	}
//	drawn, err := br.RenderMolecule(mol, nil)
//	halo, err := br.HighlightOn(mol.Bonds[0], nil)
//	...
//	br.HighlightOff(halo)
type BondRenderer struct {
	*Renderer
}

// NewBondRenderer creates a BondRenderer drawing on c.
func NewBondRenderer(c Canvas, opts ...Option) (*BondRenderer, error) {
	r, err := NewRenderer(c, opts...)
	if err != nil {
		return nil, err
	}
	return &BondRenderer{Renderer: r}, nil
}

// Theta returns the bond's angle of elevation in radians, measured in
// model space from source to target.
func Theta(b *model.Bond) float64 {
	return b.Line().Theta()
}

// HasSymbol reports whether the atom's element symbol is drawn, and so
// whether bonds must stop short of it. Carbon is implicit unless it is a
// terminal atom.
func HasSymbol(a *model.Atom) bool {
	return a.Symbol != "C" || a.CountBonds() == 1
}

func checkBond(b *model.Bond) error {
	if b == nil || b.Source == nil || b.Target == nil {
		return ErrNilBond
	}
	return nil
}

// HighlightOn draws a halo around b in the configured highlight color.
// See HighlightOnColor.
func (r *BondRenderer) HighlightOn(b *model.Bond, elems *ElementArray) (*ElementArray, error) {
	return r.HighlightOnColor(b, r.config.Highlight.Color.RGBA(), elems)
}

// HighlightOnColor draws a halo around b: two closed quadrilaterals, one on
// each side of the bond, extending highlight.radius (scaled to the view)
// from the bond axis. They are filled with col at the configured highlight
// opacity and have no stroke.
//
// The new elements are appended to elems, or to a new array when elems is
// nil, and the array is returned.
func (r *BondRenderer) HighlightOnColor(b *model.Bond, col gg.RGBA, elems *ElementArray) (*ElementArray, error) {
	if err := checkBond(b); err != nil {
		return elems, err
	}
	if elems == nil {
		elems = NewElementArray()
	}

	angle := geom.Angle(b.Source.Coord, b.Target.Coord)
	up := geom.StandardAngle(angle + 90)
	down := geom.StandardAngle(angle - 90)

	radius := r.config.Highlight.Radius * r.ScaleX()
	coords := r.TransformCoords(b.Source.Coord, b.Target.Coord)
	source, target := coords[0], coords[1]

	upOffset := geom.Polar(radius, up)
	downOffset := geom.Polar(radius, down)

	fill := &Fill{Color: Color(col).WithAlpha(r.config.Highlight.Opacity)}

	elems.Add(r.canvas.DrawPath(
		geom.Quad(source, source.Add(upOffset), target.Add(upOffset), target), nil, fill))
	elems.Add(r.canvas.DrawPath(
		geom.Quad(source, source.Add(downOffset), target.Add(downOffset), target), nil, fill))

	Logger().Debug("molview: bond highlighted",
		"angle", angle, "radius", radius, "elements", elems.Len())
	return elems, nil
}

// HighlightOff removes the elements of a highlight from the canvas and
// returns how many were removed.
func (r *BondRenderer) HighlightOff(elems *ElementArray) int {
	if elems == nil {
		return 0
	}
	return elems.Clear(r.canvas)
}

// screenLine returns the on-screen segment of b, shortened at each end
// whose atom label is drawn.
func (r *BondRenderer) screenLine(b *model.Bond) (geom.Line, error) {
	l := b.Line().Transform(r.transform)
	if l.Length() == 0 {
		return l, ErrDegenerateBond
	}
	space := r.config.Bond.SymbolSpace * math.Abs(r.ScaleX())
	var startTrim, endTrim float64
	if HasSymbol(b.Source) {
		startTrim = space
	}
	if HasSymbol(b.Target) {
		endTrim = space
	}
	return l.Trim(startTrim, endTrim), nil
}

// Render draws b according to its order and stereo and appends the new
// elements to elems, or to a new array when elems is nil.
//
// Stereo is only honoured on single bonds; a multiple bond with a stereo
// flag is drawn as a plain multiple bond.
func (r *BondRenderer) Render(b *model.Bond, elems *ElementArray) (*ElementArray, error) {
	if err := checkBond(b); err != nil {
		return elems, err
	}
	if elems == nil {
		elems = NewElementArray()
	}

	l, err := r.screenLine(b)
	if err != nil {
		Logger().Warn("molview: bond not drawn", "source", b.Source.Symbol, "target", b.Target.Symbol, "err", err)
		return elems, fmt.Errorf("render %s bond %s-%s: %w", b.Order, b.Source.Symbol, b.Target.Symbol, err)
	}
	length := l.Length()
	if length == 0 {
		Logger().Debug("molview: bond hidden by atom labels", "source", b.Source.Symbol, "target", b.Target.Symbol)
		return elems, nil
	}

	cfg := r.config.Bond
	stroke := &Stroke{Width: cfg.Stroke.Width, Color: cfg.Stroke.Color.RGBA()}
	width := length / cfg.WidthRatio

	stereo := b.Stereo
	if b.Order != model.Single {
		stereo = model.NotStereo
	}

	switch stereo {
	case model.Up:
		pts := wedge(l, width)
		elems.Add(r.canvas.DrawPath(geom.Polygon(pts[:]...), nil, &Fill{Color: cfg.Fill.Color.RGBA()}))
	case model.Down:
		for _, rung := range hatch(l, width, cfg.HatchCount) {
			elems.Add(r.canvas.DrawPath(rung.Path(), stroke, nil))
		}
	case model.UpOrDown:
		elems.Add(r.canvas.DrawPath(geom.Polyline(wave(l, width/2, cfg.HatchCount)...), stroke, nil))
	default:
		for _, pl := range parallelLines(l, lineOffsets(b.Order, length, cfg)) {
			elems.Add(r.canvas.DrawPath(pl.Path(), stroke, nil))
		}
	}

	Logger().Debug("molview: bond drawn",
		"order", b.Order, "stereo", stereo, "length", length, "elements", elems.Len())
	return elems, nil
}

// RenderMolecule draws every bond of m in order. It stops at the first bond
// that cannot be drawn; elements drawn before it stay in elems.
func (r *BondRenderer) RenderMolecule(m *model.Molecule, elems *ElementArray) (*ElementArray, error) {
	if m == nil {
		return elems, ErrNilMolecule
	}
	if elems == nil {
		elems = NewElementArray()
	}
	for i, b := range m.Bonds {
		if _, err := r.Render(b, elems); err != nil {
			return elems, fmt.Errorf("bond %d: %w", i, err)
		}
	}
	return elems, nil
}
