package geom

import "github.com/gogpu/gg"

// Quad returns the closed quadrilateral a → b → c → d → a.
func Quad(a, b, c, d gg.Point) *gg.Path {
	return Polygon(a, b, c, d)
}

// Polygon returns a closed path through pts.
// Fewer than three points enclose no area and yield an empty path.
func Polygon(pts ...gg.Point) *gg.Path {
	p := gg.NewPath()
	if len(pts) < 3 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	p.Close()
	return p
}

// Polyline returns an open path through pts.
func Polyline(pts ...gg.Point) *gg.Path {
	p := gg.NewPath()
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	return p
}

// Points returns the end points of every element of p, in order.
// Close elements contribute nothing.
func Points(p *gg.Path) []gg.Point {
	if p == nil {
		return nil
	}
	var pts []gg.Point
	for _, el := range p.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			pts = append(pts, e.Point)
		case gg.LineTo:
			pts = append(pts, e.Point)
		case gg.QuadTo:
			pts = append(pts, e.Point)
		case gg.CubicTo:
			pts = append(pts, e.Point)
		}
	}
	return pts
}

// IsClosed reports whether the last element of p closes its subpath.
func IsClosed(p *gg.Path) bool {
	if p == nil {
		return false
	}
	els := p.Elements()
	if len(els) == 0 {
		return false
	}
	_, ok := els[len(els)-1].(gg.Close)
	return ok
}
