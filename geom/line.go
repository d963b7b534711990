package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// Line is a directed segment from Start to End.
type Line struct {
	Start, End gg.Point
}

// NewLine creates a line between two points.
func NewLine(start, end gg.Point) Line {
	return Line{Start: start, End: end}
}

// Theta returns the angle of elevation of the line in radians, in (-π, π].
func (l Line) Theta() float64 {
	return math.Atan2(l.End.Y-l.Start.Y, l.End.X-l.Start.X)
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.Start.Distance(l.End)
}

// Midpoint returns the point halfway between Start and End.
func (l Line) Midpoint() gg.Point {
	return l.PointAt(0.5)
}

// PointAt returns the point at parameter t, where t=0 is Start and t=1 is End.
func (l Line) PointAt(t float64) gg.Point {
	return l.Start.Lerp(l.End, t)
}

// Direction returns the unit vector from Start to End.
// A zero-length line has a zero direction.
func (l Line) Direction() gg.Point {
	return l.End.Sub(l.Start).Normalize()
}

// Normal returns the unit normal obtained by rotating Direction a quarter
// turn counter-clockwise.
func (l Line) Normal() gg.Point {
	d := l.Direction()
	return gg.Pt(-d.Y, d.X)
}

// Offset returns the line shifted by d along its normal.
// Negative d shifts to the other side.
func (l Line) Offset(d float64) Line {
	n := l.Normal().Mul(d)
	return Line{Start: l.Start.Add(n), End: l.End.Add(n)}
}

// Trim shortens the line by startDist at Start and endDist at End.
// The ends are never moved past the midpoint, so an over-trimmed line
// collapses to a point instead of reversing.
func (l Line) Trim(startDist, endDist float64) Line {
	length := l.Length()
	if length == 0 {
		return l
	}
	half := length / 2
	startDist = math.Min(math.Max(startDist, 0), half)
	endDist = math.Min(math.Max(endDist, 0), half)
	return Line{
		Start: l.PointAt(startDist / length),
		End:   l.PointAt(1 - endDist/length),
	}
}

// Transform applies m to both ends of the line.
func (l Line) Transform(m gg.Matrix) Line {
	return Line{Start: m.TransformPoint(l.Start), End: m.TransformPoint(l.End)}
}

// Path returns an open two-point path along the line.
func (l Line) Path() *gg.Path {
	p := gg.NewPath()
	p.MoveTo(l.Start.X, l.Start.Y)
	p.LineTo(l.End.X, l.End.Y)
	return p
}
