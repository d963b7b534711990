package molview

import (
	"github.com/gogpu/gg"

	"github.com/gogpu/molview/geom"
	"github.com/gogpu/molview/model"
)

// lineOffsets returns the perpendicular offsets of the parallel lines of a
// bond of the given order, for an on-screen bond length.
func lineOffsets(order model.BondOrder, length float64, cfg BondConfig) []float64 {
	switch order {
	case model.Double:
		d := cfg.TripleDist * length
		return []float64{-d / 2, d / 2}
	case model.Triple:
		d := cfg.TripleDist * length
		return []float64{-d, 0, d}
	case model.Quadruple:
		q := cfg.QuadDist * length
		return []float64{-1.5 * q, -0.5 * q, 0.5 * q, 1.5 * q}
	default:
		return []float64{0}
	}
}

// parallelLines returns l shifted by each offset.
func parallelLines(l geom.Line, offsets []float64) []geom.Line {
	lines := make([]geom.Line, len(offsets))
	for i, d := range offsets {
		lines[i] = l.Offset(d)
	}
	return lines
}

// wedge returns the triangle with its apex at l.Start and a base of the
// given width centred on l.End.
func wedge(l geom.Line, width float64) [3]gg.Point {
	n := l.Normal().Mul(width / 2)
	return [3]gg.Point{l.Start, l.End.Add(n), l.End.Sub(n)}
}

// hatch returns count rungs across l. Rung i sits at t = (i+1)/count and
// is t·width long, so the last rung spans the full width at l.End.
func hatch(l geom.Line, width float64, count int) []geom.Line {
	rungs := make([]geom.Line, 0, count)
	n := l.Normal()
	for i := 0; i < count; i++ {
		t := float64(i+1) / float64(count)
		c := l.PointAt(t)
		half := n.Mul(t * width / 2)
		rungs = append(rungs, geom.NewLine(c.Add(half), c.Sub(half)))
	}
	return rungs
}

// wave returns a zig-zag through l with the given amplitude and number of
// full waves. The first and last points are l's ends.
func wave(l geom.Line, amplitude float64, waves int) []gg.Point {
	steps := 2 * waves
	n := l.Normal().Mul(amplitude)
	pts := make([]gg.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		p := l.PointAt(float64(i) / float64(steps))
		switch {
		case i == 0 || i == steps:
		case i%2 == 1:
			p = p.Add(n)
		default:
			p = p.Sub(n)
		}
		pts = append(pts, p)
	}
	return pts
}
