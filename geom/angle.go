// Package geom provides the small amount of plane geometry needed to lay out
// bonds: angles between points, parallel offset lines and closed polygon
// paths built on gg.Path.
//
// # Angle conventions
//
// Angle returns degrees, because bond layout adds and subtracts right angles
// and keeps results in [0, 360). Line.Theta returns radians, matching the
// gg API. Angles are measured on raw coordinates, counter-clockwise from
// the positive x axis when the y axis points up (molecule space).
package geom

import (
	"math"

	"github.com/gogpu/gg"
)

// Angle returns the direction of the vector from a to b in degrees,
// normalised into [0, 360).
func Angle(a, b gg.Point) float64 {
	return StandardAngle(ToDegrees(math.Atan2(b.Y-a.Y, b.X-a.X)))
}

// StandardAngle normalises an angle in degrees into [0, 360).
func StandardAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// math.Mod of a tiny negative value can round up to exactly 360.
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Polar returns the offset of length radius in direction deg.
//
// The y component is negated: deg is measured in molecule space (y up) and
// the offset is added to screen coordinates (y down).
func Polar(radius, deg float64) gg.Point {
	rad := ToRadians(deg)
	return gg.Pt(radius*math.Cos(rad), -radius*math.Sin(rad))
}
