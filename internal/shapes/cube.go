// Package shapes holds small fixed meshes used as STL examples.
package shapes

import (
	"sphere-stl/internal/mathutil"
	"sphere-stl/internal/stl"
)

// Cube returns the six quad faces of an axis-aligned cube with one corner at
// the origin and edge length s.
func Cube(s float64) []stl.Face {
	p1 := mathutil.Vec3{0, 0, 0}
	p2 := mathutil.Vec3{0, 0, s}
	p3 := mathutil.Vec3{0, s, 0}
	p4 := mathutil.Vec3{0, s, s}
	p5 := mathutil.Vec3{s, 0, 0}
	p6 := mathutil.Vec3{s, 0, s}
	p7 := mathutil.Vec3{s, s, 0}
	p8 := mathutil.Vec3{s, s, s}

	return []stl.Face{
		{p1, p5, p7, p3},
		{p1, p5, p6, p2},
		{p5, p7, p8, p6},
		{p7, p8, p4, p3},
		{p1, p3, p4, p2},
		{p2, p6, p8, p4},
	}
}
