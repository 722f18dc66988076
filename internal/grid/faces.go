package grid

import (
	"github.com/ungerik/go3d/float64/vec3"

	"sphere-stl/internal/mathutil"
	"sphere-stl/internal/stl"
)

// CellBox returns the box covered by cell (i, j, k):
// [Low + (j, i, k)·Resolution, +Resolution]. The first permuted axis runs
// along y and the second along x.
func (g *Grid) CellBox(i, j, k int) vec3.Box {
	offset := vec3.T{
		float64(j) * g.Resolution[0],
		float64(i) * g.Resolution[1],
		float64(k) * g.Resolution[2],
	}
	lo := vec3.Add(&g.Low, &offset)
	return vec3.Box{Min: lo, Max: vec3.Add(&lo, &g.Resolution)}
}

// BoundaryFaces returns a blocky isosurface: one outward-wound quad for each
// side of an inside cell (sample < iso) whose neighbor is outside the grid or
// has a sample >= iso.
func (g *Grid) BoundaryFaces(iso float64) []stl.Face {
	dims := g.Dims()

	inside := func(i, j, k int) bool {
		if i < 0 || j < 0 || k < 0 || i >= dims[0] || j >= dims[1] || k >= dims[2] {
			return false
		}
		return g.At(i, j, k) < iso
	}

	var faces []stl.Face
	for k := 0; k < dims[2]; k++ {
		for i := 0; i < dims[0]; i++ {
			for j := 0; j < dims[1]; j++ {
				if !inside(i, j, k) {
					continue
				}
				box := g.CellBox(i, j, k)
				// spatial axis -> neighbor offset in (i, j, k)
				for ax, d := range [3][3]int{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}} {
					if !inside(i+d[0], j+d[1], k+d[2]) {
						faces = append(faces, cellFace(&box, ax, true))
					}
					if !inside(i-d[0], j-d[1], k-d[2]) {
						faces = append(faces, cellFace(&box, ax, false))
					}
				}
			}
		}
	}
	return faces
}

// cellFace returns the quad on the ax side of box, wound counter-clockwise
// when seen from outside.
func cellFace(box *vec3.Box, ax int, positive bool) stl.Face {
	u, v := (ax+1)%3, (ax+2)%3
	q0 := box.Min
	if positive {
		q0[ax] = box.Max[ax]
	}
	q1 := q0
	q1[u] = box.Max[u]
	q2 := q1
	q2[v] = box.Max[v]
	q3 := q0
	q3[v] = box.Max[v]
	if positive {
		return stl.Face{mathutil.Vec3(q0), mathutil.Vec3(q1), mathutil.Vec3(q2), mathutil.Vec3(q3)}
	}
	return stl.Face{mathutil.Vec3(q0), mathutil.Vec3(q3), mathutil.Vec3(q2), mathutil.Vec3(q1)}
}
