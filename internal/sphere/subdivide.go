package sphere

import (
	"errors"
	"fmt"

	"sphere-stl/internal/mathutil"
	"sphere-stl/internal/stl"
)

// MaxLevel is the deepest supported recursion level. Level 10 is already
// 2,097,152 triangles and 6,291,456 vertices.
const MaxLevel = 10

// ErrInvalidLevel is returned for recursion levels outside [1, MaxLevel].
var ErrInvalidLevel = errors.New("sphere: recursion level must be between 1 and 10")

// DivideAll splits every triangle of m into four and pushes the new midpoints
// onto the unit sphere. For a triangle (v0, v1, v2):
//
//	        v1
//	        /\          a = norm((v0+v2)/2)
//	       /  \         b = norm((v0+v1)/2)
//	     b/____\c       c = norm((v1+v2)/2)
//	     /\    /\
//	    /  \  /  \      children, in order:
//	   /____\/____\     [v0,b,a] [b,v1,c] [a,b,c] [a,c,v2]
//	 v0      a     v2
//
// Vertices are not shared between children or between neighboring parents:
// each parent contributes 12 fresh vertices and the result's triangles index
// them in order. m is not modified.
func DivideAll(m Mesh) Mesh {
	verts := make([]mathutil.Vec3, 0, 12*len(m.Triangles))
	for _, t := range m.Triangles {
		v0, v1, v2 := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		a := mathutil.Midpoint(v0, v2).Normalize()
		b := mathutil.Midpoint(v0, v1).Normalize()
		c := mathutil.Midpoint(v1, v2).Normalize()
		verts = append(verts,
			v0, b, a,
			b, v1, c,
			a, b, c,
			a, c, v2,
		)
	}

	tris := make([]Triangle, len(verts)/3)
	for i := range tris {
		tris[i] = Triangle{3 * i, 3*i + 1, 3*i + 2}
	}
	return Mesh{Vertices: verts, Triangles: tris}
}

// CreateUnitSphere subdivides the octahedron level-1 times.
// Level 1 is the octahedron itself.
func CreateUnitSphere(level int) (Mesh, error) {
	if level < 1 || level > MaxLevel {
		return Mesh{}, fmt.Errorf("%w: got %d", ErrInvalidLevel, level)
	}
	m := Octahedron()
	for i := 0; i < level-1; i++ {
		m = DivideAll(m)
	}
	return m, nil
}

// TriangleCount returns 8·4^(level-1), the number of triangles at level.
// It returns 0 for levels CreateUnitSphere rejects.
func TriangleCount(level int) int {
	if level < 1 || level > MaxLevel {
		return 0
	}
	return 8 << (2 * uint(level-1))
}

// Faces looks each triangle up by index and returns literal-vertex faces.
func (m Mesh) Faces() []stl.Face {
	faces := make([]stl.Face, len(m.Triangles))
	for i, t := range m.Triangles {
		faces[i] = stl.Face{m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]}
	}
	return faces
}
