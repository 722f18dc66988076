// Package sphere approximates the unit sphere by recursive subdivision of an octahedron.
package sphere

import "sphere-stl/internal/mathutil"

// Triangle holds three indices into a Mesh's vertex slice.
type Triangle [3]int

// Mesh is an indexed triangle mesh. Vertex order is the index space.
type Mesh struct {
	Vertices  []mathutil.Vec3
	Triangles []Triangle
}

var octahedronVertices = [6]mathutil.Vec3{
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
	{0, 0, 1},
	{0, 0, -1},
}

var octahedronTriangles = [8]Triangle{
	{0, 4, 2},
	{2, 4, 1},
	{1, 4, 3},
	{3, 4, 0},
	{0, 2, 5},
	{2, 1, 5},
	{1, 3, 5},
	{3, 0, 5},
}

// Octahedron returns a fresh copy of the level-1 seed mesh.
func Octahedron() Mesh {
	verts := octahedronVertices
	tris := octahedronTriangles
	return Mesh{Vertices: verts[:], Triangles: tris[:]}
}
