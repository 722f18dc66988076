package sphere

// VertexArrayOnly returns the sphere at level as a flat x,y,z coordinate slice.
//
// Above level 1 the vertex array is flattened as stored, duplicates included.
// At level 1 the vertices are instead selected through the triangle index
// array, so the 6 octahedron vertices come back as 24 (8 triangles × 3).
// Callers rely on both shapes; do not unify them.
func VertexArrayOnly(level int) ([]float64, error) {
	m, err := CreateUnitSphere(level)
	if err != nil {
		return nil, err
	}

	if level > 1 {
		out := make([]float64, 0, 3*len(m.Vertices))
		for _, v := range m.Vertices {
			out = append(out, v[0], v[1], v[2])
		}
		return out, nil
	}

	out := make([]float64, 0, 9*len(m.Triangles))
	for _, t := range m.Triangles {
		for _, idx := range t {
			v := m.Vertices[idx]
			out = append(out, v[0], v[1], v[2])
		}
	}
	return out, nil
}
