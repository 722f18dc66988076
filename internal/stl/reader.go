package stl

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"sphere-stl/internal/mathutil"
)

// ReadBinary decodes a binary STL stream. It returns the header identifier
// with trailing NUL and space padding removed, and the facets' vertices.
// Stored normals and attributes are ignored.
func ReadBinary(r io.Reader) (string, []Triangle, error) {
	buf := make([]byte, max(headerSize, facetSize))
	if _, err := io.ReadFull(r, buf[:headerSize]); err != nil {
		return "", nil, fmt.Errorf("stl: read header: %w", err)
	}
	ident := string(bytes.TrimRight(buf[identOff:identOff+identLen], "\x00 "))
	count := HeaderLayout.Order.Uint32(buf[facetsOff:])

	order := FacetLayout.Order
	tris := make([]Triangle, 0, min(count, 1<<16))
	for i := uint32(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf[:facetSize]); err != nil {
			return "", nil, fmt.Errorf("stl: read facet %d of %d: %w", i, count, err)
		}
		var t Triangle
		for v := 0; v < 3; v++ {
			var p mathutil.Vec3
			for k := 0; k < 3; k++ {
				p[k] = float64(math.Float32frombits(order.Uint32(buf[vertexOff[v]+4*k:])))
			}
			t[v] = p
		}
		tris = append(tris, t)
	}
	return ident, tris, nil
}
