package stl

import (
	"encoding/binary"
	"math"
)

// Field is one fixed-width slot of a binary record.
type Field struct {
	Name  string
	Width int // bytes per element
	Count int // elements
}

// Size returns the field's total byte width.
func (f Field) Size() int { return f.Width * f.Count }

// Layout describes a fixed-size binary record: field order, widths, byte order.
type Layout struct {
	Order  binary.ByteOrder
	Fields []Field
}

// Size returns the record size in bytes.
func (l Layout) Size() int {
	n := 0
	for _, f := range l.Fields {
		n += f.Size()
	}
	return n
}

// Offset returns the byte offset of the named field, or -1.
func (l Layout) Offset(name string) int {
	off := 0
	for _, f := range l.Fields {
		if f.Name == name {
			return off
		}
		off += f.Size()
	}
	return -1
}

// HeaderLayout is the 84-byte binary STL header.
var HeaderLayout = Layout{
	Order: binary.LittleEndian,
	Fields: []Field{
		{Name: "identifier", Width: 1, Count: 80},
		{Name: "facets", Width: 4, Count: 1},
	},
}

// FacetLayout is the 50-byte binary STL facet record.
var FacetLayout = Layout{
	Order: binary.LittleEndian,
	Fields: []Field{
		{Name: "normal", Width: 4, Count: 3},
		{Name: "v0", Width: 4, Count: 3},
		{Name: "v1", Width: 4, Count: 3},
		{Name: "v2", Width: 4, Count: 3},
		{Name: "attribute", Width: 2, Count: 1},
	},
}

// BinaryIdentifier fills the 80-byte header text, NUL padded.
const BinaryIdentifier = "Python Binary STL Writer"

var (
	headerSize = HeaderLayout.Size()
	facetSize  = FacetLayout.Size()

	identOff     = HeaderLayout.Offset("identifier")
	identLen     = HeaderLayout.Fields[0].Size()
	facetsOff    = HeaderLayout.Offset("facets")
	normalOff    = FacetLayout.Offset("normal")
	vertexOff    = [3]int{FacetLayout.Offset("v0"), FacetLayout.Offset("v1"), FacetLayout.Offset("v2")}
	attributeOff = FacetLayout.Offset("attribute")
)

// encodeHeader fills buf (len >= headerSize) with the identifier and facet count.
func encodeHeader(buf []byte, ident string, count uint32) {
	clear(buf[:headerSize])
	if len(ident) > identLen {
		ident = ident[:identLen]
	}
	copy(buf[identOff:identOff+identLen], ident)
	HeaderLayout.Order.PutUint32(buf[facetsOff:], count)
}

// encodeFacet fills buf (len >= facetSize) with a zero normal, the triangle, and a zero attribute.
func encodeFacet(buf []byte, tri Triangle) {
	order := FacetLayout.Order
	for k := 0; k < 3; k++ {
		order.PutUint32(buf[normalOff+4*k:], 0)
	}
	for v := 0; v < 3; v++ {
		for k := 0; k < 3; k++ {
			order.PutUint32(buf[vertexOff[v]+4*k:], math.Float32bits(float32(tri[v][k])))
		}
	}
	order.PutUint16(buf[attributeOff:], 0)
}
