package stl

import (
	"fmt"
	"io"
)

const (
	asciiHeader = "solid python\n"
	asciiFooter = "endsolid python\n"

	// Normals are always written as zero; they are never derived from geometry.
	asciiFacet = "facet normal 0 0 0\n" +
		"outer loop\n" +
		"vertex %.4f %.4f %.4f\n" +
		"vertex %.4f %.4f %.4f\n" +
		"vertex %.4f %.4f %.4f\n" +
		"endloop\n" +
		"endfacet\n"
)

// ASCIIWriter writes the text STL variant. Any io.Writer works as a sink.
type ASCIIWriter struct {
	w io.Writer
}

// NewASCIIWriter writes the solid header to w and returns the writer.
func NewASCIIWriter(w io.Writer) (*ASCIIWriter, error) {
	if _, err := io.WriteString(w, asciiHeader); err != nil {
		return nil, fmt.Errorf("stl: write ascii header: %w", err)
	}
	return &ASCIIWriter{w: w}, nil
}

// AddFace writes one facet for a triangle or two for a quad.
func (a *ASCIIWriter) AddFace(face Face) error {
	tris, err := Triangulate(face)
	if err != nil {
		return err
	}
	for _, t := range tris {
		if err := a.write(t); err != nil {
			return err
		}
	}
	return nil
}

// AddFaces writes faces in order.
func (a *ASCIIWriter) AddFaces(faces []Face) error {
	return addFaces(faces, a.AddFace)
}

// Close writes the endsolid footer. It does not close the underlying stream.
func (a *ASCIIWriter) Close() error {
	if _, err := io.WriteString(a.w, asciiFooter); err != nil {
		return fmt.Errorf("stl: write ascii footer: %w", err)
	}
	return nil
}

func (a *ASCIIWriter) write(t Triangle) error {
	_, err := fmt.Fprintf(a.w, asciiFacet,
		t[0][0], t[0][1], t[0][2],
		t[1][0], t[1][1], t[1][2],
		t[2][0], t[2][1], t[2][2],
	)
	if err != nil {
		return fmt.Errorf("stl: write ascii facet: %w", err)
	}
	return nil
}
