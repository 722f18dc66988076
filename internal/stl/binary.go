package stl

import (
	"fmt"
	"io"
)

// BinaryWriter writes the binary STL variant.
//
// The facet count is unknown until Close, so the header is first written as a
// placeholder and patched at offset 0 once all facets are out. The sink must
// therefore implement io.WriteSeeker; this is checked at construction.
type BinaryWriter struct {
	w     io.WriteSeeker
	count uint32
	buf   []byte
}

// NewBinaryWriter checks that w can seek and writes the placeholder header.
func NewBinaryWriter(w io.Writer) (*BinaryWriter, error) {
	ws, ok := w.(io.WriteSeeker)
	if !ok {
		return nil, ErrNotSeekable
	}
	b := &BinaryWriter{
		w:   ws,
		buf: make([]byte, max(headerSize, facetSize)),
	}
	if err := b.writeHeader(); err != nil {
		return nil, err
	}
	return b, nil
}

// Count returns the number of facets written so far.
func (b *BinaryWriter) Count() uint32 {
	return b.count
}

// AddFace writes one facet for a triangle or two for a quad.
func (b *BinaryWriter) AddFace(face Face) error {
	tris, err := Triangulate(face)
	if err != nil {
		return err
	}
	for _, t := range tris {
		if err := b.write(t); err != nil {
			return err
		}
	}
	return nil
}

// AddFaces writes faces in order.
func (b *BinaryWriter) AddFaces(faces []Face) error {
	return addFaces(faces, b.AddFace)
}

// Close rewrites the header with the final facet count and leaves the stream
// positioned at its end. It does not close the underlying stream.
func (b *BinaryWriter) Close() error {
	if _, err := b.w.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("stl: seek to header: %w", err)
	}
	if err := b.writeHeader(); err != nil {
		return err
	}
	if _, err := b.w.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("stl: seek to end: %w", err)
	}
	return nil
}

func (b *BinaryWriter) writeHeader() error {
	encodeHeader(b.buf, BinaryIdentifier, b.count)
	if _, err := b.w.Write(b.buf[:headerSize]); err != nil {
		return fmt.Errorf("stl: write binary header: %w", err)
	}
	return nil
}

func (b *BinaryWriter) write(t Triangle) error {
	encodeFacet(b.buf, t)
	if _, err := b.w.Write(b.buf[:facetSize]); err != nil {
		return fmt.Errorf("stl: write facet %d: %w", b.count, err)
	}
	b.count++
	return nil
}
