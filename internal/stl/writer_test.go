package stl

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"sphere-stl/internal/mathutil"
)

// memFile is an in-memory io.WriteSeeker.
type memFile struct {
	data []byte
	off  int
}

func (m *memFile) Write(p []byte) (int, error) {
	end := m.off + len(p)
	if end > len(m.data) {
		m.data = append(m.data, make([]byte, end-len(m.data))...)
	}
	copy(m.data[m.off:], p)
	m.off = end
	return len(p), nil
}

func (m *memFile) Seek(offset int64, whence int) (int64, error) {
	var base int
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = m.off
	case io.SeekEnd:
		base = len(m.data)
	}
	n := base + int(offset)
	if n < 0 {
		return 0, errors.New("negative offset")
	}
	m.off = n
	return int64(n), nil
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

var (
	p1 = mathutil.Vec3{0, 0, 0}
	p2 = mathutil.Vec3{1, 0, 0}
	p3 = mathutil.Vec3{1, 1, 0}
	p4 = mathutil.Vec3{0, 1, 0}
)

func TestTriangulate(t *testing.T) {
	tests := []struct {
		name    string
		face    Face
		want    []Triangle
		wantErr bool
	}{
		{name: "triangle", face: Face{p1, p2, p3}, want: []Triangle{{p1, p2, p3}}},
		{name: "quad", face: Face{p1, p2, p3, p4}, want: []Triangle{{p1, p2, p3}, {p3, p4, p1}}},
		{name: "empty", face: Face{}, wantErr: true},
		{name: "two", face: Face{p1, p2}, wantErr: true},
		{name: "five", face: Face{p1, p2, p3, p4, p1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Triangulate(tt.face)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidFaceVertexCount) {
					t.Fatalf("err = %v, want ErrInvalidFaceVertexCount", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d triangles, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("triangle %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLayoutSizes(t *testing.T) {
	if got := HeaderLayout.Size(); got != 84 {
		t.Errorf("header size = %d, want 84", got)
	}
	if got := FacetLayout.Size(); got != 50 {
		t.Errorf("facet size = %d, want 50", got)
	}
	if got := FacetLayout.Offset("attribute"); got != 48 {
		t.Errorf("attribute offset = %d, want 48", got)
	}
	if got := HeaderLayout.Offset("missing"); got != -1 {
		t.Errorf("missing offset = %d, want -1", got)
	}
}

func TestInvalidFaceWritesNothing(t *testing.T) {
	t.Run("ascii", func(t *testing.T) {
		var buf bytes.Buffer
		w, err := NewASCIIWriter(&buf)
		if err != nil {
			t.Fatal(err)
		}
		before := buf.Len()
		for _, f := range []Face{{p1, p2}, {p1, p2, p3, p4, p1}} {
			if err := w.AddFace(f); !errors.Is(err, ErrInvalidFaceVertexCount) {
				t.Errorf("AddFace(%d verts) err = %v", len(f), err)
			}
		}
		if buf.Len() != before {
			t.Errorf("wrote %d bytes for invalid faces", buf.Len()-before)
		}
	})

	t.Run("binary", func(t *testing.T) {
		f := &memFile{}
		w, err := NewBinaryWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if err := w.AddFace(Face{p1, p2}); !errors.Is(err, ErrInvalidFaceVertexCount) {
			t.Errorf("err = %v", err)
		}
		if len(f.data) != 84 || w.Count() != 0 {
			t.Errorf("len = %d count = %d after invalid face", len(f.data), w.Count())
		}
	})
}

func TestAddFacesStopsAtFirstError(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewASCIIWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	err = w.AddFaces([]Face{{p1, p2, p3}, {p1}, {p1, p2, p3}})
	if !errors.Is(err, ErrInvalidFaceVertexCount) {
		t.Fatalf("err = %v", err)
	}
	if n := bytes.Count(buf.Bytes(), []byte("endfacet")); n != 1 {
		t.Errorf("facets written = %d, want 1", n)
	}
}

func TestWriterInterface(t *testing.T) {
	var _ MeshWriter = (*ASCIIWriter)(nil)
	var _ MeshWriter = (*BinaryWriter)(nil)
}
