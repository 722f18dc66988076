// Package stl writes triangle and quad meshes as ASCII or binary STL.
package stl

import (
	"errors"
	"fmt"

	"sphere-stl/internal/mathutil"
)

var (
	// ErrInvalidFaceVertexCount is returned when a face has neither 3 nor 4 vertices.
	ErrInvalidFaceVertexCount = errors.New("stl: face must have 3 or 4 vertices")

	// ErrNotSeekable is returned when a binary writer gets a sink it cannot seek.
	ErrNotSeekable = errors.New("stl: binary output must be seekable")
)

// Face is an ordered list of 3 or 4 literal vertices.
type Face []mathutil.Vec3

// Triangle is one physical facet: three vertices in winding order.
type Triangle [3]mathutil.Vec3

// MeshWriter is implemented by ASCIIWriter and BinaryWriter.
// Close must be called exactly once.
type MeshWriter interface {
	AddFace(face Face) error
	AddFaces(faces []Face) error
	Close() error
}

// Triangulate splits a face into the triangles written for it.
// Quads (p1,p2,p3,p4) become (p1,p2,p3) and (p3,p4,p1).
func Triangulate(face Face) ([]Triangle, error) {
	switch len(face) {
	case 3:
		return []Triangle{{face[0], face[1], face[2]}}, nil
	case 4:
		return []Triangle{
			{face[0], face[1], face[2]},
			{face[2], face[3], face[0]},
		}, nil
	default:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFaceVertexCount, len(face))
	}
}

// addFaces applies add to every face in order and stops at the first error.
func addFaces(faces []Face, add func(Face) error) error {
	for i, f := range faces {
		if err := add(f); err != nil {
			return fmt.Errorf("face %d: %w", i, err)
		}
	}
	return nil
}
