// Package grid reads volumetric scalar grid files and turns them into faces.
package grid

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ungerik/go3d/float64/vec3"
)

// Header is the fixed-size prefix of a grid file.
type Header struct {
	Dim        int32    // number of spatial dimensions
	Size       [3]int32 // samples per axis, as stored
	Resolution vec3.T   // cell size per axis
	Low        vec3.T   // lower corner
	High       vec3.T   // upper corner
}

// Grid holds the samples after the column-major reshape and the (1,0,2) axis permutation.
type Grid struct {
	Header
	data []float64
}

// Load opens path and decodes it.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("grid: %s: %w", path, err)
	}
	return g, nil
}

// Decode reads a little-endian grid stream: int32 dim, int32×3 sizes,
// float64×3 resolution, float64×3 low corner, float64×3 high corner, then
// every remaining float64 as a sample.
func Decode(r io.Reader) (*Grid, error) {
	var raw struct {
		Dim        int32
		Size       [3]int32
		Resolution [3]float64
		Low        [3]float64
		High       [3]float64
	}
	if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	for k, n := range raw.Size {
		if n <= 0 {
			return nil, fmt.Errorf("axis %d has size %d", k, n)
		}
	}

	want := int(raw.Size[0]) * int(raw.Size[1]) * int(raw.Size[2])
	data := make([]float64, 0, want)
	var buf [8]byte
	for {
		_, err := io.ReadFull(r, buf[:])
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read sample %d: %w", len(data), err)
		}
		data = append(data, float64frombits(buf[:]))
	}
	if len(data) != want {
		return nil, fmt.Errorf("got %d samples, header says %d", len(data), want)
	}

	return &Grid{
		Header: Header{
			Dim:        raw.Dim,
			Size:       raw.Size,
			Resolution: vec3.T(raw.Resolution),
			Low:        vec3.T(raw.Low),
			High:       vec3.T(raw.High),
		},
		data: data,
	}, nil
}

// Dims returns the permuted shape: (Size[1], Size[0], Size[2]).
func (g *Grid) Dims() [3]int {
	return [3]int{int(g.Size[1]), int(g.Size[0]), int(g.Size[2])}
}

// At returns the sample at permuted index (i, j, k).
// Stored order is column-major over Size, and the first two axes are swapped.
func (g *Grid) At(i, j, k int) float64 {
	n0, n1 := int(g.Size[0]), int(g.Size[1])
	return g.data[j+n0*i+n0*n1*k]
}

// Len returns the number of samples.
func (g *Grid) Len() int {
	return len(g.data)
}

// Bounds returns the box spanned by the low and high corners.
func (g *Grid) Bounds() vec3.Box {
	return vec3.Box{Min: g.Low, Max: g.High}
}

// Extent returns High - Low.
func (g *Grid) Extent() vec3.T {
	return vec3.Sub(&g.High, &g.Low)
}
