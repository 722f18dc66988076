// Package preview renders meshes to still images for a quick visual check of
// generated output.
package preview

import (
	"errors"
	"fmt"
	"image"
	"math"

	"sphere-stl/internal/mathutil"
	"sphere-stl/internal/stl"
)

// ErrEmptyMesh is returned when there is nothing to draw.
var ErrEmptyMesh = errors.New("preview: no faces to render")

// Options controls the camera and output size.
type Options struct {
	Size        int      // output edge length in pixels
	Supersample int      // render at Size*Supersample, then downsample
	Yaw         float64  // degrees around Y
	Pitch       float64  // degrees around X, applied after yaw
	Color       [3]uint8 // sRGB base color
}

// DefaultOptions is a 256px, 2× supersampled three-quarter view.
func DefaultOptions() Options {
	return Options{
		Size:        256,
		Supersample: 2,
		Yaw:         30,
		Pitch:       20,
		Color:       [3]uint8{170, 180, 200},
	}
}

// Render draws faces with an orthographic camera, flat shading and a z-buffer.
// The mesh is centered and scaled to fill the frame minus a margin.
func Render(faces []stl.Face, opts Options) (*image.NRGBA, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("preview: invalid size %d", opts.Size)
	}
	if opts.Supersample < 1 {
		opts.Supersample = 1
	}

	var tris []stl.Triangle
	for i, f := range faces {
		split, err := stl.Triangulate(f)
		if err != nil {
			return nil, fmt.Errorf("preview: face %d: %w", i, err)
		}
		tris = append(tris, split...)
	}
	if len(tris) == 0 {
		return nil, ErrEmptyMesh
	}

	R := mathutil.ViewMatrix(opts.Yaw, opts.Pitch)
	view := make([]stl.Triangle, len(tris))
	minV := mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	maxV := mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i, t := range tris {
		for c := 0; c < 3; c++ {
			v := R.MulVec3(t[c])
			view[i][c] = v
			for k := 0; k < 3; k++ {
				minV[k] = math.Min(minV[k], v[k])
				maxV[k] = math.Max(maxV[k], v[k])
			}
		}
	}

	renderSize := opts.Size * opts.Supersample
	center := mathutil.Midpoint(minV, maxV)
	span := math.Max(maxV[0]-minV[0], maxV[1]-minV[1])
	if span < 1e-6 {
		span = 1e-6
	}
	margin := float64(renderSize) * 0.06
	scale := (float64(renderSize) - 2*margin) / span
	half := float64(renderSize) / 2

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	for _, t := range view {
		n := t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
		if n.Len() < 1e-12 {
			continue
		}
		rgb := lc.shadeColor(opts.Color, lc.Shade(n.Normalize()))

		var screen [3]mathutil.Vec3
		for c := 0; c < 3; c++ {
			screen[c] = mathutil.Vec3{
				half + (t[c][0]-center[0])*scale,
				half - (t[c][1]-center[1])*scale,
				t[c][2],
			}
		}
		RasterizeTriangle(fb, screen, rgb)
	}

	if opts.Supersample > 1 {
		return Downsample(fb, opts.Size), nil
	}
	return fb.Image(), nil
}
