package preview

import (
	"math"

	"sphere-stl/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters.
type LightConfig struct {
	LightDir mathutil.Vec3
	RimDir   mathutil.Vec3
	HalfMain mathutil.Vec3 // Blinn-Phong half-vector
	Ambient  float64
	Direct   float64
	Rim      float64
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64
}

// DefaultLightConfig returns a key light from the upper right and a dim rim light behind.
func DefaultLightConfig() LightConfig {
	lightDir := mathutil.Vec3{0.4, 0.6, 0.7}.Normalize()
	rimDir := mathutil.Vec3{-0.5, 0.3, -0.8}.Normalize()
	viewDir := mathutil.Vec3{0, 0, 1}

	return LightConfig{
		LightDir: lightDir,
		RimDir:   rimDir,
		HalfMain: lightDir.Add(viewDir).Normalize(),
		Ambient:  0.25,
		Direct:   0.95,
		Rim:      0.30,
		SpecInt:  0.35,
		SpecPow:  24,
		Exposure: 1.0,
		InvGamma: 1.0 / 2.2,
	}
}

// Shade returns the combined lighting scalar for a unit face normal.
// Faces are lit from both sides since mesh winding is not guaranteed.
func (lc *LightConfig) Shade(normal mathutil.Vec3) float64 {
	ndl := math.Abs(normal.Dot(lc.LightDir))
	ndlRim := math.Abs(normal.Dot(lc.RimDir))

	ndh := math.Abs(normal.Dot(lc.HalfMain))
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + ndl*lc.Direct + ndlRim*lc.Rim + spec
}

// Precomputed sRGB-to-linear lookup table.
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// shadeColor lights an sRGB base color and returns the tone-mapped sRGB result.
func (lc *LightConfig) shadeColor(base [3]uint8, shade float64) [3]uint8 {
	var out [3]uint8
	for c := 0; c < 3; c++ {
		lin := srgbToLinear[base[c]] * shade * lc.Exposure
		out[c] = clamp8(math.Pow(ACESTonemap(lin), lc.InvGamma) * 255)
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
