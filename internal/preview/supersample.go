package preview

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces the frame buffer to a targetSize square.
//
// Rasterized pixels are always opaque and untouched pixels are zero, so the
// color buffer is already premultiplied and can be scaled as RGBA directly.
func Downsample(fb *FrameBuffer, targetSize int) *image.NRGBA {
	if fb.Width <= targetSize && fb.Height <= targetSize {
		return fb.Image()
	}

	src := &image.RGBA{
		Pix:    fb.Color,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	// Edge pixels come out partially covered; undo the premultiply.
	result := image.NewNRGBA(dst.Bounds())
	for i := 0; i < len(dst.Pix); i += 4 {
		a := dst.Pix[i+3]
		if a == 0 {
			continue
		}
		for c := 0; c < 3; c++ {
			result.Pix[i+c] = uint8(min(255, (uint32(dst.Pix[i+c])*255+uint32(a)/2)/uint32(a)))
		}
		result.Pix[i+3] = a
	}
	return result
}
