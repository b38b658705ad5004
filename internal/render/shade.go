package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Sphere shading parameters: intensity falls off linearly with normalized
// radial distance, floored so the limb never goes fully black.
const (
	shadeFalloff = 0.7
	shadeFloor   = 0.3
)

// Intensity returns the shading multiplier at normalized radial distance d
// from the disc center.
func Intensity(d float64) float64 {
	i := 1.0 - shadeFalloff*d
	if i < shadeFloor {
		return shadeFloor
	}
	if i > 1.0 {
		return 1.0
	}
	return i
}

// Shade builds a lit sphere texture from a flat source image: pixels inside
// the inscribed disc are darkened toward the rim, pixels outside are fully
// transparent. Alpha inside the disc is preserved. This runs once per source
// image at load time, never per frame.
func Shade(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), src, bounds.Min, draw.Src)

	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	cx, cy := w/2, h/2

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			dx := (float64(x) - cx) / cx
			dy := (float64(y) - cy) / cy
			d := math.Sqrt(dx*dx + dy*dy)

			i := out.PixOffset(x, y)
			if d > 1.0 {
				out.Pix[i+0] = 0
				out.Pix[i+1] = 0
				out.Pix[i+2] = 0
				out.Pix[i+3] = 0
				continue
			}
			intensity := Intensity(d)
			out.Pix[i+0] = uint8(float64(out.Pix[i+0]) * intensity)
			out.Pix[i+1] = uint8(float64(out.Pix[i+1]) * intensity)
			out.Pix[i+2] = uint8(float64(out.Pix[i+2]) * intensity)
			// alpha untouched
		}
	}
	return out
}

// ShadedDisc synthesizes a shaded sphere texture from a flat color, used when
// a body has no source image or its image failed to load. Same intensity
// ramp as Shade, applied to the base color.
func ShadedDisc(diameter int, base color.RGBA) *image.RGBA {
	if diameter < 2 {
		diameter = 2
	}
	out := image.NewRGBA(image.Rect(0, 0, diameter, diameter))
	c := float64(diameter) / 2

	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter; x++ {
			dx := (float64(x) - c) / c
			dy := (float64(y) - c) / c
			d := math.Sqrt(dx*dx + dy*dy)
			if d > 1.0 {
				continue
			}
			intensity := Intensity(d)
			i := out.PixOffset(x, y)
			out.Pix[i+0] = uint8(float64(base.R) * intensity)
			out.Pix[i+1] = uint8(float64(base.G) * intensity)
			out.Pix[i+2] = uint8(float64(base.B) * intensity)
			out.Pix[i+3] = 0xFF
		}
	}
	return out
}
