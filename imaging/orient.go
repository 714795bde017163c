package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// Rotate90 returns src rotated 90 degrees clockwise.
func Rotate90(src image.Image) image.Image {
	rgba := toRGBA(src)
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetRGBA(h-1-y, x, rgba.RGBAAt(x, y))
		}
	}
	return dst
}

// Rotate180 returns src rotated 180 degrees.
func Rotate180(src image.Image) image.Image {
	rgba := toRGBA(src)
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetRGBA(w-1-x, h-1-y, rgba.RGBAAt(x, y))
		}
	}
	return dst
}

// Rotate270 returns src rotated 90 degrees counter-clockwise.
func Rotate270(src image.Image) image.Image {
	rgba := toRGBA(src)
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetRGBA(y, w-1-x, rgba.RGBAAt(x, y))
		}
	}
	return dst
}

// FlipH mirrors src horizontally.
func FlipH(src image.Image) image.Image {
	rgba := toRGBA(src)
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetRGBA(w-1-x, y, rgba.RGBAAt(x, y))
		}
	}
	return dst
}

// FlipV mirrors src vertically.
func FlipV(src image.Image) image.Image {
	rgba := toRGBA(src)
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetRGBA(x, h-1-y, rgba.RGBAAt(x, y))
		}
	}
	return dst
}

// toRGBA normalizes src to an RGBA image with bounds anchored at the
// origin.
func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}

	bounds := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Copy(dst, image.Point{}, src, bounds, draw.Src, nil)
	return dst
}
