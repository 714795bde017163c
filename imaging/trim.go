package imaging

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/anfomin/helperscore/mathutil"
)

// Trim crops the uniform border of src. The border color is taken
// from the top-left pixel; a pixel counts as border when every
// channel is within tolerance of it. A fully uniform image is
// returned unchanged.
func Trim(src image.Image, tolerance uint8) image.Image {
	rgba := toRGBA(src)
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()
	if w == 0 || h == 0 {
		return src
	}

	border := rgba.RGBAAt(0, 0)
	isBorder := func(x, y int) bool {
		c := rgba.RGBAAt(x, y)
		return within(c.R, border.R, tolerance) &&
			within(c.G, border.G, tolerance) &&
			within(c.B, border.B, tolerance) &&
			within(c.A, border.A, tolerance)
	}

	rowUniform := func(y int) bool {
		for x := 0; x < w; x++ {
			if !isBorder(x, y) {
				return false
			}
		}
		return true
	}
	colUniform := func(x, top, bottom int) bool {
		for y := top; y < bottom; y++ {
			if !isBorder(x, y) {
				return false
			}
		}
		return true
	}

	top := 0
	for top < h && rowUniform(top) {
		top++
	}
	if top == h {
		return src
	}

	bottom := h
	for bottom > top && rowUniform(bottom-1) {
		bottom--
	}

	left := 0
	for left < w && colUniform(left, top, bottom) {
		left++
	}
	right := w
	for right > left && colUniform(right-1, top, bottom) {
		right--
	}

	if left == 0 && top == 0 && right == w && bottom == h {
		return src
	}

	crop := image.Rect(left, top, right, bottom)
	dst := image.NewRGBA(image.Rect(0, 0, crop.Dx(), crop.Dy()))
	draw.Copy(dst, image.Point{}, rgba, crop, draw.Src, nil)
	return dst
}

func within(a, b, tolerance uint8) bool {
	return mathutil.Abs(int(a)-int(b)) <= int(tolerance)
}
