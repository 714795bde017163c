// Package imaging provides bitmap resizing, rotation and border
// trimming. Pixel work is delegated to golang.org/x/image/draw; this
// package only adds the geometry around it.
package imaging

import (
	"image"
	"math"

	"golang.org/x/image/draw"
)

// Resize scales src to exactly w×h using Catmull-Rom interpolation.
func Resize(src image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Fit downscales src to fit within maxW×maxH preserving aspect ratio.
// An image that already fits is returned unchanged; Fit never
// upscales.
func Fit(src image.Image, maxW, maxH int) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxW && h <= maxH {
		return src
	}

	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	dstW := int(math.Round(float64(w) * scale))
	dstH := int(math.Round(float64(h) * scale))
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	return Resize(src, dstW, dstH)
}

// Fill scales src to cover w×h and crops the overflow evenly on both
// sides, keeping the center.
func Fill(src image.Image, w, h int) image.Image {
	bounds := src.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()

	// crop the source to the target aspect ratio first, then scale
	cropW, cropH := srcW, srcH
	if srcW*h > w*srcH {
		cropW = srcH * w / h
	} else {
		cropH = srcW * h / w
	}

	crop := image.Rect(0, 0, cropW, cropH).
		Add(bounds.Min).
		Add(image.Pt((srcW-cropW)/2, (srcH-cropH)/2))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)
	return dst
}
