package imaging

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/webp"
)

// Decode reads an image from r, detecting gif, jpeg, png and webp.
// It returns the decoded image and the format name.
func Decode(r io.Reader) (image.Image, string, error) {
	return image.Decode(r)
}
