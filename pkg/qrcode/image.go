package qr

import (
	"bytes"
	"image"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

// Image is a rendered QR code.
type Image struct {
	*image.RGBA
}

func newImage(img image.Image) *Image {
	if rgba, ok := img.(*image.RGBA); ok {
		return &Image{RGBA: rgba}
	}
	return &Image{RGBA: gg.NewContextForImage(img).Image().(*image.RGBA)}
}

// Save writes the image as PNG.
func (i *Image) Save(path string) error {
	return gg.SavePNG(path, i.RGBA)
}

// PNG returns the PNG encoding of the image.
func (i *Image) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, i.RGBA); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Resize returns a copy scaled to size x size pixels. It returns i unchanged
// when size is not positive or already matches.
func (i *Image) Resize(size int) *Image {
	if size <= 0 || size == i.Bounds().Dx() {
		return i
	}
	return newImage(resize.Resize(uint(size), uint(size), i.RGBA, resize.Lanczos3))
}
