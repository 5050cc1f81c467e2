package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const webpQuality = 82

var ErrUnsupportedImage = errors.New("unsupported image")

// ToWebP decodes r, shrinks it to maxWidth keeping the aspect ratio and
// encodes the result as lossy WebP. Smaller images are not upscaled.
func ToWebP(r io.Reader, maxWidth int) ([]byte, image.Point, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, image.Point{}, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	img := resize(src, maxWidth)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, image.Point{}, fmt.Errorf("storage: encode webp: %w", err)
	}
	return buf.Bytes(), img.Bounds().Size(), nil
}

func resize(src image.Image, maxWidth int) image.Image {
	b := src.Bounds()
	if maxWidth <= 0 || b.Dx() <= maxWidth {
		return src
	}

	h := b.Dy() * maxWidth / b.Dx()
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
