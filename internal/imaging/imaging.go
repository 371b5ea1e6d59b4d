// Package imaging decodes uploaded eye images into 8-bit grayscale pixels.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"anarchyauth/internal/domain"
)

// AllowedExtensions lists accepted upload extensions, lowercase, without dot.
var AllowedExtensions = []string{"png", "jpg", "jpeg", "bmp", "tiff"}

// Extension returns the lowercase extension of filename without the dot.
func Extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// Allowed reports whether filename carries an accepted extension.
func Allowed(filename string) bool {
	ext := Extension(filename)
	for _, a := range AllowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

// DecodeGray decodes data and converts it to grayscale. Any decode failure,
// including an empty image, is reported as domain.ErrImageLoadFailed.
func DecodeGray(data []byte) (*image.Gray, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImageLoadFailed, err)
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty %s image", domain.ErrImageLoadFailed, format)
	}
	if g, ok := src.(*image.Gray); ok && g.Stride == b.Dx() {
		return g, nil
	}
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), src, b.Min, draw.Src)
	return gray, nil
}

// Pixels flattens img row-major into one byte per pixel.
func Pixels(img *image.Gray) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]byte, 0, w*h)
	for y := 0; y < h; y++ {
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		out = append(out, img.Pix[off:off+w]...)
	}
	return out
}
