package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/texture"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

var logger = log.New("loaders")

// ImageData contains a decoded image as tightly packed 8-bit RGB triples, top row first
type ImageData struct {
	Width  int
	Height int
	Data   []byte
	Format string // Name of the decoder that read the image
}

// LoadImage loads a PNG, JPEG, BMP, TIFF or WebP image
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	data, err := DecodeImage(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return data, nil
}

// DecodeImage decodes any registered image format into RGB bytes
func DecodeImage(r io.Reader) (*ImageData, error) {
	// Decode image (auto-detects the format from its header)
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	data := make([]byte, 0, width*height*texture.BytesPerPixel)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], keep the high byte
			data = append(data, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Data:   data,
		Format: format,
	}, nil
}

// LoadImageTexture loads an image texture. A missing or unreadable file is not fatal:
// the error is logged and an empty texture, which renders solid cyan, is returned.
func LoadImageTexture(filename string) *texture.ImageTexture {
	data, err := LoadImage(filename)
	if err != nil {
		logger.Warningf("could not load texture image: %v", err)
		return texture.NewEmptyImageTexture()
	}

	tex, err := texture.NewImageTexture(data.Width, data.Height, data.Data)
	if err != nil {
		logger.Warningf("invalid texture image %s: %v", filename, err)
		return texture.NewEmptyImageTexture()
	}

	logger.Debugf("loaded %s texture %s (%dx%d)", data.Format, filename, data.Width, data.Height)
	return tex
}
