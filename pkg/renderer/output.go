package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Frame holds the accumulated samples of a render, row 0 at the top of the image
type Frame struct {
	Width, Height int
	Pixels        []PixelStats
}

// NewFrame allocates an empty frame
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]PixelStats, width*height),
	}
}

// At returns the stats of the pixel at column x, row y
func (f *Frame) At(x, y int) *PixelStats {
	return &f.Pixels[y*f.Width+x]
}

// quantize applies gamma 2 and maps a linear channel into [0, 255]
func quantize(linear float64) uint8 {
	if !(linear > 0) {
		return 0 // also catches NaN from a degenerate sample
	}
	return uint8(256 * math.Min(math.Sqrt(linear), 0.999))
}

// pixelColor converts the averaged pixel to 8-bit sRGB-ish values
func pixelColor(ps *PixelStats) (r, g, b uint8) {
	c := ps.GetColor()
	return quantize(c.X), quantize(c.Y), quantize(c.Z)
}

// ToImage converts the frame into an RGBA image
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := pixelColor(f.At(x, y))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// WritePPM writes the frame as a plain-text P3 image, top row first
func (f *Frame) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return fmt.Errorf("writing ppm header: %w", err)
	}

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := pixelColor(f.At(x, y))
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return fmt.Errorf("writing ppm pixel (%d, %d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing ppm: %w", err)
	}
	return nil
}

// WritePNG encodes the frame as a PNG image
func (f *Frame) WritePNG(w io.Writer) error {
	if err := png.Encode(w, f.ToImage()); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// Color returns the averaged linear color of a pixel
func (f *Frame) Color(x, y int) core.Vec3 {
	return f.At(x, y).GetColor()
}
