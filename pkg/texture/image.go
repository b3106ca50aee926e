package texture

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
)

// BytesPerPixel is the layout of ImageTexture pixel buffers (8-bit R, G, B)
const BytesPerPixel = 3

// MissingImageColor is returned by image textures that have no pixel data
var MissingImageColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a decoded 2D image
type ImageTexture struct {
	width            int
	height           int
	data             []byte // Row-major RGB, row 0 is the top of the image
	bytesPerScanline int
}

// NewImageTexture wraps a decoded RGB buffer of width*height*3 bytes
func NewImageTexture(width, height int, data []byte) (*ImageTexture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(data) < width*height*BytesPerPixel {
		return nil, fmt.Errorf("image buffer holds %d bytes, need %d for %dx%d",
			len(data), width*height*BytesPerPixel, width, height)
	}

	return &ImageTexture{
		width:            width,
		height:           height,
		data:             data,
		bytesPerScanline: width * BytesPerPixel,
	}, nil
}

// NewEmptyImageTexture creates a texture without pixel data; it evaluates to MissingImageColor
func NewEmptyImageTexture() *ImageTexture {
	return &ImageTexture{}
}

// Empty reports whether the texture has no pixel data
func (t *ImageTexture) Empty() bool {
	return t.data == nil
}

// Size returns the image dimensions in pixels
func (t *ImageTexture) Size() (width, height int) {
	return t.width, t.height
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.data == nil {
		return MissingImageColor
	}

	// Clamp to [0,1] and flip V, since image row 0 is the top
	u := clampUnit(uv.X)
	v := 1.0 - clampUnit(uv.Y)

	x := int(u * float64(t.width))
	y := int(v * float64(t.height))

	// u or v of exactly 1 lands one past the last pixel
	if x >= t.width {
		x = t.width - 1
	}
	if y >= t.height {
		y = t.height - 1
	}

	const colorScale = 1.0 / 255.0
	pixel := y*t.bytesPerScanline + x*BytesPerPixel

	return core.NewVec3(
		float64(t.data[pixel])*colorScale,
		float64(t.data[pixel+1])*colorScale,
		float64(t.data[pixel+2])*colorScale,
	)
}

// clampUnit clamps x to [0,1], mapping NaN to 0
func clampUnit(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if !(x < 1) {
		return 1
	}
	return x
}
