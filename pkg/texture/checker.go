package texture

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Checker alternates between two textures in a 3D parity pattern
type Checker struct {
	Odd  Texture // Used where sin(10x)·sin(10y)·sin(10z) is negative
	Even Texture
}

// NewChecker creates a checker pattern over two child textures
func NewChecker(odd, even Texture) *Checker {
	return &Checker{Odd: odd, Even: even}
}

// NewCheckerColors creates a checker pattern over two solid colors
func NewCheckerColors(odd, even core.Vec3) *Checker {
	return NewChecker(NewSolidColor(odd), NewSolidColor(even))
}

// Evaluate picks the child texture from the sign of the sine product at point
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
