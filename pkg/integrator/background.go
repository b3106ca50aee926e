package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Background supplies the radiance for rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// SolidBackground returns the same color in every direction
type SolidBackground struct {
	Value core.Vec3
}

// NewSolidBackground creates a constant background
func NewSolidBackground(color core.Vec3) *SolidBackground {
	return &SolidBackground{Value: color}
}

// Color implements the Background interface
func (b *SolidBackground) Color(ray core.Ray) core.Vec3 {
	return b.Value
}

// GradientBackground blends vertically between two colors
type GradientBackground struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(top, bottom core.Vec3) *GradientBackground {
	return &GradientBackground{Top: top, Bottom: bottom}
}

// NewSkyBackground returns the classic white-to-blue sky gradient
func NewSkyBackground() *GradientBackground {
	return NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}

// Color returns a gradient color based on ray direction
func (b *GradientBackground) Color(ray core.Ray) core.Vec3 {
	// Normalize the ray direction to get consistent results
	unitDirection := ray.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return b.Bottom.Lerp(b.Top, t)
}
