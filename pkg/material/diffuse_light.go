package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emit texture.Texture // Emitted light color/intensity
}

// NewDiffuseLight creates a new light with a constant emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: texture.NewSolidColor(emission)}
}

// Scatter implements the Material interface for emissive materials
// Emissive materials don't scatter rays - they only emit light
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted returns the emitted light for this material
func (e *DiffuseLight) Emitted(uv core.Vec2, point core.Vec3) core.Vec3 {
	return e.Emit.Evaluate(uv, point)
}
