package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// boundaryExitOffset separates the entry hit from the search for the exit hit
const boundaryExitOffset = 0.0001

// ConstantMedium is a volume of uniform density filling a closed boundary.
// The boundary must be convex: only the first entry and the following exit along a ray
// are considered, so a ray that leaves and re-enters a concave boundary sees the gap as filled.
type ConstantMedium struct {
	Boundary      core.Hittable
	PhaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium with a solid color phase function
func NewConstantMedium(boundary core.Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: material.NewIsotropic(albedo),
		negInvDensity: -1 / density,
	}
}

// Hit samples a free-flight distance and scatters inside the boundary if it is short enough
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, entry.T+boundaryExitOffset, math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	t0 := math.Max(entry.T, tMin)
	t1 := math.Min(exit.T, tMax)
	if t0 >= t1 {
		return nil, false
	}
	if t0 < 0 {
		t0 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t1 - t0) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t0 + hitDistance/rayLength
	return &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(0, 1, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
