package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Box represents an axis-aligned cuboid made up of 6 rectangles
type Box struct {
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates a box spanning the two opposite corners
func NewBox(p0, p1 core.Vec3, material core.Material) *Box {
	bounds := core.NewAABBFromPoints(p0, p1)
	min, max := bounds.Min, bounds.Max

	sides := NewHittableList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, material),
		NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, material),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, material),
		NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, material),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, material),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, material),
	)

	return &Box{Min: min, Max: max, sides: sides}
}

// Hit delegates to the six sides
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the cuboid corners
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
