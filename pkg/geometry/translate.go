package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Translate moves an object by a fixed offset
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
}

// NewTranslate wraps an object so that it appears shifted by offset
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit shifts the ray into object space, delegates, and shifts the hit point back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, isHit := t.Object.Hit(moved, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	hit.SetFaceNormal(ray, hit.OutwardNormal())

	return hit, true
}

// BoundingBox returns the object's box shifted by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(t.Offset), true
}
