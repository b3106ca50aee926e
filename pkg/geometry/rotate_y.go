package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RotateY rotates an object around the Y axis
type RotateY struct {
	Object   core.Hittable
	sinTheta float64
	cosTheta float64
	box      core.AABB
	hasBox   bool
}

// NewRotateY wraps an object rotated counter-clockwise by angle degrees around +Y
func NewRotateY(object core.Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
	r.box, r.hasBox = r.rotatedBox(0, 1)
	return r
}

// toObject rotates a world-space vector into object space
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates an object-space vector back into world space
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, delegates, and rotates the result back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	rotated := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, isHit := r.Object.Hit(rotated, tMin, tMax, sampler)
	if !isHit {
		return nil, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.SetFaceNormal(ray, r.toWorld(hit.OutwardNormal()))

	return hit, true
}

// BoundingBox encloses the rotated corners of the object's box
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if time0 == 0 && time1 == 1 {
		return r.box, r.hasBox
	}
	return r.rotatedBox(time0, time1)
}

func (r *RotateY) rotatedBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := r.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}

	corners := box.Corners()
	for i, corner := range corners {
		corners[i] = r.toWorld(corner)
	}
	return core.NewAABBFromPoints(corners[:]...), true
}
