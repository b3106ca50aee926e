package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// rectPad extrudes a rectangle's bounding box along its flat axis so the box has volume
const rectPad = 0.0001

// AxisAlignedRect is a rectangle lying in a plane of constant coordinate along one axis.
// The in-plane axes are the other two, in increasing order (XY for Z, XZ for Y, YZ for X).
type AxisAlignedRect struct {
	Axis     int     // Axis the plane is perpendicular to: 0=X, 1=Y, 2=Z
	A0, A1   float64 // Extent along the first in-plane axis
	B0, B1   float64 // Extent along the second in-plane axis
	K        float64 // Plane coordinate along Axis
	Material core.Material

	axisA, axisB int
	normal       core.Vec3
}

// NewAxisAlignedRect creates a rectangle perpendicular to the given axis
func NewAxisAlignedRect(axis int, a0, a1, b0, b1, k float64, material core.Material) *AxisAlignedRect {
	r := &AxisAlignedRect{
		Axis:     axis,
		A0:       a0,
		A1:       a1,
		B0:       b0,
		B1:       b1,
		K:        k,
		Material: material,
	}

	switch axis {
	case 0:
		r.axisA, r.axisB = 1, 2
	case 1:
		r.axisA, r.axisB = 0, 2
	default:
		r.Axis = 2
		r.axisA, r.axisB = 0, 1
	}
	r.normal = core.Vec3{}.WithAxis(r.Axis, 1)

	return r
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, material core.Material) *AxisAlignedRect {
	return NewAxisAlignedRect(2, x0, x1, y0, y1, k, material)
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, material core.Material) *AxisAlignedRect {
	return NewAxisAlignedRect(1, x0, x1, z0, z1, k, material)
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, material core.Material) *AxisAlignedRect {
	return NewAxisAlignedRect(0, y0, y1, z0, z1, k, material)
}

// Hit tests if a ray crosses the rectangle's plane inside its extent
func (r *AxisAlignedRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	// A ray parallel to the plane yields ±Inf or NaN here and fails the range check below
	t := (r.K - ray.Origin.Axis(r.Axis)) / ray.Direction.Axis(r.Axis)
	if !(t >= tMin && t <= tMax) {
		return nil, false
	}

	a := ray.Origin.Axis(r.axisA) + t*ray.Direction.Axis(r.axisA)
	b := ray.Origin.Axis(r.axisB) + t*ray.Direction.Axis(r.axisB)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, r.normal)

	return hitRecord, true
}

// BoundingBox returns the rectangle padded by a small epsilon along its flat axis
func (r *AxisAlignedRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	min := core.Vec3{}.
		WithAxis(r.axisA, r.A0).
		WithAxis(r.axisB, r.B0).
		WithAxis(r.Axis, r.K-rectPad)
	max := core.Vec3{}.
		WithAxis(r.axisA, r.A1).
		WithAxis(r.axisB, r.B1).
		WithAxis(r.Axis, r.K+rectPad)
	return core.NewAABB(min, max), true
}
