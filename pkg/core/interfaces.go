package core

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Unit surface normal, always facing against the incoming ray
	T         float64  // Parameter t along the ray
	UV        Vec2     // Surface texture coordinates
	FrontFace bool     // Whether ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// OutwardNormal recovers the geometric normal that SetFaceNormal was given
func (h *HitRecord) OutwardNormal() Vec3 {
	if h.FrontFace {
		return h.Normal
	}
	return h.Normal.Negate()
}

// Hittable is anything a ray can intersect
type Hittable interface {
	// Hit returns the nearest intersection with t in [tMin, tMax].
	// The sampler is only consumed by stochastic surfaces such as participating media.
	Hit(ray Ray, tMin, tMax float64, sampler Sampler) (*HitRecord, bool)

	// BoundingBox returns a box enclosing the object over [time0, time1].
	// The boolean is false for unbounded objects.
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter returns false when the ray is absorbed
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(uv Vec2, point Vec3) Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}
