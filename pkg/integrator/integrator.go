package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray from the world.
	// Implementations must be free of side effects so that samples can be traced concurrently.
	RayColor(ray core.Ray, world core.Hittable, sampler core.Sampler) core.Vec3
}
