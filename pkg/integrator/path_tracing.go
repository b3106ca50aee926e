package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RayEpsilon is the minimum hit distance, keeping scattered rays off the surface they left
const RayEpsilon = 0.0001

// PathTracingIntegrator implements unidirectional path tracing.
// Paths are truncated at MaxDepth bounces rather than terminated by Russian roulette,
// which biases deep interreflections slightly dark.
type PathTracingIntegrator struct {
	Background Background
	MaxDepth   int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(background Background, maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		Background: background,
		MaxDepth:   maxDepth,
	}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Hittable, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, sampler, pt.MaxDepth)
}

func (pt *PathTracingIntegrator) rayColor(ray core.Ray, world core.Hittable, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, RayEpsilon, math.Inf(1), sampler)
	if !isHit {
		return pt.Background.Color(ray)
	}

	// Start with emitted light from the hit material
	colorEmitted := getEmittedLight(hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	incoming := pt.rayColor(scatter.Scattered, world, sampler, depth-1)
	return colorEmitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}

// getEmittedLight returns the light emitted at the hit point, or black for non-emissive materials
func getEmittedLight(hit *core.HitRecord) core.Vec3 {
	if emitter, isEmissive := hit.Material.(core.Emitter); isEmissive {
		return emitter.Emitted(hit.UV, hit.Point)
	}
	return core.Vec3{X: 0, Y: 0, Z: 0}
}
