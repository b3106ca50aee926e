package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/texture"
)

// NewSimpleScene creates two small diffuse spheres
func NewSimpleScene(opts Options) *Scene {
	camera := renderer.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, 1),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 1,
	}

	objects := []core.Hittable{
		geometry.NewSphere(core.NewVec3(-0.5, 0, 1), 0.1, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(0.5, 0, 1), 0.1, material.NewLambertian(core.NewVec3(0.3, 0.7, 0.3))),
	}

	return sceneSpec{camera: camera, objects: objects, background: skyBackground()}.build("simple", opts)
}

// NewRandomSpheresScene creates the random sphere field: a checkered ground, a grid of small
// diffuse (moving), metal and glass spheres, and three large feature spheres
func NewRandomSpheresScene(opts Options) *Scene {
	random := opts.random()
	randomColor := func(lo, hi float64) core.Vec3 {
		return core.NewVec3(
			lo+(hi-lo)*random.Float64(),
			lo+(hi-lo)*random.Float64(),
			lo+(hi-lo)*random.Float64(),
		)
	}

	checker := texture.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	objects := []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())

			// Keep clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// Diffuse, bouncing upwards during the shutter interval
				albedo := randomColor(0, 1).MultiplyVec(randomColor(0, 1))
				center2 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				objects = append(objects, geometry.NewMovingSphere(center, center2, Time0, Time1, 0.2,
					material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := randomColor(0.5, 1)
				fuzz := 0.5 * random.Float64()
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return sceneSpec{camera: outdoorCamera(), objects: objects, background: skyBackground()}.build("random_spheres", opts)
}

// NewTwoSpheresScene creates two large checkered spheres touching at the origin
func NewTwoSpheresScene(opts Options) *Scene {
	checker := texture.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	checkered := material.NewTexturedLambertian(checker)

	objects := []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checkered),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checkered),
	}

	return sceneSpec{camera: outdoorCamera(), objects: objects, background: skyBackground()}.build("two_spheres", opts)
}

// perlinSpheres returns a noise-textured ground and a sphere resting on it
func perlinSpheres(opts Options) []core.Hittable {
	noise := texture.NewNoiseTexture(texture.NewPerlin(opts.random()), 4)
	marble := material.NewTexturedLambertian(noise)

	return []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	}
}

// NewTwoPerlinSpheresScene creates Perlin-textured spheres
func NewTwoPerlinSpheresScene(opts Options) *Scene {
	return sceneSpec{camera: outdoorCamera(), objects: perlinSpheres(opts), background: skyBackground()}.
		build("two_perlin_spheres", opts)
}

// NewEarthScene creates a single globe with an image texture
func NewEarthScene(opts Options) *Scene {
	earth := loaders.LoadImageTexture(opts.texturePath())
	objects := []core.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earth)),
	}

	return sceneSpec{camera: outdoorCamera(), objects: objects, background: skyBackground()}.build("earth", opts)
}

// NewSimpleLightScene creates Perlin spheres lit by a rectangle and a sphere light
func NewSimpleLightScene(opts Options) *Scene {
	camera := renderer.CameraConfig{
		LookFrom:      core.NewVec3(26, 3, 6),
		LookAt:        core.NewVec3(0, 2, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 100,
	}

	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	objects := append(perlinSpheres(opts),
		geometry.NewXYRect(3, 5, 1, 3, -2, light),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
	)

	return sceneSpec{
		camera:     camera,
		objects:    objects,
		background: blackBackground(),
		sampling:   renderer.SamplingConfig{SamplesPerPixel: 400, MaxDepth: 50},
	}.build("simple_light", opts)
}

// NewBlackScreenScene creates an empty scene; every pixel is the black background
func NewBlackScreenScene(opts Options) *Scene {
	camera := renderer.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   16.0 / 9.0,
		FocusDistance: 1,
	}

	return sceneSpec{camera: camera, background: blackBackground()}.build("black_screen", opts)
}
