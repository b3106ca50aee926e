package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/texture"
)

const (
	finalGroundBoxesPerSide = 20
	finalClusterSpheres     = 1000
)

// NewFinalScene creates the showcase scene: a field of ground boxes of random height, a
// moving sphere, glass and metal spheres, a glass ball filled with blue smoke, thin global
// mist, the earth, a marble sphere and an instanced cluster of small spheres
func NewFinalScene(opts Options) *Scene {
	random := opts.random()

	// Ground boxes are grouped in their own hierarchy
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := make([]core.Hittable, 0, finalGroundBoxesPerSide*finalGroundBoxesPerSide)
	for i := 0; i < finalGroundBoxesPerSide; i++ {
		for j := 0; j < finalGroundBoxesPerSide; j++ {
			const w = 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := 1 + 100*random.Float64()
			boxes = append(boxes, geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}

	objects := []core.Hittable{
		geometry.NewBVH(boxes, Time0, Time1, core.NewSeededSampler(opts.Seed+2)),
		geometry.NewXZRect(123, 423, 147, 412, 554, material.NewDiffuseLight(core.NewVec3(7, 7, 7))),
	}

	// Motion blur
	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	objects = append(objects, geometry.NewMovingSphere(center1, center2, Time0, Time1, 50,
		material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// The same glass sphere is both a visible surface and the boundary of the smoke inside it
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	objects = append(objects,
		boundary,
		geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)),
	)

	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	objects = append(objects, geometry.NewConstantMedium(mist, 0.0001, core.NewVec3(1, 1, 1)))

	earth := loaders.LoadImageTexture(opts.texturePath())
	objects = append(objects, geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earth)))

	noise := texture.NewNoiseTexture(texture.NewPerlin(random), 0.1)
	objects = append(objects, geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(noise)))

	// Cluster of small spheres, built in local space and then instanced
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := make([]core.Hittable, 0, finalClusterSpheres)
	for i := 0; i < finalClusterSpheres; i++ {
		center := core.NewVec3(165*random.Float64(), 165*random.Float64(), 165*random.Float64())
		cluster = append(cluster, geometry.NewSphere(center, 10, white))
	}
	clusterBVH := geometry.NewBVH(cluster, Time0, Time1, core.NewSeededSampler(opts.Seed+3))
	objects = append(objects, geometry.NewTranslate(geometry.NewRotateY(clusterBVH, 15), core.NewVec3(-100, 270, 395)))

	camera := renderer.CameraConfig{
		LookFrom:      core.NewVec3(478, 278, -600),
		LookAt:        core.NewVec3(278, 278, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1.0,
		Aperture:      0.0,
		FocusDistance: 10,
	}

	return sceneSpec{
		camera:     camera,
		objects:    objects,
		background: blackBackground(),
		sampling:   renderer.SamplingConfig{SamplesPerPixel: 1000, MaxDepth: 50},
		width:      800,
	}.build("final", opts)
}
