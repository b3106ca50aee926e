package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:        core.NewVec3(278, 278, 0),    // Look at the center of the box
		VUp:           core.NewVec3(0, 1, 0),        // Standard up direction
		VFov:          40.0,                         // Field of view
		AspectRatio:   1.0,                          // Square aspect ratio for Cornell box
		Aperture:      0.0,                          // No depth of field for Cornell box
		FocusDistance: 10.0,
	}
}

// cornellWalls returns the five walls of the box; the side facing the camera is open
func cornellWalls() []core.Hittable {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []core.Hittable{
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green), // Left wall
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),         // Right wall
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),       // Floor
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white), // Ceiling
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white), // Back wall
	}
}

// cornellBlocks returns the tall and short boxes, rotated and placed on the floor
func cornellBlocks(m core.Material) (tall, short core.Hittable) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), m)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), m)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))

	return tall, short
}

// NewCornellBoxScene creates a classic Cornell box scene lit by a ceiling light
func NewCornellBoxScene(opts Options) *Scene {
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	tall, short := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))

	objects := append(cornellWalls(),
		geometry.NewXZRect(213, 343, 227, 332, boxSize-1, light),
		tall,
		short,
	)

	return sceneSpec{
		camera:     cornellCamera(),
		objects:    objects,
		background: blackBackground(),
		sampling:   renderer.SamplingConfig{SamplesPerPixel: 200, MaxDepth: 50},
		width:      600,
	}.build("cornell_box", opts)
}

// NewCornellSmokeScene replaces the Cornell blocks with volumes of dark smoke and white fog
func NewCornellSmokeScene(opts Options) *Scene {
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	tall, short := cornellBlocks(material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73)))

	objects := append(cornellWalls(),
		geometry.NewXZRect(113, 443, 127, 432, boxSize-1, light),
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	return sceneSpec{
		camera:     cornellCamera(),
		objects:    objects,
		background: blackBackground(),
		sampling:   renderer.SamplingConfig{SamplesPerPixel: 200, MaxDepth: 50},
		width:      600,
	}.build("cornell_smoke", opts)
}
