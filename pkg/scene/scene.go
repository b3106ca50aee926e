package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var logger = log.New("scene")

// Shutter interval shared by every built-in scene
const (
	Time0 = 0.0
	Time1 = 1.0
)

// DefaultTexturePath is the earth map used when Options.TexturePath is empty
const DefaultTexturePath = "earthmap.jpg"

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	World          core.Hittable // Root of the scene graph, a BVH unless the scene is empty
	Background     integrator.Background
	SamplingConfig renderer.SamplingConfig
	Width          int // Recommended image width
	BVHStats       geometry.BVHStats
}

// Options configures scene construction
type Options struct {
	Seed        int64  // Seed for random scene content and BVH axis choices
	TexturePath string // Image used by scenes with an earth texture
}

func (o Options) texturePath() string {
	if o.TexturePath == "" {
		return DefaultTexturePath
	}
	return o.TexturePath
}

func (o Options) random() *rand.Rand {
	return rand.New(rand.NewSource(o.Seed))
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera { return s.Camera }

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() core.Hittable { return s.World }

// GetBackground implements renderer.Scene
func (s *Scene) GetBackground() integrator.Background { return s.Background }

// GetSamplingConfig implements renderer.Scene
func (s *Scene) GetSamplingConfig() renderer.SamplingConfig { return s.SamplingConfig }

// Height returns the image height matching the camera aspect ratio for the given width
func (s *Scene) Height(width int) int {
	return max(1, int(float64(width)/s.CameraConfig.AspectRatio))
}

// sceneSpec is the raw description a scene builder fills in
type sceneSpec struct {
	camera     renderer.CameraConfig
	objects    []core.Hittable
	background integrator.Background
	sampling   renderer.SamplingConfig
	width      int
}

// build wraps the objects in a BVH and assembles the scene
func (spec sceneSpec) build(name string, opts Options) *Scene {
	spec.camera.Time0, spec.camera.Time1 = Time0, Time1
	if spec.sampling.SamplesPerPixel == 0 {
		spec.sampling = renderer.DefaultSamplingConfig()
	}
	if spec.width == 0 {
		spec.width = 400
	}

	s := &Scene{
		Name:           name,
		Camera:         renderer.NewCamera(spec.camera),
		CameraConfig:   spec.camera,
		Background:     spec.background,
		SamplingConfig: spec.sampling,
		Width:          spec.width,
	}

	if len(spec.objects) == 0 {
		s.World = geometry.NewHittableList()
		logger.Infof("scene %s is empty", name)
		return s
	}

	// The BVH draws split axes from its own generator so that scene content does not
	// depend on how many nodes the tree has
	bvh := geometry.NewBVH(spec.objects, Time0, Time1, core.NewSeededSampler(opts.Seed+1))
	s.World = bvh
	s.BVHStats = bvh.Stats()

	logger.Infof("scene %s: %d objects, %d BVH nodes, max depth %d",
		name, s.BVHStats.Primitives, s.BVHStats.TotalNodes, s.BVHStats.MaxDepth)
	return s
}

// skyBackground is the white to light blue gradient used by the outdoor scenes
func skyBackground() integrator.Background {
	return integrator.NewSkyBackground()
}

// blackBackground is used by scenes lit only by emitters
func blackBackground() integrator.Background {
	return integrator.NewSolidBackground(core.NewVec3(0, 0, 0))
}

// outdoorCamera is the camera shared by the sphere showcase scenes
func outdoorCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 10,
	}
}
