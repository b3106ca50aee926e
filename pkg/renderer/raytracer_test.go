package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

// MockScene implements Scene for testing
type MockScene struct {
	camera     *Camera
	world      core.Hittable
	background integrator.Background
	config     SamplingConfig
}

func (m MockScene) GetCamera() *Camera                   { return m.camera }
func (m MockScene) GetWorld() core.Hittable              { return m.world }
func (m MockScene) GetBackground() integrator.Background { return m.background }
func (m MockScene) GetSamplingConfig() SamplingConfig    { return m.config }

func newSphereScene(spp int) MockScene {
	config := testCameraConfig()
	config.AspectRatio = 1
	config.VFov = 60

	sphere := geometry.NewSphere(core.NewVec3(0, 0, -3), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	world := geometry.NewBVH([]core.Hittable{sphere}, 0, 1, core.NewSeededSampler(1))

	return MockScene{
		camera:     NewCamera(config),
		world:      world,
		background: integrator.NewSkyBackground(),
		config:     SamplingConfig{SamplesPerPixel: spp, MaxDepth: 10},
	}
}

func TestRaytracer_LambertianSphereAgainstGradient(t *testing.T) {
	scene := newSphereScene(64)
	const size = 15

	frame, stats, err := NewRaytracer(scene, Options{Width: size, Height: size, TileSize: 4, NumWorkers: 2, Seed: 1}).
		Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.TotalPixels != size*size || stats.TotalSamples != size*size*64 {
		t.Errorf("Unexpected stats %+v", stats)
	}

	// The sphere sits in the middle of the frame and is darker than the sky behind it
	centerRay := scene.camera.RayAt(0.5, 0.5, core.NewVec2(0.5, 0.5), 0)
	sphereColor := frame.Color(size/2, size/2)
	skyColor := scene.background.Color(centerRay)
	if sphereColor.Luminance() >= skyColor.Luminance() {
		t.Errorf("Expected sphere %v darker than background %v", sphereColor, skyColor)
	}

	// Corner rays miss the sphere's box and return the background exactly
	integ := integrator.NewPathTracingIntegrator(scene.background, 10)
	cornerRay := scene.camera.RayAt(0, 1, core.NewVec2(0.5, 0.5), 0)
	if got, want := integ.RayColor(cornerRay, scene.world, core.NewSeededSampler(1)), scene.background.Color(cornerRay); got != want {
		t.Errorf("Expected background %v for a corner ray, got %v", want, got)
	}
}

func TestRaytracer_DeterministicAcrossWorkerCounts(t *testing.T) {
	scene := newSphereScene(4)

	render := func(workers int) *Frame {
		frame, _, err := NewRaytracer(scene, Options{Width: 12, Height: 8, TileSize: 4, NumWorkers: workers, Seed: 99}).
			Render(context.Background())
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		return frame
	}

	single, parallel := render(1), render(6)
	for i := range single.Pixels {
		if single.Pixels[i] != parallel.Pixels[i] {
			t.Fatalf("Pixel %d differs between worker counts: %v vs %v", i, single.Pixels[i], parallel.Pixels[i])
		}
	}
}

func TestRaytracer_MergeSamplingConfig(t *testing.T) {
	rt := NewRaytracer(newSphereScene(4), Options{Width: 4, Height: 4})
	rt.MergeSamplingConfig(SamplingConfig{SamplesPerPixel: 9})

	got := rt.GetSamplingConfig()
	if got.SamplesPerPixel != 9 || got.MaxDepth != 10 {
		t.Errorf("Expected merged config {9 10}, got %+v", got)
	}
}

func TestRaytracer_RejectsInvalidOptions(t *testing.T) {
	if _, _, err := NewRaytracer(newSphereScene(4), Options{Width: 0, Height: 4}).Render(context.Background()); err == nil {
		t.Error("Expected error for zero width")
	}
	if _, _, err := NewRaytracer(newSphereScene(0), Options{Width: 4, Height: 4}).Render(context.Background()); err == nil {
		t.Error("Expected error for zero samples per pixel")
	}
}

func TestRaytracer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewRaytracer(newSphereScene(4), Options{Width: 8, Height: 8, TileSize: 2}).Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}
