package scene

import (
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/google/go-cmp/cmp"
)

// Every test points at a texture that does not exist so no scene depends on files on disk
var testOptions = Options{Seed: 42, TexturePath: "testdata/missing.jpg"}

func TestBuiltinScenesBuild(t *testing.T) {
	for _, info := range List() {
		t.Run(info.Name, func(t *testing.T) {
			s := info.Build(testOptions)

			if s.Name != info.Name {
				t.Errorf("Expected scene name %q, got %q", info.Name, s.Name)
			}
			if s.Camera == nil || s.World == nil || s.Background == nil {
				t.Fatalf("Scene is missing a camera, world or background: %+v", s)
			}
			if s.SamplingConfig.SamplesPerPixel <= 0 || s.SamplingConfig.MaxDepth <= 0 {
				t.Errorf("Invalid sampling config %+v", s.SamplingConfig)
			}
			if s.Width <= 0 {
				t.Errorf("Invalid recommended width %d", s.Width)
			}

			_, bounded := s.World.BoundingBox(Time0, Time1)
			if info.Name == "black_screen" {
				if bounded {
					t.Error("Expected the empty scene to have no bounding box")
				}
				return
			}
			if !bounded {
				t.Error("Expected a bounded world")
			}
			if s.BVHStats.Primitives == 0 {
				t.Error("Expected BVH statistics to be recorded")
			}
		})
	}
}

func TestLookup(t *testing.T) {
	info, err := Lookup("cornell_box")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if info.Name != "cornell_box" {
		t.Errorf("Expected cornell_box, got %q", info.Name)
	}

	_, err = Lookup("teapot")
	if err == nil {
		t.Fatal("Expected an error for an unknown scene")
	}
	if !strings.Contains(err.Error(), "random_spheres") {
		t.Errorf("Expected the error to list available scenes, got %v", err)
	}
}

func TestListIsSorted(t *testing.T) {
	scenes := List()
	if len(scenes) != len(builtins) {
		t.Fatalf("Expected %d scenes, got %d", len(builtins), len(scenes))
	}
	for i := 1; i < len(scenes); i++ {
		if scenes[i-1].Name >= scenes[i].Name {
			t.Errorf("Scenes not sorted: %q before %q", scenes[i-1].Name, scenes[i].Name)
		}
	}
}

func TestSameSeedSameScene(t *testing.T) {
	a := NewRandomSpheresScene(testOptions)
	b := NewRandomSpheresScene(testOptions)

	if diff := cmp.Diff(a.BVHStats, b.BVHStats); diff != "" {
		t.Errorf("BVH stats differ for the same seed (-a +b):\n%s", diff)
	}

	boxA, _ := a.World.BoundingBox(Time0, Time1)
	boxB, _ := b.World.BoundingBox(Time0, Time1)
	if boxA != boxB {
		t.Errorf("World bounds differ: %v vs %v", boxA, boxB)
	}

	// Rays through the same world land on the same surfaces
	sampler := core.NewSeededSampler(1)
	for i := 0; i < 50; i++ {
		dir := core.SampleOnUnitSphere(sampler.Get2D())
		ray := core.NewRay(core.NewVec3(13, 2, 3), dir)
		hitA, okA := a.World.Hit(ray, 0.001, 1e9, nil)
		hitB, okB := b.World.Hit(ray, 0.001, 1e9, nil)
		if okA != okB || (okA && hitA.T != hitB.T) {
			t.Fatalf("Ray %v hit differently in two builds of the same scene", ray)
		}
	}
}

func TestHeight(t *testing.T) {
	tests := []struct {
		name   string
		scene  *Scene
		width  int
		height int
	}{
		{"Wide", NewTwoSpheresScene(testOptions), 400, 225},
		{"Square", NewCornellBoxScene(testOptions), 600, 600},
		{"Tiny", NewTwoSpheresScene(testOptions), 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scene.Height(tt.width); got != tt.height {
				t.Errorf("Height(%d) = %d, want %d", tt.width, got, tt.height)
			}
		})
	}
}

func TestEarthSceneWithoutTexture(t *testing.T) {
	s := NewEarthScene(testOptions)

	// The fallback texture is solid cyan, so a ray straight at the globe returns it
	ray := core.NewRay(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1))
	hit, ok := s.World.Hit(ray, 0.001, 1e9, nil)
	if !ok {
		t.Fatal("Expected to hit the globe")
	}
	result, scattered := hit.Material.Scatter(ray, *hit, core.NewSeededSampler(3))
	if !scattered {
		t.Fatal("Expected the globe to scatter")
	}
	if result.Attenuation != core.NewVec3(0, 1, 1) {
		t.Errorf("Expected cyan fallback albedo, got %v", result.Attenuation)
	}
}
