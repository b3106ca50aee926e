package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestMetal_FuzzIsClamped(t *testing.T) {
	tests := []struct {
		fuzz     float64
		expected float64
	}{
		{0.0, 0.0},
		{0.3, 0.3},
		{1.0, 1.0},
		{2.5, 1.0},
		{-1.0, 0.0},
	}

	for _, tt := range tests {
		if got := NewMetal(core.NewVec3(1, 1, 1), tt.fuzz).Fuzzness; got != tt.expected {
			t.Errorf("NewMetal(fuzz=%v).Fuzzness = %v, want %v", tt.fuzz, got, tt.expected)
		}
	}
}

func TestMetal_PerfectMirror(t *testing.T) {
	albedo := core.NewVec3(0.8, 0.6, 0.2)
	metal := NewMetal(albedo, 0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(2, -2, 0))
	hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 1, 0)}

	scatter, didScatter := metal.Scatter(ray, hit, sampler)
	if !didScatter {
		t.Fatal("Mirror reflection above the surface should scatter")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected reflected direction %v, got %v", expected, scatter.Scattered.Direction)
	}
	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_AbsorbsBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(1, 1, 1), 1.0)

	// Grazing reflection pushed below the surface by the fuzz sample
	ray := core.NewRay(core.NewVec3(-1, 0.01, 0), core.NewVec3(1, -0.01, 0))
	hit := core.HitRecord{Normal: core.NewVec3(0, 1, 0)}

	// Sample (1, 0.75, 0.5) maps to the point (0, -1, 0), straight into the surface
	sampler := fixedSampler{value3D: core.NewVec3(1, 0.75, 0.5)}

	_, didScatter := metal.Scatter(ray, hit, sampler)
	if didScatter {
		t.Error("Reflection perturbed below the surface should be absorbed")
	}
}
