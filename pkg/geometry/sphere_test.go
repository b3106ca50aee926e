package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0, nil)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      4.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, -5),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1), nil)
			if !isHit {
				t.Fatal("Expected hit")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_RespectsInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Near root at 4 is excluded, far root at 6 is used
	hit, isHit := sphere.Hit(ray, 5, math.Inf(1), nil)
	if !isHit || math.Abs(hit.T-6) > 1e-9 {
		t.Errorf("Expected far root t=6, got %v (hit=%v)", hit, isHit)
	}

	// Both roots excluded
	if _, isHit := sphere.Hit(ray, 0.001, 3.5, nil); isHit {
		t.Error("Expected no hit when both roots are beyond tMax")
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		name   string
		normal core.Vec3
		u, v   float64
	}{
		{"+X", core.NewVec3(1, 0, 0), 0.5, 0.5},
		{"+Y", core.NewVec3(0, 1, 0), 0.5, 1.0},
		{"-Y", core.NewVec3(0, -1, 0), 0.5, 0.0},
		{"-X", core.NewVec3(-1, 0, 0), 0.0, 0.5},
		{"+Z", core.NewVec3(0, 0, 1), 0.25, 0.5},
		{"-Z", core.NewVec3(0, 0, -1), 0.75, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := sphereUV(tt.normal)
			if math.Abs(uv.X-tt.u) > 1e-9 || math.Abs(uv.Y-tt.v) > 1e-9 {
				t.Errorf("Expected (%v, %v), got %v", tt.u, tt.v, uv)
			}
		})
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, nil)

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Sphere should be bounded")
	}
	expected := core.NewAABB(core.NewVec3(0.5, 1.5, 2.5), core.NewVec3(1.5, 2.5, 3.5))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, -5), core.NewVec3(2, 0, -5), 0, 1, 0.5, nil)

	if got := sphere.CenterAt(0.5); got != core.NewVec3(1, 0, -5) {
		t.Errorf("Expected midpoint center, got %v", got)
	}

	// A ray down the start position hits only early in the shutter interval
	early := core.NewRayAtTime(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	late := core.NewRayAtTime(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 1)
	if _, isHit := sphere.Hit(early, 0.001, math.Inf(1), nil); !isHit {
		t.Error("Expected hit at time 0")
	}
	if _, isHit := sphere.Hit(late, 0.001, math.Inf(1), nil); isHit {
		t.Error("Expected miss at time 1")
	}

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Moving sphere should be bounded")
	}
	expected := core.NewAABB(core.NewVec3(-0.5, -0.5, -5.5), core.NewVec3(2.5, 0.5, -4.5))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}
