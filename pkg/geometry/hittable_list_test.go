package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestHittableList_ReturnsNearest(t *testing.T) {
	far := NewSphere(core.NewVec3(0, 0, -10), 1, nil)
	near := NewSphere(core.NewVec3(0, 0, -4), 1, nil)
	list := NewHittableList(far, near)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := list.Hit(ray, 0.001, math.Inf(1), nil)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-3) > 1e-9 {
		t.Errorf("Expected nearest t=3, got %v", hit.T)
	}
}

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if hit, isHit := list.Hit(ray, 0.001, math.Inf(1), nil); isHit || hit != nil {
		t.Error("Expected no hit from an empty list")
	}
	if _, ok := list.BoundingBox(0, 1); ok {
		t.Error("Expected empty list to be unbounded")
	}
}

func TestHittableList_BoundingBox(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(-2, 0, 0), 1, nil))
	list.Add(NewSphere(core.NewVec3(3, 1, 0), 0.5, nil))

	box, ok := list.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected bounded list")
	}
	expected := core.NewAABB(core.NewVec3(-3, -1, -1), core.NewVec3(3.5, 1.5, 1))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}

	// Any unbounded member makes the whole list unbounded
	list.Add(NewHittableList())
	if _, ok := list.BoundingBox(0, 1); ok {
		t.Error("Expected list with an unbounded member to be unbounded")
	}
}
