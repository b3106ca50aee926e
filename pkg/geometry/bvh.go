package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
)

// BVHNode is an interior node of a Bounding Volume Hierarchy.
// Children are either further nodes or the primitives themselves.
type BVHNode struct {
	Left  core.Hittable
	Right core.Hittable
	Box   core.AABB
}

// NewBVH builds a hierarchy over objects for the given shutter interval.
// It panics if objects is empty or if any object has no valid bounding box: unbounded
// primitives cannot be partitioned and must be kept outside the hierarchy.
func NewBVH(objects []core.Hittable, time0, time1 float64, sampler core.Sampler) *BVHNode {
	if len(objects) == 0 {
		panic("geometry: cannot build a BVH over zero objects")
	}

	// Pair each object with its box once so sorting does not recompute them
	// and so the copy leaves the caller's slice untouched
	entries := make([]bvhEntry, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			panic(fmt.Sprintf("geometry: object %d (%T) has no bounding box and cannot be placed in a BVH", i, object))
		}
		if !box.IsValid() {
			panic(fmt.Sprintf("geometry: object %d (%T) has an invalid bounding box %v", i, object, box))
		}
		entries[i] = bvhEntry{object: object, box: box}
	}

	return buildBVH(entries, sampler)
}

type bvhEntry struct {
	object core.Hittable
	box    core.AABB
}

// buildBVH recursively splits entries at the median along a randomly chosen axis
func buildBVH(entries []bvhEntry, sampler core.Sampler) *BVHNode {
	axis := core.SampleAxis(sampler.Get1D())
	less := func(a, b bvhEntry) bool {
		return a.box.Min.Axis(axis) < b.box.Min.Axis(axis)
	}

	node := &BVHNode{}
	var leftBox, rightBox core.AABB

	switch len(entries) {
	case 1:
		// Degenerate leaf: both children alias the single object
		node.Left, node.Right = entries[0].object, entries[0].object
		leftBox, rightBox = entries[0].box, entries[0].box
	case 2:
		first, second := entries[0], entries[1]
		if less(second, first) {
			first, second = second, first
		}
		node.Left, node.Right = first.object, second.object
		leftBox, rightBox = first.box, second.box
	default:
		sort.Slice(entries, func(i, j int) bool {
			return less(entries[i], entries[j])
		})

		mid := len(entries) / 2
		left := buildBVH(entries[:mid], sampler)
		right := buildBVH(entries[mid:], sampler)
		node.Left, node.Right = left, right
		leftBox, rightBox = left.Box, right.Box
	}

	node.Box = leftBox.Union(rightBox)
	return node
}

// Hit tests the left subtree first and uses its distance to bound the right subtree
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*core.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	closestHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)

	closestSoFar := tMax
	if hitLeft {
		closestSoFar = closestHit.T
	}

	if hit, hitRight := n.Right.Hit(ray, tMin, closestSoFar, sampler); hitRight {
		closestHit = hit
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the box computed at construction
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes   int     // Interior nodes
	Primitives   int     // Distinct leaf objects
	MaxDepth     int     // Deepest interior node, root is 0
	AvgLeafDepth float64 // Mean depth at which primitives are attached
}

// Stats walks the hierarchy and summarizes its shape
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)

	// Calculate average depth after collecting all data
	if stats.Primitives > 0 {
		stats.AvgLeafDepth = stats.AvgLeafDepth / float64(stats.Primitives)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []core.Hittable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}

	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
			continue
		}
		stats.Primitives++
		stats.AvgLeafDepth += float64(depth + 1) // Accumulate depth for average calculation
	}
}
