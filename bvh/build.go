// Package bvh builds and traverses a bounding-volume hierarchy over a
// fixed primitive list, using a bucketed surface-area-heuristic splitter
// with a median fallback. Grounded on the teacher's
// voxelrt/rt/bvh.TLASBuilder.recursiveBuild shape (a growing node slice,
// longest-axis + sort + partition, returning the child's index) — here
// generalized to primitive-level SAH splitting with a leaf-size cutoff
// instead of always bottoming out at single objects.
package bvh

import (
	"sort"

	"github.com/lumenrt/pathtracer/core"
	"github.com/lumenrt/pathtracer/vecmath"
)

// SplitMethod selects the build-time partitioning strategy.
type SplitMethod int

const (
	Middle SplitMethod = iota
	SAH
)

const (
	sahBuckets   = 12
	sahTravCost  = 2.0
	sahIsectCost = 1.0
)

// Node is either internal (Left/Right both non-nil) or a leaf (both nil,
// Leaf holding up to max_leaf_size primitive references).
type Node struct {
	Box   vecmath.AABB
	Left  *Node
	Right *Node
	Leaf  []core.Primitive

	// Depth is the root-to-node distance (root = 0). Path is the
	// root-to-node bit string ("0" = left, "1" = right per step).
	Depth int
	Path  string
}

func (n *Node) isLeaf() bool {
	return n.Left == nil && n.Right == nil
}

type item struct {
	prim core.Primitive
	box  vecmath.AABB
}

// Build constructs a BVH over prims. maxLeafSize bounds how many
// primitives a leaf may hold before it is split further; method picks
// Middle or SAH partitioning (SAH falls back to Middle for any subtree
// where no valid SAH split exists).
func Build(prims []core.Primitive, maxLeafSize int, method SplitMethod) *Node {
	if maxLeafSize < 1 {
		maxLeafSize = 1
	}
	if len(prims) == 0 {
		return &Node{Box: vecmath.EmptyAABB()}
	}

	items := make([]item, len(prims))
	for i, p := range prims {
		items[i] = item{prim: p, box: p.BoundingBox()}
	}
	return buildRange(items, maxLeafSize, method, 0, "")
}

func computeBox(items []item) vecmath.AABB {
	box := vecmath.EmptyAABB()
	for _, it := range items {
		box = vecmath.MergeAABB(box, it.box)
	}
	return box
}

func sortByAxisMin(items []item, axis int) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].box.Axis(axis).Min < items[j].box.Axis(axis).Min
	})
}

func buildRange(items []item, maxLeafSize int, method SplitMethod, depth int, path string) *Node {
	box := computeBox(items)

	if len(items) <= maxLeafSize {
		leaf := make([]core.Primitive, len(items))
		for i, it := range items {
			leaf[i] = it.prim
		}
		return &Node{Box: box, Leaf: leaf, Depth: depth, Path: path}
	}

	axis := -1
	splitAt := 0

	if method == SAH {
		if a, left, ok := sahSplit(items, box); ok {
			axis, splitAt = a, left
		}
	}

	if axis == -1 {
		axis = box.LongestAxis()
		sortByAxisMin(items, axis)
		splitAt = len(items) / 2
	} else {
		sortByAxisMin(items, axis)
	}

	left := buildRange(items[:splitAt], maxLeafSize, method, depth+1, path+"0")
	right := buildRange(items[splitAt:], maxLeafSize, method, depth+1, path+"1")
	return &Node{Box: box, Left: left, Right: right, Depth: depth, Path: path}
}

// sahSplit evaluates the 12-bucket SAH cost across all three axes and
// returns the winning (axis, left-partition count). ok is false when no
// axis produced a split with both sides non-empty, signalling a fall
// back to Middle.
func sahSplit(items []item, parentBox vecmath.AABB) (axis int, leftCount int, ok bool) {
	n := len(items)
	bucketSize := (n+sahBuckets-1)/sahBuckets + 1
	parentArea := parentBox.SurfaceArea()

	bestCost := -1.0
	bestAxis := -1
	bestLeft := 0

	for a := 0; a < 3; a++ {
		sorted := make([]item, n)
		copy(sorted, items)
		sortByAxisMin(sorted, a)

		counts := make([]int, sahBuckets)
		boxes := make([]vecmath.AABB, sahBuckets)
		for i := range boxes {
			boxes[i] = vecmath.EmptyAABB()
		}
		for i, it := range sorted {
			b := i / bucketSize
			if b >= sahBuckets {
				b = sahBuckets - 1
			}
			counts[b]++
			boxes[b] = vecmath.MergeAABB(boxes[b], it.box)
		}

		leftCounts := make([]int, sahBuckets)
		leftBoxes := make([]vecmath.AABB, sahBuckets)
		acc, accBox := 0, vecmath.EmptyAABB()
		for i := 0; i < sahBuckets; i++ {
			acc += counts[i]
			accBox = vecmath.MergeAABB(accBox, boxes[i])
			leftCounts[i] = acc
			leftBoxes[i] = accBox
		}

		rightCounts := make([]int, sahBuckets)
		rightBoxes := make([]vecmath.AABB, sahBuckets)
		acc, accBox = 0, vecmath.EmptyAABB()
		for i := sahBuckets - 1; i >= 0; i-- {
			acc += counts[i]
			accBox = vecmath.MergeAABB(accBox, boxes[i])
			rightCounts[i] = acc
			rightBoxes[i] = accBox
		}

		for split := 0; split < sahBuckets-1; split++ {
			nL := leftCounts[split]
			nR := rightCounts[split+1]
			if nL == 0 || nR == 0 {
				continue
			}
			aL := leftBoxes[split].SurfaceArea()
			aR := rightBoxes[split+1].SurfaceArea()
			cost := sahTravCost + (float64(nL)*aL+float64(nR)*aR)/(parentArea+1e-8)*sahIsectCost
			if bestAxis == -1 || cost < bestCost {
				bestCost = cost
				bestAxis = a
				bestLeft = nL
			}
		}
	}

	if bestAxis == -1 {
		return 0, 0, false
	}
	return bestAxis, bestLeft, true
}
