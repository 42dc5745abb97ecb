package bvh

import (
	"github.com/lumenrt/pathtracer/core"
	"github.com/lumenrt/pathtracer/vecmath"
)

// Hit walks the hierarchy depth-first, visiting the left child before the
// right one unconditionally and skipping any node whose box the ray misses.
// tRange.Max is tightened to the closest hit found so far, so the right
// subtree is only searched up to that distance. On a leaf hit, rec.BVHDepth and rec.BVHPath
// record the leaf that produced it, not any ancestor passed through.
func (n *Node) Hit(r vecmath.Ray, tRange vecmath.Interval, rec *core.Record) bool {
	if n == nil || !n.Box.Hit(r, tRange) {
		return false
	}

	if n.isLeaf() {
		hitAnything := false
		for _, prim := range n.Leaf {
			if prim.Hit(r, tRange, rec) {
				hitAnything = true
				tRange.Max = rec.T
				rec.BVHDepth = n.Depth
				rec.BVHPath = n.Path
			}
		}
		return hitAnything
	}

	hitLeft := n.Left.Hit(r, tRange, rec)
	rightMax := tRange.Max
	if hitLeft {
		rightMax = rec.T
	}
	hitRight := n.Right.Hit(r, vecmath.NewInterval(tRange.Min, rightMax), rec)
	return hitLeft || hitRight
}

// Primitives collects every primitive held by the hierarchy's leaves, in
// leaf-traversal order. Used by tests to check coverage and partitioning.
func (n *Node) Primitives() []core.Primitive {
	if n == nil {
		return nil
	}
	if n.isLeaf() {
		return append([]core.Primitive(nil), n.Leaf...)
	}
	out := n.Left.Primitives()
	out = append(out, n.Right.Primitives()...)
	return out
}
