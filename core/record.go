// Package core holds the primitive intersectors, the material protocol and
// its concrete implementations, and texture evaluation — everything the
// BVH traversal and path-tracing kernel call into at a hit.
package core

import "github.com/lumenrt/pathtracer/vecmath"

// Record is the mutable output of an intersection test. Primitive.Hit
// fills it in on a true return; on a false return its contents are
// unspecified.
type Record struct {
	T         float64
	P         vecmath.Vec3
	N         vecmath.Vec3
	FrontFace bool
	U, V      float64
	Mat       Material

	// BVHDepth/BVHPath are diagnostic-only fields copied in from the
	// leaf node that produced the hit; see bvh.Hit.
	BVHDepth int
	BVHPath  string
}

// SetFaceNormal orients N to always point against the incident ray r and
// records whether the hit was a front-face hit. outwardNormal must already
// point away from the primitive's interior.
func (rec *Record) SetFaceNormal(r vecmath.Ray, outwardNormal vecmath.Vec3) {
	rec.FrontFace = r.Dir.Dot(outwardNormal) < 0
	if rec.FrontFace {
		rec.N = outwardNormal
	} else {
		rec.N = outwardNormal.Mul(-1)
	}
}

// Primitive is one of {Sphere, Triangle}: it owns a material reference and
// exposes an immutable bounding box.
type Primitive interface {
	Hit(r vecmath.Ray, tRange vecmath.Interval, rec *Record) bool
	BoundingBox() vecmath.AABB
}
