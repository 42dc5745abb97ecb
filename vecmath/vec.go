// Package vecmath holds the math substrate the rest of the renderer builds
// on: vectors, rays, intervals and axis-aligned bounding boxes.
package vecmath

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is used for positions, directions and RGB radiance alike; nothing
// here tags units, matching the source material's single do-everything
// 3-tuple.
type Vec3 = mgl64.Vec3

// Ray is an origin plus a direction. The direction is not guaranteed to be
// unit length: neither camera rays (pixel sample minus origin) nor
// scattered rays are normalized.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// At evaluates the ray at parameter t.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
