// Package render drives the radiance estimator over a built BVH,
// accumulates samples into a frame buffer, and schedules the work
// across a scanline-parallel worker pool.
package render

import (
	"github.com/lumenrt/pathtracer/bvh"
	"github.com/lumenrt/pathtracer/camera"
)

// Scene bundles everything the estimator needs and is immutable once
// constructed: scene construction order is append-primitives,
// build_bvh, then render — Scene is only built after that's done.
type Scene struct {
	Root       *bvh.Node
	Camera     *camera.Camera
	Background Background

	// SamplesPerPixel and MaxDepth are the pixel-integration and
	// recursion-depth parameters; AdaptiveSampling toggles the
	// per-material sample_rate hint described in the kernel spec.
	SamplesPerPixel  int
	MaxDepth         int
	AdaptiveSampling bool
}
