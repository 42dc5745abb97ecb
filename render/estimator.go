package render

import (
	"math"
	"math/rand"

	"github.com/lumenrt/pathtracer/core"
	"github.com/lumenrt/pathtracer/vecmath"
)

// selfIntersectEps keeps a scattered ray from immediately re-hitting
// the surface it just left.
const selfIntersectEps = 1e-3

// radiance is L(r, d): depth exhaustion returns black, a miss returns
// the scene background, an emissive hit returns its emission and stops,
// and a scattering hit recurses with the attenuation folded in. It is
// not tail-call optimized by the Go compiler, but max depths in the
// 5-50 range keep stack growth bounded.
func (s *Scene) radiance(r vecmath.Ray, depth int, rng *rand.Rand) vecmath.Vec3 {
	if depth <= 0 {
		return vecmath.Vec3{}
	}

	var rec core.Record
	if !s.Root.Hit(r, vecmath.NewInterval(selfIntersectEps, math.Inf(1)), &rec) {
		return s.Background.At(r.Dir)
	}

	if emitted, ok := rec.Mat.Emit(r, rec); ok {
		return emitted
	}

	attenuation, scattered, ok := rec.Mat.Scatter(r, rec, rng)
	if !ok {
		return vecmath.Vec3{}
	}

	incoming := s.radiance(scattered, depth-1, rng)
	return componentMul(attenuation, incoming)
}

func componentMul(a, b vecmath.Vec3) vecmath.Vec3 {
	return vecmath.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

// samplePixel integrates one pixel: when adaptive sampling is enabled,
// the primary ray's material picks its own sample count via
// sample_rate; otherwise every pixel uses SamplesPerPixel.
func (s *Scene) samplePixel(i, j int, rng *rand.Rand) vecmath.Vec3 {
	n := s.SamplesPerPixel
	if s.AdaptiveSampling {
		probe := s.Camera.GenerateRay(i, j, rng)
		var rec core.Record
		if s.Root.Hit(probe, vecmath.NewInterval(selfIntersectEps, math.Inf(1)), &rec) {
			n = rec.Mat.SampleRate(s.SamplesPerPixel)
		} else {
			n = 1
		}
	}
	if n < 1 {
		n = 1
	}

	var sum vecmath.Vec3
	for k := 0; k < n; k++ {
		ray := s.Camera.GenerateRay(i, j, rng)
		sum = sum.Add(s.radiance(ray, s.MaxDepth, rng))
	}
	return sum.Mul(1 / float64(n))
}
