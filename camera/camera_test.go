package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lumenrt/pathtracer/vecmath"
)

func TestPinholeRayOriginatesAtCenter(t *testing.T) {
	cam := New(Options{
		ImageWidth: 100, ImageHeight: 100,
		VFOVDegrees: 90,
		LookFrom:    vecmath.Vec3{0, 0, 0},
		LookAt:      vecmath.Vec3{0, 0, -1},
		Up:          vecmath.Vec3{0, 1, 0},
		FocusDist:   1,
	})
	rng := rand.New(rand.NewSource(1))
	r := cam.GenerateRay(50, 50, rng)
	if r.Origin != (vecmath.Vec3{0, 0, 0}) {
		t.Errorf("pinhole ray should originate at camera center, got %v", r.Origin)
	}
}

func TestDefocusRayOriginatesOffCenter(t *testing.T) {
	cam := New(Options{
		ImageWidth: 100, ImageHeight: 100,
		VFOVDegrees:         90,
		LookFrom:            vecmath.Vec3{0, 0, 0},
		LookAt:              vecmath.Vec3{0, 0, -1},
		Up:                  vecmath.Vec3{0, 1, 0},
		FocusDist:           10,
		DefocusAngleDegrees: 10,
	})
	rng := rand.New(rand.NewSource(2))

	anyOffCenter := false
	for i := 0; i < 50; i++ {
		r := cam.GenerateRay(50, 50, rng)
		if r.Origin.Sub(vecmath.Vec3{0, 0, 0}).Len() > 1e-9 {
			anyOffCenter = true
			break
		}
	}
	if !anyOffCenter {
		t.Error("expected at least one defocus-disk sample away from the camera center")
	}
}

func TestPixelJitterStaysWithinHalfPixel(t *testing.T) {
	cam := New(Options{
		ImageWidth: 10, ImageHeight: 10,
		VFOVDegrees: 90,
		LookFrom:    vecmath.Vec3{0, 0, 0},
		LookAt:      vecmath.Vec3{0, 0, -1},
		Up:          vecmath.Vec3{0, 1, 0},
		FocusDist:   1,
	})
	rng := rand.New(rand.NewSource(3))

	// Two rays through the same pixel should each land within half a
	// pixel-delta of the pixel centre (jitter is bounded to [-0.5, 0.5]).
	// With the camera at the origin and FocusDist 1, At(1) is the pixel
	// sample itself.
	r1 := cam.GenerateRay(5, 5, rng)
	r2 := cam.GenerateRay(5, 5, rng)
	target1 := r1.At(1)
	target2 := r2.At(1)
	if math.IsNaN(target1.Sub(target2).Len()) {
		t.Fatal("unexpected NaN in generated ray direction")
	}
	center := cam.pixel00Loc.Add(cam.pixelDeltaU.Mul(5)).Add(cam.pixelDeltaV.Mul(5))
	halfU := cam.pixelDeltaU.Len() / 2
	halfV := cam.pixelDeltaV.Len() / 2
	for _, target := range []vecmath.Vec3{target1, target2} {
		off := target.Sub(center)
		if math.Abs(off.Dot(cam.u)) > halfU+1e-12 || math.Abs(off.Dot(cam.v)) > halfV+1e-12 {
			t.Errorf("jittered sample %v is more than half a pixel from the pixel centre %v", target, center)
		}
	}
}
