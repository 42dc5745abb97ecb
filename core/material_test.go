package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lumenrt/pathtracer/vecmath"
)

func TestLambertianScatterStaysAboveSurface(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	mat := NewLambertian(vecmath.Vec3{0.5, 0.5, 0.5})
	rec := Record{P: vecmath.Vec3{0, 0, 0}, N: vecmath.Vec3{0, 1, 0}, FrontFace: true}

	for i := 0; i < 200; i++ {
		att, scattered, ok := mat.Scatter(vecmath.Ray{}, rec, rng)
		if !ok {
			t.Fatalf("lambertian should always scatter")
		}
		if att != (vecmath.Vec3{0.5, 0.5, 0.5}) {
			t.Errorf("attenuation should equal albedo, got %v", att)
		}
		if scattered.Dir.Dot(rec.N) < -1e-9 {
			t.Errorf("scatter direction should not point far below the surface: %v", scattered.Dir)
		}
	}
}

func TestLambertianSampleRateHint(t *testing.T) {
	mat := NewLambertian(vecmath.Vec3{1, 1, 1})
	if got := mat.SampleRate(100); got != 20 {
		t.Errorf("expected floor(0.2*100)=20, got %d", got)
	}
	if got := mat.SampleRate(1); got != 1 {
		t.Errorf("expected floor to clamp to 1, got %d", got)
	}
}

func TestMetalAbsorbsBelowSurfaceScatter(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	mat := NewMetal(vecmath.Vec3{0.8, 0.8, 0.8}, 0)
	rec := Record{P: vecmath.Vec3{0, 0, 0}, N: vecmath.Vec3{0, 1, 0}}

	// A ray coming straight down reflects straight back up: always valid.
	rIn := vecmath.Ray{Dir: vecmath.Vec3{0, -1, 0}}
	_, scattered, ok := mat.Scatter(rIn, rec, rng)
	if !ok {
		t.Fatal("expected a valid reflection")
	}
	if scattered.Dir.Dot(rec.N) <= 0 {
		t.Errorf("reflected ray should point away from the surface, got %v", scattered.Dir)
	}

	// A ray arriving from below the surface reflects to below it: absorbed.
	rBelow := vecmath.Ray{Dir: vecmath.Vec3{0, 1, 0}}
	if _, _, ok := mat.Scatter(rBelow, rec, rng); ok {
		t.Errorf("a reflection ending up below the surface should be absorbed")
	}
}

func TestMetalSampleRateHint(t *testing.T) {
	mat := NewMetal(vecmath.Vec3{1, 1, 1}, 0.2)
	if got := mat.SampleRate(10); got != 5 {
		t.Errorf("expected floor(0.5*10)=5, got %d", got)
	}
}

func TestSchlickMonotoneNonIncreasing(t *testing.T) {
	eta := 1.5
	prevR := Schlick(0.0, eta)
	for cos := 0.0; cos <= 1.0; cos += 0.05 {
		r := Schlick(cos, eta)
		if r > prevR+1e-9 {
			t.Fatalf("Schlick should be non-increasing in cosine, got %v after %v at cos=%v", r, prevR, cos)
		}
		prevR = r
	}
}

func TestSchlickAtNormalIncidenceEqualsR0(t *testing.T) {
	eta := 1.5
	r0 := (1 - eta) / (1 + eta)
	r0 = r0 * r0
	got := Schlick(1.0, eta)
	if math.Abs(got-r0) > 1e-12 {
		t.Errorf("Schlick(1, eta) should equal R0=%v, got %v", r0, got)
	}
}

func TestLightEmitsWithoutScattering(t *testing.T) {
	light := NewLight(vecmath.Vec3{1, 1, 1}, 2.0)
	emitted, ok := light.Emit(vecmath.Ray{}, Record{})
	if !ok {
		t.Fatal("light should always emit")
	}
	if emitted != (vecmath.Vec3{2, 2, 2}) {
		t.Errorf("expected emission color*intensity = (2,2,2), got %v", emitted)
	}
	if _, _, scatterOK := light.Scatter(vecmath.Ray{}, Record{}, rand.New(rand.NewSource(0))); scatterOK {
		t.Errorf("a pure light should never scatter")
	}
}

func TestDielectricAttenuationIsAlwaysOne(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	mat := NewDielectric(1.5)
	rec := Record{P: vecmath.Vec3{0, 0, 0}, N: vecmath.Vec3{0, 0, 1}, FrontFace: true}
	rIn := vecmath.Ray{Dir: vecmath.Vec3{0, 0.1, -1}}

	att, _, ok := mat.Scatter(rIn, rec, rng)
	if !ok {
		t.Fatal("dielectric should always produce a scattered ray")
	}
	if att != (vecmath.Vec3{1, 1, 1}) {
		t.Errorf("dielectric attenuation should always be (1,1,1), got %v", att)
	}
}
