package core

import (
	"math/rand"
	"testing"

	"github.com/lumenrt/pathtracer/vecmath"
)

func TestColorRampEndpoints(t *testing.T) {
	if got := colorRamp(0); got != (vecmath.Vec3{0, 0, 1}) {
		t.Errorf("ramp(0) should be blue, got %v", got)
	}
	if got := colorRamp(1); got != (vecmath.Vec3{1, 0, 0}) {
		t.Errorf("ramp(1) should be red, got %v", got)
	}
	if got := colorRamp(0.5); got != (vecmath.Vec3{0, 1, 0}) {
		t.Errorf("ramp(0.5) should be green, got %v", got)
	}
}

func TestDepthDiagnosticNeverScatters(t *testing.T) {
	mat := NewDepthDiagnostic(10)
	rec := Record{BVHDepth: 5}
	emitted, ok := mat.Emit(vecmath.Ray{}, rec)
	if !ok {
		t.Fatal("expected diagnostic material to always emit")
	}
	want := colorRamp(0.5)
	if emitted != want {
		t.Errorf("depth 5/10 should map to ramp(0.5)=%v, got %v", want, emitted)
	}
	if _, _, scatterOK := mat.Scatter(vecmath.Ray{}, rec, rand.New(rand.NewSource(0))); scatterOK {
		t.Errorf("a diagnostic material should never scatter")
	}
}

func TestPathDiagnosticRootIsBlue(t *testing.T) {
	mat := NewPathDiagnostic()
	emitted, ok := mat.Emit(vecmath.Ray{}, Record{BVHPath: ""})
	if !ok {
		t.Fatal("expected diagnostic material to always emit")
	}
	if emitted != (vecmath.Vec3{0, 0, 1}) {
		t.Errorf("empty path (root) should map to blue, got %v", emitted)
	}
}
