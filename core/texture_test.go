package core

import (
	"testing"

	"github.com/lumenrt/pathtracer/vecmath"
)

func TestCheckerTextureAlternates(t *testing.T) {
	tex := NewCheckerTexture(1.0, vecmath.Vec3{1, 1, 1}, vecmath.Vec3{0, 0, 0})

	even := tex.Value(0, 0, vecmath.Vec3{0.1, 0.1, 0.1})
	if even != (vecmath.Vec3{1, 1, 1}) {
		t.Errorf("expected even cell to be white, got %v", even)
	}

	odd := tex.Value(0, 0, vecmath.Vec3{1.1, 0.1, 0.1})
	if odd != (vecmath.Vec3{0, 0, 0}) {
		t.Errorf("expected odd cell to be black, got %v", odd)
	}
}

func TestSolidColorIgnoresUV(t *testing.T) {
	tex := NewSolidColor(vecmath.Vec3{0.2, 0.4, 0.6})
	if got := tex.Value(0, 0, vecmath.Vec3{}); got != (vecmath.Vec3{0.2, 0.4, 0.6}) {
		t.Errorf("solid color should ignore u,v,p, got %v", got)
	}
	if got := tex.Value(99, -5, vecmath.Vec3{100, 200, 300}); got != (vecmath.Vec3{0.2, 0.4, 0.6}) {
		t.Errorf("solid color should ignore u,v,p, got %v", got)
	}
}
