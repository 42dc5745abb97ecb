package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lumenrt/pathtracer/vecmath"
)

func TestFrameBufferSetAtRoundTrip(t *testing.T) {
	fb := NewFrameBuffer(4, 3)
	fb.Set(2, 1, vecmath.Vec3{0.1, 0.2, 0.3})
	if got := fb.At(2, 1); got != (vecmath.Vec3{0.1, 0.2, 0.3}) {
		t.Errorf("expected round trip to preserve the pixel, got %v", got)
	}
	if got := fb.At(0, 0); got != (vecmath.Vec3{}) {
		t.Errorf("unset pixels should default to black, got %v", got)
	}
}

func TestWritePPMHeaderAndDimensions(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Set(0, 0, vecmath.Vec3{1, 1, 1})

	var buf bytes.Buffer
	if err := fb.WritePPM(&buf); err != nil {
		t.Fatalf("WritePPM: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "P3\n2 2\n255\n") {
		t.Errorf("unexpected PPM header: %q", out[:minInt(len(out), 20)])
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3+4 {
		t.Errorf("expected a 3-line header plus 4 pixel rows, got %d lines", len(lines))
	}
	if lines[3] != "255 255 255" {
		t.Errorf("expected the white pixel to tone-map to 255 255 255, got %q", lines[3])
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
