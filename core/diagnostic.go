package core

import "github.com/lumenrt/pathtracer/vecmath"

// rampStops are the five colors of the blue -> cyan -> green -> yellow ->
// red diagnostic ramp, evenly spaced at t = 0, 0.25, 0.5, 0.75, 1.
var rampStops = [5]vecmath.Vec3{
	{0, 0, 1}, // blue
	{0, 1, 1}, // cyan
	{0, 1, 0}, // green
	{1, 1, 0}, // yellow
	{1, 0, 0}, // red
}

// colorRamp maps t in [0,1] to a color on the four-segment diagnostic
// ramp, clamping t into range first.
func colorRamp(t float64) vecmath.Vec3 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	scaled := t * 4
	seg := int(scaled)
	if seg >= 4 {
		seg = 3
	}
	frac := scaled - float64(seg)
	a, b := rampStops[seg], rampStops[seg+1]
	return a.Add(b.Sub(a).Mul(frac))
}

// DepthDiagnostic visualizes BVH traversal depth: emit maps
// rec.BVHDepth/MaxDepth through the diagnostic ramp. It never scatters, so
// every hit is rendered as a flat diagnostic color.
type DepthDiagnostic struct {
	BaseMaterial
	MaxDepth int
}

func NewDepthDiagnostic(maxDepth int) *DepthDiagnostic {
	if maxDepth < 1 {
		maxDepth = 1
	}
	return &DepthDiagnostic{MaxDepth: maxDepth}
}

func (d *DepthDiagnostic) Emit(rIn vecmath.Ray, rec Record) (vecmath.Vec3, bool) {
	t := float64(rec.BVHDepth) / float64(d.MaxDepth)
	return colorRamp(t), true
}

// PathDiagnostic visualizes the root-to-leaf traversal path: the bit
// string in rec.BVHPath is read as a binary fraction (bit 0, the
// root-adjacent choice, is the most significant bit) and mapped through
// the same ramp as DepthDiagnostic.
type PathDiagnostic struct {
	BaseMaterial
}

func NewPathDiagnostic() *PathDiagnostic {
	return &PathDiagnostic{}
}

func (p *PathDiagnostic) Emit(rIn vecmath.Ray, rec Record) (vecmath.Vec3, bool) {
	if len(rec.BVHPath) == 0 {
		return colorRamp(0), true
	}
	var frac float64
	weight := 0.5
	for _, bit := range rec.BVHPath {
		if bit == '1' {
			frac += weight
		}
		weight /= 2
	}
	return colorRamp(frac), true
}
