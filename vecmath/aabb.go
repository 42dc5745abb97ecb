package vecmath

// aabbPad is the ε every primitive-built AABB is grown by on construction
// so that axis-aligned primitives (a triangle lying flat in a plane, a
// disc) never produce a zero-width slab on an axis. The source lineage
// varies between 1e-3 and 1e-8; strict positivity is all that matters.
const aabbPad = 1e-4

// AABB is three per-axis intervals.
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB has Empty on every axis and is the identity under MergeAABB.
func EmptyAABB() AABB {
	return AABB{X: Empty(), Y: Empty(), Z: Empty()}
}

// UniverseAABB contains every point.
func UniverseAABB() AABB {
	return AABB{X: Universe(), Y: Universe(), Z: Universe()}
}

// NewAABBFromPoints builds the tight box around two corner points, padded
// by aabbPad on every axis so a degenerate (flat) box still has finite,
// divisible slabs.
func NewAABBFromPoints(a, b Vec3) AABB {
	mk := func(lo, hi float64) Interval {
		if lo > hi {
			lo, hi = hi, lo
		}
		return Interval{Min: lo, Max: hi}.Pad(aabbPad)
	}
	return AABB{
		X: mk(a.X(), b.X()),
		Y: mk(a.Y(), b.Y()),
		Z: mk(a.Z(), b.Z()),
	}
}

// MergeAABB returns the smallest box enclosing both a and b.
func MergeAABB(a, b AABB) AABB {
	return AABB{
		X: Merge(a.X, b.X),
		Y: Merge(a.Y, b.Y),
		Z: Merge(a.Z, b.Z),
	}
}

// Axis indices for LongestAxis / indexed interval access.
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

// Axis returns the interval for the given axis index (0=x, 1=y, 2=z).
func (b AABB) Axis(i int) Interval {
	switch i {
	case AxisX:
		return b.X
	case AxisY:
		return b.Y
	default:
		return b.Z
	}
}

// LongestAxis returns the axis with the largest extent. Ties are broken
// x > y > z, i.e. x wins over an equally-long y or z, and y wins over an
// equally-long z.
func (b AABB) LongestAxis() int {
	dx, dy, dz := b.X.Size(), b.Y.Size(), b.Z.Size()
	axis := AxisX
	longest := dx
	if dy > longest {
		axis, longest = AxisY, dy
	}
	if dz > longest {
		axis = AxisZ
	}
	return axis
}

// SurfaceArea is 2*(dx*dy + dx*dz + dy*dz), or 0 if any axis is empty
// (Size < 0).
func (b AABB) SurfaceArea() float64 {
	dx, dy, dz := b.X.Size(), b.Y.Size(), b.Z.Size()
	if dx < 0 || dy < 0 || dz < 0 {
		return 0
	}
	return 2 * (dx*dy + dx*dz + dy*dz)
}

// Hit is the ray-AABB slab test: for each axis compute the two plane
// crossings, swap them when the ray direction component is negative so
// t0 <= t1 stays an invariant, then tighten the query interval. A
// component-wise 1/0 yields ±Inf, which keeps the tightening arithmetic
// well-defined for axis-aligned rays without a branch.
func (b AABB) Hit(r Ray, tRange Interval) bool {
	for axis := 0; axis < 3; axis++ {
		iv := b.Axis(axis)
		var origin, dir float64
		switch axis {
		case AxisX:
			origin, dir = r.Origin.X(), r.Dir.X()
		case AxisY:
			origin, dir = r.Origin.Y(), r.Dir.Y()
		default:
			origin, dir = r.Origin.Z(), r.Dir.Z()
		}

		invD := 1.0 / dir
		t0 := (iv.Min - origin) * invD
		t1 := (iv.Max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tRange.Min {
			tRange.Min = t0
		}
		if t1 < tRange.Max {
			tRange.Max = t1
		}
		if tRange.Max <= tRange.Min {
			return false
		}
	}
	return true
}
