package core

import (
	"math"

	"github.com/lumenrt/pathtracer/vecmath"
)

// parallelEps is the |n.dir| threshold below which a ray is treated as
// parallel to the triangle's plane.
const parallelEps = 1e-16

// Triangle carries per-vertex UV and, optionally, per-vertex normals. The
// face normal used for the plane test and as the flat-shading fallback is
// recomputed from the current vertex positions at construction time (so
// it stays correct across any transform the caller applies before
// building), never cached across a transform update.
type Triangle struct {
	V0, V1, V2    vecmath.Vec3
	UV0, UV1, UV2 [2]float64
	HasNormals    bool
	N0, N1, N2    vecmath.Vec3
	Mat           Material

	box        vecmath.AABB
	faceNormal vecmath.Vec3
	edge1      vecmath.Vec3
	edge2      vecmath.Vec3
	d00, d01, d11, denom float64
	degenerate bool
}

// NewTriangle builds a triangle with no per-vertex shading normals; the
// face normal is used for shading everywhere on the face.
func NewTriangle(v0, v1, v2 vecmath.Vec3, mat Material) *Triangle {
	return newTriangle(v0, v1, v2, [2]float64{}, [2]float64{}, [2]float64{}, false, vecmath.Vec3{}, vecmath.Vec3{}, vecmath.Vec3{}, mat)
}

// NewTriangleFull builds a triangle with explicit per-vertex UV and
// per-vertex shading normals.
func NewTriangleFull(v0, v1, v2 vecmath.Vec3, uv0, uv1, uv2 [2]float64, n0, n1, n2 vecmath.Vec3, mat Material) *Triangle {
	return newTriangle(v0, v1, v2, uv0, uv1, uv2, true, n0, n1, n2, mat)
}

func newTriangle(v0, v1, v2 vecmath.Vec3, uv0, uv1, uv2 [2]float64, hasNormals bool, n0, n1, n2 vecmath.Vec3, mat Material) *Triangle {
	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)

	d00 := edge1.Dot(edge1)
	d01 := edge1.Dot(edge2)
	d11 := edge2.Dot(edge2)
	denom := d00*d11 - d01*d01

	normal := edge1.Cross(edge2)
	if l := normal.Len(); l > 0 {
		normal = normal.Mul(1 / l)
	}

	box := vecmath.MergeAABB(
		vecmath.NewAABBFromPoints(v0, v1),
		vecmath.NewAABBFromPoints(v1, v2),
	)

	return &Triangle{
		V0: v0, V1: v1, V2: v2,
		UV0: uv0, UV1: uv1, UV2: uv2,
		HasNormals: hasNormals,
		N0: n0, N1: n1, N2: n2,
		Mat:        mat,
		box:        box,
		faceNormal: normal,
		edge1:      edge1,
		edge2:      edge2,
		d00:        d00,
		d01:        d01,
		d11:        d11,
		denom:      denom,
		degenerate: denom == 0,
	}
}

func (t *Triangle) BoundingBox() vecmath.AABB {
	return t.box
}

// Hit intersects the triangle's plane, then tests for inside-ness with
// three edge/cross-product sign checks against the face normal (robust to
// the normal's orientation), and finally recovers barycentric weights via
// the standard d00/d01/d11/d20/d21 projection purely to interpolate UV
// and the shading normal.
func (t *Triangle) Hit(r vecmath.Ray, tRange vecmath.Interval, rec *Record) bool {
	if t.degenerate {
		return false
	}

	denomPlane := t.faceNormal.Dot(r.Dir)
	if math.Abs(denomPlane) < parallelEps {
		return false
	}

	tHit := t.faceNormal.Dot(t.V0.Sub(r.Origin)) / denomPlane
	if !tRange.Contains(tHit) {
		return false
	}

	p := r.At(tHit)

	e0 := t.V1.Sub(t.V0)
	c0 := e0.Cross(p.Sub(t.V0))
	if c0.Dot(t.faceNormal) < 0 {
		return false
	}
	e1 := t.V2.Sub(t.V1)
	c1 := e1.Cross(p.Sub(t.V1))
	if c1.Dot(t.faceNormal) < 0 {
		return false
	}
	e2 := t.V0.Sub(t.V2)
	c2 := e2.Cross(p.Sub(t.V2))
	if c2.Dot(t.faceNormal) < 0 {
		return false
	}

	v2vec := p.Sub(t.V0)
	d20 := v2vec.Dot(t.edge1)
	d21 := v2vec.Dot(t.edge2)

	bv := (t.d11*d20 - t.d01*d21) / t.denom
	bw := (t.d00*d21 - t.d01*d20) / t.denom
	bu := 1 - bv - bw

	rec.T = tHit
	rec.P = p
	rec.U = bu*t.UV0[0] + bv*t.UV1[0] + bw*t.UV2[0]
	rec.V = bu*t.UV0[1] + bv*t.UV1[1] + bw*t.UV2[1]
	rec.Mat = t.Mat

	shadingNormal := t.faceNormal
	if t.HasNormals {
		n := t.N0.Mul(bu).Add(t.N1.Mul(bv)).Add(t.N2.Mul(bw))
		if l := n.Len(); l > 0 {
			shadingNormal = n.Mul(1 / l)
		}
	}
	rec.SetFaceNormal(r, shadingNormal)
	return true
}
