package core

import (
	"math"

	"github.com/lumenrt/pathtracer/vecmath"
)

// Sphere is an analytic sphere primitive. UV is currently hard-coded to
// (0,0); a full spherical (u,v) parameterization is not required by any
// scenario this renderer targets.
type Sphere struct {
	Center vecmath.Vec3
	Radius float64
	Mat    Material
	box    vecmath.AABB
}

func NewSphere(center vecmath.Vec3, radius float64, mat Material) *Sphere {
	rvec := vecmath.Vec3{radius, radius, radius}
	return &Sphere{
		Center: center,
		Radius: radius,
		Mat:    mat,
		box:    vecmath.NewAABBFromPoints(center.Sub(rvec), center.Add(rvec)),
	}
}

func (s *Sphere) BoundingBox() vecmath.AABB {
	return s.box
}

// Hit solves the quadratic ||dir||^2 t^2 - 2(dir.oc)t + (||oc||^2 - r^2)
// = 0 for the nearer root in (tMin, tMax), falling back to the farther
// root.
func (s *Sphere) Hit(r vecmath.Ray, tRange vecmath.Interval, rec *Record) bool {
	oc := s.Center.Sub(r.Origin)
	a := r.Dir.Dot(r.Dir)
	h := r.Dir.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := h*h - a*c
	if discriminant < 0 {
		return false
	}
	sqrtd := math.Sqrt(discriminant)

	root := (h - sqrtd) / a
	if !tRange.Surrounds(root) {
		root = (h + sqrtd) / a
		if !tRange.Surrounds(root) {
			return false
		}
	}

	rec.T = root
	rec.P = r.At(root)
	outwardNormal := rec.P.Sub(s.Center).Mul(1 / s.Radius)
	rec.SetFaceNormal(r, outwardNormal)
	rec.U, rec.V = 0, 0
	rec.Mat = s.Mat
	return true
}
