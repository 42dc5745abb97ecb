package core

import (
	"math"

	"github.com/lumenrt/pathtracer/vecmath"
)

// Texture evaluates to an RGB value at a surface parameterization. It must
// be pure and safe for concurrent reads; u,v outside [0,1] are a caller
// contract violation — Texture does not wrap or clamp them.
type Texture interface {
	Value(u, v float64, p vecmath.Vec3) vecmath.Vec3
}

// SolidColor is a constant-valued texture.
type SolidColor struct {
	Albedo vecmath.Vec3
}

func NewSolidColor(albedo vecmath.Vec3) SolidColor {
	return SolidColor{Albedo: albedo}
}

func (s SolidColor) Value(u, v float64, p vecmath.Vec3) vecmath.Vec3 {
	return s.Albedo
}

// CheckerTexture alternates between two sub-textures based on the parity
// of floor(scale*x)+floor(scale*y)+floor(scale*z), giving a 3-D checker
// pattern independent of the surface's own (u,v) mapping.
type CheckerTexture struct {
	Scale float64
	Even  Texture
	Odd   Texture
}

func NewCheckerTexture(scale float64, even, odd vecmath.Vec3) *CheckerTexture {
	return &CheckerTexture{Scale: scale, Even: NewSolidColor(even), Odd: NewSolidColor(odd)}
}

func (c *CheckerTexture) Value(u, v float64, p vecmath.Vec3) vecmath.Vec3 {
	xi := int(math.Floor(c.Scale * p.X()))
	yi := int(math.Floor(c.Scale * p.Y()))
	zi := int(math.Floor(c.Scale * p.Z()))
	if (xi+yi+zi)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}

// MissingTexture is the loud fallback a loader should use when an image
// file fails to decode, so the failure is visually obvious rather than
// silent (spec §7, resource failure class).
var MissingTexture Texture = NewSolidColor(vecmath.Vec3{1, 0, 1})
