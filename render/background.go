package render

import "github.com/lumenrt/pathtracer/vecmath"

// Background is either a flat constant RGB or a vertical gradient
// lerp between two colors keyed on the ray direction's y component,
// matching the reference renderer's ray_color miss case (a = 0.5*(y+1),
// lerp(white, skyblue, a)). Flat is the default and what every
// deterministic scenario test exercises.
type Background struct {
	Flat   bool
	Color  vecmath.Vec3 // used when Flat
	Bottom vecmath.Vec3 // used when !Flat
	Top    vecmath.Vec3
}

// FlatBackground builds a constant-color background.
func FlatBackground(c vecmath.Vec3) Background {
	return Background{Flat: true, Color: c}
}

// GradientBackground builds a vertical lerp from bottom to top, keyed
// on the miss ray's normalized direction.
func GradientBackground(bottom, top vecmath.Vec3) Background {
	return Background{Bottom: bottom, Top: top}
}

func (b Background) At(dir vecmath.Vec3) vecmath.Vec3 {
	if b.Flat {
		return b.Color
	}
	unit := dir.Normalize()
	t := 0.5 * (unit.Y() + 1)
	return b.Bottom.Mul(1 - t).Add(b.Top.Mul(t))
}
