// Package camera builds primary rays for a pinhole or thin-lens camera.
// The basis construction, pixel grid, and defocus-disk sampling follow
// the reference path tracer's camera::initialize/get_ray exactly; the
// type is otherwise a plain value holder with no rendering logic of its
// own — ray generation is the only thing it owns.
package camera

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lumenrt/pathtracer/core"
	"github.com/lumenrt/pathtracer/vecmath"
)

// Options configures a Camera at construction time. Zero-value
// DefocusAngle disables depth of field entirely (rays originate at
// LookFrom).
type Options struct {
	ImageWidth  int
	ImageHeight int

	VFOVDegrees float64
	LookFrom    vecmath.Vec3
	LookAt      vecmath.Vec3
	Up          vecmath.Vec3

	DefocusAngleDegrees float64
	FocusDist           float64
}

// Camera holds the precomputed pixel grid and defocus-disk basis; New
// does all the trigonometry once so GenerateRay is a handful of vector
// adds per call.
type Camera struct {
	imageWidth, imageHeight int

	center       vecmath.Vec3
	pixel00Loc   vecmath.Vec3
	pixelDeltaU  vecmath.Vec3
	pixelDeltaV  vecmath.Vec3
	u, v, w      vecmath.Vec3
	defocusAngle float64
	defocusU     vecmath.Vec3
	defocusV     vecmath.Vec3
}

func (c *Camera) ImageWidth() int  { return c.imageWidth }
func (c *Camera) ImageHeight() int { return c.imageHeight }

// fatalf panics with a descriptive message for a programmer error —
// one only a misuse of the API, never scene data, can trigger.
func fatalf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

func New(opt Options) *Camera {
	width := float64(opt.ImageWidth)
	height := float64(opt.ImageHeight)

	lookDir := opt.LookFrom.Sub(opt.LookAt)
	if lookDir.Len() == 0 {
		fatalf("camera: LookFrom and LookAt must differ, got both %v", opt.LookFrom)
	}
	if opt.Up.Cross(lookDir).Len() == 0 {
		fatalf("camera: Up must not be parallel to LookFrom-LookAt, got Up %v", opt.Up)
	}

	theta := opt.VFOVDegrees * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * opt.FocusDist
	viewportWidth := viewportHeight * (width / height)

	w := lookDir.Normalize()
	u := opt.Up.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Mul(viewportWidth)
	viewportV := v.Mul(-viewportHeight)

	pixelDeltaU := viewportU.Mul(1 / width)
	pixelDeltaV := viewportV.Mul(1 / height)

	viewportUpperLeft := opt.LookFrom.
		Sub(w.Mul(opt.FocusDist)).
		Sub(viewportU.Mul(0.5)).
		Sub(viewportV.Mul(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Mul(0.5))

	defocusRadius := opt.FocusDist * math.Tan(opt.DefocusAngleDegrees*math.Pi/180/2)

	return &Camera{
		imageWidth:   opt.ImageWidth,
		imageHeight:  opt.ImageHeight,
		center:       opt.LookFrom,
		pixel00Loc:   pixel00Loc,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		u:            u,
		v:            v,
		w:            w,
		defocusAngle: opt.DefocusAngleDegrees,
		defocusU:     u.Mul(defocusRadius),
		defocusV:     v.Mul(defocusRadius),
	}
}

// GenerateRay returns a jittered primary ray through pixel (i, j),
// originating on the defocus disk when one is configured.
func (c *Camera) GenerateRay(i, j int, rng *rand.Rand) vecmath.Ray {
	offsetX := rng.Float64() - 0.5
	offsetY := rng.Float64() - 0.5

	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Mul(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Mul(float64(j) + offsetY))

	origin := c.center
	if c.defocusAngle > 0 {
		origin = c.defocusDiskSample(rng)
	}

	return vecmath.Ray{Origin: origin, Dir: pixelSample.Sub(origin)}
}

func (c *Camera) defocusDiskSample(rng *rand.Rand) vecmath.Vec3 {
	p := core.RandomInUnitDisk(rng)
	return c.center.Add(c.defocusU.Mul(p.X())).Add(c.defocusV.Mul(p.Y()))
}
