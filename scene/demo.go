// Package scene assembles the small set of built-in demo scenes the
// command-line entry point renders. Full scene-file (OBJ/material
// library) loading is out of scope; these builders stand in for a
// scene loader. Between them they use both primitive kinds and the
// Lambertian, Metal and Dielectric materials; Light and the BVH
// diagnostic materials appear in neither.
package scene

import (
	"github.com/lumenrt/pathtracer/camera"
	"github.com/lumenrt/pathtracer/core"
	"github.com/lumenrt/pathtracer/vecmath"
)

// Built is a fully assembled scene ready for BVH construction: a flat
// primitive list plus the camera that will view it.
type Built struct {
	Primitives []core.Primitive
	Camera     *camera.Camera
}

// Spheres builds the reference renderer's signature scene: a large
// ground sphere (checker-textured Lambertian), a glass sphere, a
// diffuse sphere, and a fuzzed metal sphere, viewed through a
// defocus-disk camera.
func Spheres(imageWidth, imageHeight int) Built {
	ground := core.NewLambertianTexture(core.NewCheckerTexture(0.32,
		vecmath.Vec3{0.2, 0.3, 0.1},
		vecmath.Vec3{0.9, 0.9, 0.9},
	))

	glass := core.NewDielectric(1.5)
	diffuse := core.NewLambertian(vecmath.Vec3{0.4, 0.2, 0.1})
	metal := core.NewMetal(vecmath.Vec3{0.7, 0.6, 0.5}, 0.0)

	prims := []core.Primitive{
		core.NewSphere(vecmath.Vec3{0, -1000, 0}, 1000, ground),
		core.NewSphere(vecmath.Vec3{0, 1, 0}, 1, glass),
		core.NewSphere(vecmath.Vec3{-4, 1, 0}, 1, diffuse),
		core.NewSphere(vecmath.Vec3{4, 1, 0}, 1, metal),
	}

	cam := camera.New(camera.Options{
		ImageWidth:          imageWidth,
		ImageHeight:         imageHeight,
		VFOVDegrees:         20,
		LookFrom:            vecmath.Vec3{13, 2, 3},
		LookAt:              vecmath.Vec3{0, 0, 0},
		Up:                  vecmath.Vec3{0, 1, 0},
		DefocusAngleDegrees: 0.6,
		FocusDist:           10.0,
	})

	return Built{Primitives: prims, Camera: cam}
}

// Quad builds a minimal two-triangle quad scene with the given material,
// viewed head-on through a pinhole camera.
func Quad(imageWidth, imageHeight int, mat core.Material) Built {
	v0 := vecmath.Vec3{-1, -1, 0}
	v1 := vecmath.Vec3{1, -1, 0}
	v2 := vecmath.Vec3{1, 1, 0}
	v3 := vecmath.Vec3{-1, 1, 0}

	prims := []core.Primitive{
		core.NewTriangle(v0, v1, v2, mat),
		core.NewTriangle(v0, v2, v3, mat),
	}

	cam := camera.New(camera.Options{
		ImageWidth:  imageWidth,
		ImageHeight: imageHeight,
		VFOVDegrees: 40,
		LookFrom:    vecmath.Vec3{0, 0, 5},
		LookAt:      vecmath.Vec3{0, 0, 0},
		Up:          vecmath.Vec3{0, 1, 0},
		FocusDist:   5.0,
	})

	return Built{Primitives: prims, Camera: cam}
}
