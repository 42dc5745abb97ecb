package core

import (
	"math"
	"math/rand"

	"github.com/lumenrt/pathtracer/vecmath"
)

// RandomUnitVector samples a direction uniformly on the unit sphere via
// the standard inverse-CDF construction: theta = 2*pi*U1 is the azimuth,
// phi = acos(1 - 2*U2) is the polar angle.
func RandomUnitVector(rng *rand.Rand) vecmath.Vec3 {
	theta := 2 * math.Pi * rng.Float64()
	phi := math.Acos(1 - 2*rng.Float64())
	sinPhi := math.Sin(phi)
	return vecmath.Vec3{
		sinPhi * math.Cos(theta),
		sinPhi * math.Sin(theta),
		math.Cos(phi),
	}
}

// RandomInUnitDisk samples a point uniformly in the unit disk (z=0), used
// for defocus-disk camera origin sampling.
func RandomInUnitDisk(rng *rand.Rand) vecmath.Vec3 {
	for {
		p := vecmath.Vec3{2*rng.Float64() - 1, 2*rng.Float64() - 1, 0}
		if p.Dot(p) < 1 {
			return p
		}
	}
}

// NearZero reports whether every component of v is close to zero, used to
// catch the degenerate Lambertian scatter direction.
func NearZero(v vecmath.Vec3) bool {
	const eps = 1e-8
	return math.Abs(v.X()) < eps && math.Abs(v.Y()) < eps && math.Abs(v.Z()) < eps
}

// Reflect mirrors v about the normal n (n must be unit length).
func Reflect(v, n vecmath.Vec3) vecmath.Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

// Refract bends unit vector uv crossing a boundary with normal n (pointing
// against uv) by etaiOverEtat, via Snell's law. Caller is responsible for
// having already rejected total internal reflection.
func Refract(uv, n vecmath.Vec3, etaiOverEtat float64) vecmath.Vec3 {
	cosTheta := math.Min(uv.Mul(-1).Dot(n), 1.0)
	rOutPerp := uv.Add(n.Mul(cosTheta)).Mul(etaiOverEtat)
	rOutParallel := n.Mul(-math.Sqrt(math.Abs(1.0 - rOutPerp.Dot(rOutPerp))))
	return rOutPerp.Add(rOutParallel)
}

// Schlick is the Schlick reflectance approximation: R0 + (1-R0)(1-cosine)^5
// with R0 = ((1-eta)/(1+eta))^2. Monotone non-increasing in cosine, and
// equal to R0 exactly at cosine == 1.
func Schlick(cosine, eta float64) float64 {
	r0 := (1 - eta) / (1 + eta)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
