package core

import (
	"math"
	"math/rand"

	"github.com/lumenrt/pathtracer/vecmath"
)

// Material is polymorphic over three optional capabilities: scatter, emit
// and a sample-rate hint. Rather than an open inheritance hierarchy, every
// concrete material embeds BaseMaterial and overrides only the methods it
// needs — a closed sum type plus a pair of operation functions, per the
// source's own dominant dispatch pattern (see NewMaterial/NewVoxelObject
// in the teacher's core package for the equivalent struct-per-kind shape).
type Material interface {
	// Scatter produces an outgoing ray and a multiplicative attenuation.
	// ok == false terminates the path with no further contribution.
	Scatter(rIn vecmath.Ray, rec Record, rng *rand.Rand) (attenuation vecmath.Vec3, scattered vecmath.Ray, ok bool)

	// Emit returns emitted radiance at this hit, if any. An emitting hit
	// terminates the path immediately with its emission.
	Emit(rIn vecmath.Ray, rec Record) (emitted vecmath.Vec3, ok bool)

	// SampleRate maps the global samples-per-pixel to the count actually
	// used once a primary ray first hits this material. Default is n.
	SampleRate(n int) int
}

// BaseMaterial supplies the default for all three capabilities: no
// scatter, no emission, no sample-rate adjustment.
type BaseMaterial struct{}

func (BaseMaterial) Scatter(vecmath.Ray, Record, *rand.Rand) (vecmath.Vec3, vecmath.Ray, bool) {
	return vecmath.Vec3{}, vecmath.Ray{}, false
}

func (BaseMaterial) Emit(vecmath.Ray, Record) (vecmath.Vec3, bool) {
	return vecmath.Vec3{}, false
}

func (BaseMaterial) SampleRate(n int) int {
	return n
}

// sampleRateHint applies the f*n sample-count hint with a floor of 1,
// shared by Lambertian and Metal.
func sampleRateHint(n int, f float64) int {
	r := int(math.Floor(f * float64(n)))
	if r < 1 {
		return 1
	}
	return r
}

// Lambertian is an ideal diffuse surface: scatter direction is the normal
// plus a random unit vector, falling back to the bare normal when that sum
// is degenerate.
type Lambertian struct {
	BaseMaterial
	Tex Texture
}

func NewLambertian(albedo vecmath.Vec3) *Lambertian {
	return &Lambertian{Tex: NewSolidColor(albedo)}
}

func NewLambertianTexture(tex Texture) *Lambertian {
	return &Lambertian{Tex: tex}
}

func (l *Lambertian) Scatter(rIn vecmath.Ray, rec Record, rng *rand.Rand) (vecmath.Vec3, vecmath.Ray, bool) {
	dir := rec.N.Add(RandomUnitVector(rng))
	if NearZero(dir) {
		dir = rec.N
	}
	attenuation := l.Tex.Value(rec.U, rec.V, rec.P)
	return attenuation, vecmath.Ray{Origin: rec.P, Dir: dir}, true
}

func (l *Lambertian) SampleRate(n int) int {
	return sampleRateHint(n, 0.2)
}

// Metal is a fuzzed mirror: the reflection direction is normalized, then
// jittered by fuzz (in [0,1]) times a random unit vector; the jittered
// direction is not renormalized.
type Metal struct {
	BaseMaterial
	Tex  Texture
	Fuzz float64
}

func NewMetal(albedo vecmath.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Tex: NewSolidColor(albedo), Fuzz: fuzz}
}

func (m *Metal) Scatter(rIn vecmath.Ray, rec Record, rng *rand.Rand) (vecmath.Vec3, vecmath.Ray, bool) {
	reflected := Reflect(rIn.Dir, rec.N).Normalize()
	reflected = reflected.Add(RandomUnitVector(rng).Mul(m.Fuzz))
	if reflected.Dot(rec.N) <= 0 {
		return vecmath.Vec3{}, vecmath.Ray{}, false
	}
	attenuation := m.Tex.Value(rec.U, rec.V, rec.P)
	return attenuation, vecmath.Ray{Origin: rec.P, Dir: reflected}, true
}

func (m *Metal) SampleRate(n int) int {
	return sampleRateHint(n, 0.5)
}

// Dielectric is a refractive surface (glass, water, ...) with index of
// refraction Eta. Attenuation is always 1; reflection vs. refraction is
// chosen by total-internal-reflection and the Schlick approximation.
type Dielectric struct {
	BaseMaterial
	Eta float64
}

func NewDielectric(eta float64) *Dielectric {
	return &Dielectric{Eta: eta}
}

func (d *Dielectric) Scatter(rIn vecmath.Ray, rec Record, rng *rand.Rand) (vecmath.Vec3, vecmath.Ray, bool) {
	refractionRatio := d.Eta
	if rec.FrontFace {
		refractionRatio = 1.0 / d.Eta
	}

	unitDir := rIn.Dir.Normalize()
	cosTheta := math.Min(unitDir.Mul(-1).Dot(rec.N), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction vecmath.Vec3
	if cannotRefract || Schlick(cosTheta, d.Eta) > rng.Float64() {
		direction = Reflect(unitDir, rec.N)
	} else {
		direction = Refract(unitDir, rec.N, refractionRatio)
	}

	return vecmath.Vec3{1, 1, 1}, vecmath.Ray{Origin: rec.P, Dir: direction}, true
}

// Light is a pure emitter: it never scatters, so the path always
// terminates with Color*Intensity at a hit.
type Light struct {
	BaseMaterial
	Color     vecmath.Vec3
	Intensity float64
}

func NewLight(color vecmath.Vec3, intensity float64) *Light {
	return &Light{Color: color, Intensity: intensity}
}

func (l *Light) Emit(rIn vecmath.Ray, rec Record) (vecmath.Vec3, bool) {
	return l.Color.Mul(l.Intensity), true
}
