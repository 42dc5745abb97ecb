// Package rng seeds a per-worker deterministic random stream. A render
// with a fixed base seed and thread count always reproduces the same
// image, provided the caller keeps worker i's row assignment fixed
// across runs (render.Scene.Render does) — the stream itself only
// depends on (baseSeed, workerID), never on scheduling order.
package rng

import "math/rand"

// workerMix is the odd 32-bit mixing constant the teacher's particle
// emitter worker pool uses to spread per-worker seeds; reused here for
// the same reason: cheap decorrelation between adjacent worker indices.
const workerMix = 0x9e3779b1

// New returns a *rand.Rand seeded deterministically from baseSeed and
// workerID. Two calls with the same pair always produce the same stream.
func New(baseSeed int64, workerID int) *rand.Rand {
	return rand.New(rand.NewSource(baseSeed + int64(workerID+1)*workerMix))
}
