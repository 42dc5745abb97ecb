package render

import (
	"fmt"
	"sync"

	"github.com/lumenrt/pathtracer/rng"
)

// fatalf panics with a descriptive message for a programmer error —
// calling Render before the scene's BVH is built, or with no camera —
// rather than letting it surface as a nil-pointer panic somewhere deep
// in the estimator.
func fatalf(format string, args ...interface{}) {
	panic(fmt.Sprintf(format, args...))
}

// Render runs the data-parallel scanline driver: threadCount workers
// each own a fixed, statically-assigned stripe of rows (worker i takes
// rows i, i+threadCount, i+2*threadCount, ...) and write directly into
// disjoint slices of the frame buffer, so — unlike the teacher's
// particle job pool, which also fans results back through a channel —
// no result aggregation stage is needed here; each worker's writes
// never overlap another's. The row assignment is fixed by workerID
// rather than pulled from a shared channel so that worker i always
// renders the same rows with the same seeded stream regardless of how
// the Go scheduler interleaves the goroutines — the per-worker RNG
// stream from rng.New is only reproducible if the same worker always
// owns the same rows.
func (s *Scene) Render(threadCount int, baseSeed int64, profiler *Profiler) *FrameBuffer {
	if s.Root == nil {
		fatalf("render: Scene.Root is nil — call bvh.Build and assign it before Render")
	}
	if s.Camera == nil {
		fatalf("render: Scene.Camera is nil — Render requires a camera")
	}
	if threadCount < 1 {
		threadCount = 1
	}

	fb := NewFrameBuffer(s.Camera.ImageWidth(), s.Camera.ImageHeight())

	if profiler != nil {
		profiler.BeginScope("render")
		defer profiler.EndScope("render")
	}

	var wg sync.WaitGroup
	wg.Add(threadCount)

	for worker := 0; worker < threadCount; worker++ {
		go func(workerID int) {
			defer wg.Done()
			stream := rng.New(baseSeed, workerID)
			for y := workerID; y < fb.Height; y += threadCount {
				for x := 0; x < fb.Width; x++ {
					fb.Set(x, y, s.samplePixel(x, y, stream))
				}
			}
		}(worker)
	}

	wg.Wait()

	return fb
}
