// Command pathtracer renders a built-in demo scene offline and writes a
// PPM image, mirroring the teacher's flag-then-init-then-run main shape
// (see the old GLFW entry point this replaces) without any of the
// windowing or input-handling machinery an offline batch renderer has
// no use for.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/google/uuid"

	"github.com/lumenrt/pathtracer/bvh"
	"github.com/lumenrt/pathtracer/config"
	"github.com/lumenrt/pathtracer/logging"
	"github.com/lumenrt/pathtracer/render"
	"github.com/lumenrt/pathtracer/scene"
	"github.com/lumenrt/pathtracer/vecmath"
)

func main() {
	configPath := flag.String("config", "", "path to a render-options JSON file (defaults built in if omitted)")
	outputPath := flag.String("out", "", "output PPM path (overrides config)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	log := logging.NewDefaultLogger("pathtracer", *debug)

	opts := config.Defaults()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Errorf("loading config: %v", err)
			os.Exit(1)
		}
		opts = loaded
	}
	if *outputPath != "" {
		opts.OutputPath = *outputPath
	}

	threadCount := opts.ThreadCount
	if threadCount < 1 {
		threadCount = runtime.GOMAXPROCS(0)
	}

	runID := uuid.New()
	log.Infof("run %s: %dx%d, %d spp, depth %d, %d threads", runID, opts.ImageWidth, opts.ImageHeight, opts.SamplesPerPixel, opts.MaxDepth, threadCount)

	built := scene.Spheres(opts.ImageWidth, opts.ImageHeight)

	profiler := render.NewProfiler()
	profiler.BeginScope("build")
	splitMethod := bvh.SAH
	if opts.BVHSplitMethod == config.SplitMiddle {
		splitMethod = bvh.Middle
	}
	root := bvh.Build(built.Primitives, opts.BVHMaxLeafSize, splitMethod)
	profiler.EndScope("build")

	s := &render.Scene{
		Root:             root,
		Camera:           built.Camera,
		Background:       render.FlatBackground(vecmath.Vec3{opts.Background[0], opts.Background[1], opts.Background[2]}),
		SamplesPerPixel:  opts.SamplesPerPixel,
		MaxDepth:         opts.MaxDepth,
		AdaptiveSampling: opts.AdaptiveSampling,
	}

	fb := s.Render(threadCount, opts.BaseSeed, profiler)

	f, err := os.Create(opts.OutputPath)
	if err != nil {
		log.Errorf("creating output file: %v", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := fb.WritePPM(f); err != nil {
		log.Errorf("writing output: %v", err)
		os.Exit(1)
	}

	fmt.Print(profiler.Summary())
	log.Infof("wrote %s", opts.OutputPath)
}
