// Package config loads render options from JSON, the same
// encoding/json-plus-os.ReadFile/WriteFile idiom the teacher's preset
// loader uses for scene data.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// SplitMethod mirrors bvh.SplitMethod as a JSON-friendly string so
// config files stay readable ("sah" / "middle") instead of magic ints.
type SplitMethod string

const (
	SplitSAH    SplitMethod = "sah"
	SplitMiddle SplitMethod = "middle"
)

// RenderOptions is the full set of knobs a render invocation needs,
// loadable from a JSON file or filled in with Defaults and overridden by
// flags.
type RenderOptions struct {
	ImageWidth  int `json:"image_width"`
	ImageHeight int `json:"image_height"`

	SamplesPerPixel int `json:"samples_per_pixel"`
	MaxDepth        int `json:"max_depth"`

	AdaptiveSampling bool `json:"adaptive_sampling"`

	BVHMaxLeafSize int         `json:"bvh_max_leaf_size"`
	BVHSplitMethod SplitMethod `json:"bvh_split_method"`

	BaseSeed    int64 `json:"base_seed"`
	ThreadCount int   `json:"thread_count"`

	Background [3]float64 `json:"background"`

	OutputPath string `json:"output_path"`
}

// Defaults mirrors the reference renderer's camera/render defaults:
// 10 samples per pixel, depth 10, a single-digit-leaf-size BVH, SAH
// splitting, and one worker per logical CPU (ThreadCount left at 0,
// resolved by the caller via runtime.GOMAXPROCS).
func Defaults() RenderOptions {
	return RenderOptions{
		ImageWidth:      400,
		ImageHeight:     225,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		BVHMaxLeafSize:  4,
		BVHSplitMethod:  SplitSAH,
		BaseSeed:        42,
		ThreadCount:     0,
		Background:      [3]float64{0.5, 0.7, 1.0},
		OutputPath:      "output.ppm",
	}
}

// Load reads a JSON render-options file, starting from Defaults so a
// partial file only needs to specify what it overrides.
func Load(path string) (RenderOptions, error) {
	opts := Defaults()
	bytes, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := json.Unmarshal(bytes, &opts); err != nil {
		return opts, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return opts, nil
}

// Save writes opts to path as indented JSON.
func Save(path string, opts RenderOptions) error {
	bytes, err := json.MarshalIndent(opts, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshaling options: %w", err)
	}
	return os.WriteFile(path, bytes, 0644)
}
