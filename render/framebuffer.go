package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/lumenrt/pathtracer/vecmath"
)

// FrameBuffer is row-major width×height linear RGB. It is the hot-path
// representation; tone mapping to 8-bit RGB happens only at output.
type FrameBuffer struct {
	Width, Height int
	pixels        []vecmath.Vec3
}

func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		pixels: make([]vecmath.Vec3, width*height),
	}
}

func (fb *FrameBuffer) Set(x, y int, c vecmath.Vec3) {
	fb.pixels[y*fb.Width+x] = c
}

func (fb *FrameBuffer) At(x, y int) vecmath.Vec3 {
	return fb.pixels[y*fb.Width+x]
}

// toneMap applies c ← sqrt(max(c,0)) per channel, clamps to [0,0.999],
// and scales into a truncated byte in [0,256).
func toneMap(c float64) byte {
	c = math.Sqrt(math.Max(c, 0))
	iv := vecmath.NewInterval(0, 0.999)
	c = iv.Clamp(c)
	return byte(256 * c)
}

// WritePPM tone-maps the buffer and writes it as a binary-free ASCII
// PPM (P3), the same container the reference renderer's row loop
// emits before its OpenCV display path takes over.
func (fb *FrameBuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := fb.At(x, y)
			r := toneMap(c.X())
			g := toneMap(c.Y())
			b := toneMap(c.Z())
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
