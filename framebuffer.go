package swrast

import (
	"image"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"
)

// Framebuffer holds RGB colors in the range [0, 255]. Row 0 is the top of
// the image.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []mgl32.Vec3
}

func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]mgl32.Vec3, width*height),
	}
}

func (fb *Framebuffer) At(x, row int) mgl32.Vec3 {
	return fb.Pix[row*fb.Width+x]
}

func (fb *Framebuffer) Fill(c mgl32.Vec3) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// RGBA converts to 8 bits per channel, clamping out of range values. Rows
// are converted in parallel bands.
func (fb *Framebuffer) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	if fb.Width == 0 || fb.Height == 0 {
		return img
	}

	workers := runtime.GOMAXPROCS(0)
	band := (fb.Height + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < fb.Height; start += band {
		start, end := start, min(start+band, fb.Height)
		g.Go(func() error {
			for row := start; row < end; row++ {
				for x := 0; x < fb.Width; x++ {
					c := fb.Pix[row*fb.Width+x]
					o := img.PixOffset(x, row)
					img.Pix[o+0] = toByte(c.X())
					img.Pix[o+1] = toByte(c.Y())
					img.Pix[o+2] = toByte(c.Z())
					img.Pix[o+3] = 0xff
				}
			}
			return nil
		})
	}
	// workers only copy pixels and always return nil
	_ = g.Wait()

	return img
}

func toByte(v float32) uint8 {
	return uint8(clamp(int(v), 0, 255))
}
