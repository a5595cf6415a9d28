// Package viewer renders drop grids as shaded top-down images.
package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/philipparndt/gocut/pkg/probe"
)

// Options controls how a grid is drawn
type Options struct {
	Scale      int        // pixels per sample edge, defaults to 1
	Background color.RGBA // used for samples without contact
}

// DefaultOptions draws one pixel per sample on a transparent background
func DefaultOptions() Options {
	return Options{Scale: 1}
}

// shade maps a normalized height to a gray level, keeping the lowest hits
// distinguishable from misses
func shade(t float64) color.RGBA {
	v := uint8(40 + math.Round(t*215))
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

// Render draws the grid with +Y pointing up. Higher resting heights are lighter.
func Render(grid *probe.Grid, opts Options) *image.RGBA {
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, grid.Columns*scale, grid.Rows*scale))

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range grid.Samples {
		if s.Hit {
			lo = math.Min(lo, s.Z)
			hi = math.Max(hi, s.Z)
		}
	}
	span := hi - lo

	for row := 0; row < grid.Rows; row++ {
		y0 := (grid.Rows - 1 - row) * scale
		for col := 0; col < grid.Columns; col++ {
			s := grid.At(col, row)
			c := opts.Background
			if s.Hit {
				t := 1.0
				if span > 0 {
					t = (s.Z - lo) / span
				}
				c = shade(t)
			}
			x0 := col * scale
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetRGBA(x0+dx, y0+dy, c)
				}
			}
		}
	}
	return img
}

// WritePNG stores img as a PNG file
func WritePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return file.Close()
}
