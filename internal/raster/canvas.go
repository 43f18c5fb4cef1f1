package raster

import (
	"fmt"
	"image"

	"whitted-renderer/internal/colour"
)

// Canvas holds the rendering target as a flat slice for cache locality.
// Pixels are linear, unclamped colours; (0,0) is the top-left corner.
type Canvas struct {
	Width  int
	Height int
	Pix    []colour.Colour // len = W*H, row-major
}

// NewCanvas allocates a canvas filled with fill.
func NewCanvas(w, h int, fill colour.Colour) *Canvas {
	pix := make([]colour.Colour, w*h)
	if fill != colour.Black {
		for i := range pix {
			pix[i] = fill
		}
	}
	return &Canvas{Width: w, Height: h, Pix: pix}
}

// WritePixel sets the colour at (x, y). Coordinates outside the canvas panic.
func (c *Canvas) WritePixel(x, y int, col colour.Colour) {
	c.Pix[c.offset(x, y)] = col
}

// PixelAt returns the colour at (x, y). Coordinates outside the canvas panic.
func (c *Canvas) PixelAt(x, y int) colour.Colour {
	return c.Pix[c.offset(x, y)]
}

func (c *Canvas) offset(x, y int) int {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		panic(fmt.Sprintf("raster: pixel (%d,%d) outside %dx%d canvas", x, y, c.Width, c.Height))
	}
	return y*c.Width + x
}

// ToNRGBA quantizes the canvas into an opaque 8-bit image.
func (c *Canvas) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			r, g, b := c.Pix[y*c.Width+x].Quantize(255)
			i := img.PixOffset(x, y)
			img.Pix[i] = uint8(r)
			img.Pix[i+1] = uint8(g)
			img.Pix[i+2] = uint8(b)
			img.Pix[i+3] = 255
		}
	}
	return img
}
