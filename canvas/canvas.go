// Package canvas holds decoded pixel data in memory.
//
// Pixels are stored row-major in the order rows appear in a BMP file: storage
// row 0 is the bottom row of the picture. At and Set address pixels with the
// origin in the bottom-left corner and y growing upwards, which maps straight
// onto that storage order.
package canvas

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a canvas is given a non-positive dimension.
	ErrInvalidSize = errors.New("canvas: width and height must be positive")
	// ErrOutOfBounds is returned by At and Set for coordinates outside the canvas.
	ErrOutOfBounds = errors.New("canvas: coordinates out of bounds")
)

// Pixel is one 24-bit RGB colour. The zero value is black.
type Pixel struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// RGB builds a Pixel from its channels.
func RGB(r, g, b uint8) Pixel {
	return Pixel{Red: r, Green: g, Blue: b}
}

// Canvas is a width x height grid of pixels.
type Canvas struct {
	width  int
	height int
	pixels []Pixel
}

// New creates a black canvas of the given size.
func New(width, height int) (*Canvas, error) {
	c := &Canvas{}
	if err := c.Resize(width, height); err != nil {
		return nil, err
	}
	return c, nil
}

// Resize reallocates the canvas. Previous contents are discarded and every
// pixel is black afterwards.
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	c.width = width
	c.height = height
	c.pixels = make([]Pixel, width*height)
	return nil
}

// Replace swaps in a fully decoded pixel slice. pixels must hold exactly
// width*height entries in storage order; the canvas takes ownership of it.
func (c *Canvas) Replace(width, height int, pixels []Pixel) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if len(pixels) != width*height {
		return fmt.Errorf("canvas: got %d pixels for %dx%d", len(pixels), width, height)
	}
	c.width = width
	c.height = height
	c.pixels = pixels
	return nil
}

func (c *Canvas) Width() int { return c.width }
func (c *Canvas) Height() int { return c.height }

// Raw exposes the backing slice in storage order (bottom row first).
func (c *Canvas) Raw() []Pixel {
	return c.pixels
}

func (c *Canvas) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.width && y < c.height
}

// At returns the pixel at (x, y), origin bottom-left.
func (c *Canvas) At(x, y int) (Pixel, error) {
	if !c.contains(x, y) {
		return Pixel{}, fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, c.width, c.height)
	}
	return c.pixels[y*c.width+x], nil
}

// Set writes the pixel at (x, y), origin bottom-left.
func (c *Canvas) Set(x, y int, p Pixel) error {
	if !c.contains(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, c.width, c.height)
	}
	c.pixels[y*c.width+x] = p
	return nil
}

// LegacyAt is the flipped read earlier versions of the converter used: it
// reads index (height-y)*width + x. Coordinates outside the canvas, and the
// y == 0 row whose index lands past the end of storage, alias pixel 0.
func (c *Canvas) LegacyAt(x, y int) Pixel {
	idx := 0
	if c.contains(x, y) {
		idx = (c.height-y)*c.width + x
	}
	if idx >= len(c.pixels) {
		idx = 0
	}
	return c.pixels[idx]
}
