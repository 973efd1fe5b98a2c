// Package ascii turns a canvas into greyscale character art.
package ascii

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/knetic/govaluate"

	"PictureToAscii/canvas"
	"PictureToAscii/utils"
)

const (
	// DefaultRamp runs from sparse to dense glyphs; brighter pixels pick
	// denser glyphs.
	DefaultRamp = "`^\",:;Il!i~+_-?][}{1)(|\\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$"

	DefaultBrightness = "(R + G + B) / 3"

	// DefaultRepeat glyphs per pixel roughly square up terminal cells.
	DefaultRepeat = 2
)

var ErrEmptyRamp = errors.New("ascii: ramp must contain at least one glyph")

// Renderer maps pixels onto a glyph ramp.
type Renderer struct {
	ramp           []rune
	repeat         int
	brightnessExpr string
	brightness     *govaluate.EvaluableExpression
}

type Option func(*Renderer)

func WithRamp(ramp string) Option {
	return func(r *Renderer) { r.ramp = []rune(ramp) }
}

func WithRepeat(n int) Option {
	return func(r *Renderer) { r.repeat = n }
}

// WithBrightness sets the expression that reduces a pixel to a 0-255 level.
// It may use R, G, B and the functions in utils.GetExpressionFunctions.
func WithBrightness(expr string) Option {
	return func(r *Renderer) { r.brightnessExpr = expr }
}

func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		ramp:           []rune(DefaultRamp),
		repeat:         DefaultRepeat,
		brightnessExpr: DefaultBrightness,
	}
	for _, opt := range opts {
		opt(r)
	}

	if len(r.ramp) == 0 {
		return nil, ErrEmptyRamp
	}
	if r.repeat < 1 {
		return nil, fmt.Errorf("ascii: repeat must be at least 1, got %d", r.repeat)
	}
	expr, err := utils.CompileBrightness(r.brightnessExpr)
	if err != nil {
		return nil, fmt.Errorf("ascii: %w", err)
	}
	r.brightness = expr
	return r, nil
}

type pixelParameters canvas.Pixel

func (p pixelParameters) Get(name string) (interface{}, error) {
	switch name {
	case "R":
		return float64(p.Red), nil
	case "G":
		return float64(p.Green), nil
	case "B":
		return float64(p.Blue), nil
	}
	return nil, fmt.Errorf("ascii: unknown variable '%s'", name)
}

// Level evaluates the brightness expression for p, clamped to [0, 255].
func (r *Renderer) Level(p canvas.Pixel) (float64, error) {
	out, err := r.brightness.Eval(pixelParameters(p))
	if err != nil {
		return 0, fmt.Errorf("ascii: evaluating '%s': %w", r.brightnessExpr, err)
	}
	v, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("ascii: '%s' produced %T, want a number", r.brightnessExpr, out)
	}
	switch {
	case v < 0:
		v = 0
	case v > 255:
		v = 255
	}
	return v, nil
}

// Glyph picks the ramp entry for p: level/255 * (len-1), truncated.
func (r *Renderer) Glyph(p canvas.Pixel) (rune, error) {
	level, err := r.Level(p)
	if err != nil {
		return 0, err
	}
	idx := int(level / 255 * float64(len(r.ramp)-1))
	return r.ramp[idx], nil
}

// Render writes one line per pixel row, top of the picture first.
func (r *Renderer) Render(w io.Writer, c *canvas.Canvas) error {
	bw := bufio.NewWriter(w)

	for y := c.Height() - 1; y >= 0; y-- {
		for x := 0; x < c.Width(); x++ {
			p, err := c.At(x, y)
			if err != nil {
				return err
			}
			g, err := r.Glyph(p)
			if err != nil {
				return err
			}
			for i := 0; i < r.repeat; i++ {
				if _, err := bw.WriteRune(g); err != nil {
					return err
				}
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// RenderFile writes the rendering of c to a plain text file at path.
func (r *Renderer) RenderFile(path string, c *canvas.Canvas) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ascii: creating '%s': %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("ascii: closing '%s': %w", path, cerr)
		}
	}()

	if err := r.Render(f, c); err != nil {
		return fmt.Errorf("ascii: writing '%s': %w", path, err)
	}
	return nil
}
