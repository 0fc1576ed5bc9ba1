// Package glyph holds the fixed 5x5 patterns shown on the LED matrix.
//
// A Glyph is a mask of 25 intensities in row-major order, row 0 at the top and column 0
// on the left. Masks are binary: 1 lights the pixel with the color it is rendered in,
// 0 leaves it off. Rendering is a linear scale, so any other value scales the color and
// is reported by Validate as a defect.
package glyph

import (
	"fmt"
	"image"

	"github.com/flavioheleno/ledmatrix/pixel"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// Size is the width and height of a glyph.
	Size = 5
	// Len is the number of pixels in a glyph.
	Len = Size * Size
)

// Glyph is a 5x5 pixel mask.
type Glyph [Len]float64

// Sequence is an ordered list of glyphs shown one after another.
type Sequence []Glyph

// At returns the mask value at column x, row y.
func (g Glyph) At(x, y int) float64 {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return 0
	}
	return g[y*Size+x]
}

// Render returns a 5x5 frame with every pixel set to c scaled by the mask value.
func (g Glyph) Render(c colorful.Color) *pixel.Frame {
	f := pixel.NewFrame(image.Rect(0, 0, Size, Size))
	for i, v := range g {
		f.Pix[i] = pixel.Scale(c, v)
	}
	return f
}

// Validate reports the first value that is neither 0 nor 1.
func (g Glyph) Validate() error {
	for i, v := range g {
		if v != 0 && v != 1 {
			return fmt.Errorf("glyph: value %v at row %d column %d is not 0 or 1", v, i/Size, i%Size)
		}
	}
	return nil
}

// Lookup returns the glyph for a digit or letter.
func Lookup(r rune) (Glyph, bool) {
	g, ok := chars[r]
	return g, ok
}

// Parse returns the sequence of glyphs spelling s.
func Parse(s string) (Sequence, error) {
	seq := make(Sequence, 0, len(s))
	for _, r := range s {
		g, ok := Lookup(r)
		if !ok {
			return nil, fmt.Errorf("glyph: no glyph for %q", r)
		}
		seq = append(seq, g)
	}
	return seq, nil
}

// MustParse is like Parse but panics if s contains a character without a glyph.
func MustParse(s string) Sequence {
	seq, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return seq
}

// Library returns every named glyph.
func Library() map[string]Glyph {
	lib := map[string]Glyph{
		"square": Square,
		"border": Border,
		"arrow":  Arrow,
		"end":    End,
		"blank":  Blank,
	}
	for r, g := range chars {
		lib[string(r)] = g
	}
	return lib
}
