// Package pixel provides the color encoding and frame format for WS2812-style LED strings.
//
// A packed word carries green in the high byte, then red, then blue; the low byte is
// always zero. This package provides the Word type and the Frame image implementation.
package pixel

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	xdraw "golang.org/x/image/draw"
)

// Word is one packed pixel as sent down the LED string.
type Word uint32

// G returns the green byte.
func (w Word) G() uint8 { return uint8(w >> 24) }

// R returns the red byte.
func (w Word) R() uint8 { return uint8(w >> 16) }

// B returns the blue byte.
func (w Word) B() uint8 { return uint8(w >> 8) }

// String returns the word as 32 binary digits, most significant first.
func (w Word) String() string {
	return fmt.Sprintf("%032b", uint32(w))
}

// Encode packs three channel intensities into a word.
// The argument order (blue, red, green) follows the wire order read from the low byte up.
func Encode(blue, red, green float64) Word {
	return Word(channel(green)<<24 | channel(red)<<16 | channel(blue)<<8)
}

// EncodeColor packs c into a word.
func EncodeColor(c colorful.Color) Word {
	return Encode(c.B, c.R, c.G)
}

// channel clamps v to [0, 1] and scales it to a byte, truncating.
func channel(v float64) uint32 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xFF
	}
	return uint32(uint8(v * 255))
}

// Common colors.
var (
	Off   = colorful.Color{}
	White = colorful.Color{R: 1, G: 1, B: 1}
	Red   = colorful.Color{R: 1}
	Green = colorful.Color{G: 1}
	Blue  = colorful.Color{B: 1}
)

// Scale multiplies every channel of c by k.
func Scale(c colorful.Color, k float64) colorful.Color {
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}
}

// toColor converts any color.Color to colorful.Color.
func toColor(c color.Color) color.Color {
	if cc, ok := c.(colorful.Color); ok {
		return cc
	}
	// Fully transparent colors map to off.
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return colorful.Color{}
	}
	return cc
}

// Model converts colors to colorful.Color.
var Model = color.ModelFunc(toColor)

// Frame is an image of channel intensities, one colorful.Color per pixel in row-major order.
type Frame struct {
	Pix    []colorful.Color // Pixel data, row-major
	Stride int              // Pixels per row
	Rect   image.Rectangle  // Image bounds
}

// NewFrame creates a new Frame with the specified bounds, all pixels off.
func NewFrame(r image.Rectangle) *Frame {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Frame{Rect: r}
	}
	return &Frame{
		Pix:    make([]colorful.Color, w*h),
		Stride: w,
		Rect:   r,
	}
}

// ColorModel returns the color model of the image.
func (f *Frame) ColorModel() color.Model {
	return Model
}

// Bounds returns the image bounds.
func (f *Frame) Bounds() image.Rectangle {
	return f.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	return f.ColorAt(x, y)
}

// ColorAt returns the intensity triple of the pixel at (x, y).
func (f *Frame) ColorAt(x, y int) colorful.Color {
	if !(image.Point{X: x, Y: y}.In(f.Rect)) {
		return colorful.Color{}
	}
	return f.Pix[f.PixOffset(x, y)]
}

// Set sets the color of the pixel at (x, y).
func (f *Frame) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(f.Rect)) {
		return
	}
	f.Pix[f.PixOffset(x, y)] = Model.Convert(c).(colorful.Color)
}

// SetColor sets the intensity triple of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (f *Frame) SetColor(x, y int, c colorful.Color) {
	if !(image.Point{X: x, Y: y}.In(f.Rect)) {
		return
	}
	f.Pix[f.PixOffset(x, y)] = c
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.Pix {
		f.Pix[i] = c
	}
}

// PixOffset returns the index in Pix of the pixel at (x, y).
func (f *Frame) PixOffset(x, y int) int {
	return (y-f.Rect.Min.Y)*f.Stride + (x - f.Rect.Min.X)
}

// WordAt returns the packed word for the pixel at (x, y).
func (f *Frame) WordAt(x, y int) Word {
	return EncodeColor(f.ColorAt(x, y))
}

// Fit returns a frame with bounds r holding src scaled to fill it.
func Fit(src image.Image, r image.Rectangle) *Frame {
	f := NewFrame(r)
	if r.Empty() || src.Bounds().Empty() {
		return f
	}
	xdraw.CatmullRom.Scale(f, r, src, src.Bounds(), xdraw.Src, nil)
	return f
}
