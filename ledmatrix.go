// Package ledmatrix drives a small addressable (WS2812-style) LED matrix.
//
// Frames are transmitted one packed word per LED, in the order given by the panel's
// Layout. The default panel is a 5x5 serpentine board.
//
// See the examples for how to use this package.
package ledmatrix

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"strings"

	"github.com/flavioheleno/ledmatrix/pixel"
	"github.com/lucasb-eyer/go-colorful"
	"periph.io/x/conn/v3/spi"
)

// ErrHalted is returned by every operation on a halted device.
var ErrHalted = errors.New("ledmatrix: halted")

// Opts is the configuration for the LED matrix.
type Opts struct {
	// Panel dimensions in pixels
	W int // Width (default: 5)
	H int // Height (default: 5)

	// Chain order; nil selects Serpentine(W, H)
	Layout Layout
}

// Dev is the device handle for the LED matrix.
type Dev struct {
	sink   Sink
	rect   image.Rectangle
	layout Layout

	// Lazily allocated frame for Draw, Fill and Clear
	next *pixel.Frame

	halted bool
}

// New creates a device that transmits through sink.
//
// opts can be nil to use defaults (5x5 serpentine panel).
func New(sink Sink, opts *Opts) (*Dev, error) {
	if sink == nil {
		return nil, errors.New("ledmatrix: sink is required")
	}
	if opts == nil {
		opts = &Opts{W: 5, H: 5}
	}
	w, h := opts.W, opts.H
	if w == 0 && h == 0 {
		w, h = 5, 5
	}
	if w <= 0 || h <= 0 {
		return nil, errors.New("ledmatrix: width and height must be positive")
	}

	layout := opts.Layout
	if layout == nil {
		layout = Serpentine(w, h)
	}
	if err := layout.Validate(w * h); err != nil {
		return nil, err
	}

	return &Dev{
		sink:   sink,
		rect:   image.Rect(0, 0, w, h),
		layout: layout,
	}, nil
}

// NewSPI creates a device driving the LED string from the MOSI pin of an SPI port.
//
// The SPI port is configured for 2.4MHz, Mode0, 8-bit transfers so that each WS2812 bit
// takes three SPI bits. Each frame is sent as a single transfer followed by the latch
// period.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	s, err := newSPISink(p)
	if err != nil {
		return nil, err
	}
	return New(s, opts)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return pixel.Model
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Layout returns the chain order of the panel.
func (d *Dev) Layout() Layout {
	return d.layout
}

// Transmit sends f to the LED string: exactly one word per pixel, in layout order.
// f must have the same size as the display.
func (d *Dev) Transmit(f *pixel.Frame) error {
	if d.halted {
		return ErrHalted
	}
	return d.transmit(f)
}

func (d *Dev) transmit(f *pixel.Frame) error {
	if f == nil {
		return errors.New("ledmatrix: nil frame")
	}
	if f.Rect.Dx() != d.rect.Dx() || f.Rect.Dy() != d.rect.Dy() {
		return fmt.Errorf("ledmatrix: frame is %dx%d, display is %dx%d",
			f.Rect.Dx(), f.Rect.Dy(), d.rect.Dx(), d.rect.Dy())
	}

	logger := Logger()
	debug := logger.Enabled(context.Background(), slog.LevelDebug)
	var words []string
	if debug {
		words = make([]string, 0, len(d.layout))
	}

	w := d.rect.Dx()
	for k, idx := range d.layout {
		word := f.WordAt(f.Rect.Min.X+idx%w, f.Rect.Min.Y+idx/w)
		if err := d.sink.Send(word); err != nil {
			return fmt.Errorf("ledmatrix: failed to send pixel %d: %w", k, err)
		}
		if debug {
			words = append(words, word.String())
		}
	}

	if fl, ok := d.sink.(Flusher); ok {
		if err := fl.Flush(); err != nil {
			return fmt.Errorf("ledmatrix: failed to flush frame: %w", err)
		}
	}

	if debug {
		logger.Debug("frame transmitted", "words", strings.Join(words, " "))
	}
	return nil
}

// Fill lights every pixel with c.
func (d *Dev) Fill(c colorful.Color) error {
	if d.halted {
		return ErrHalted
	}
	f := d.frame()
	f.Fill(c)
	return d.transmit(f)
}

// Clear turns every pixel off.
func (d *Dev) Clear() error {
	return d.Fill(pixel.Off)
}

// Draw draws an image onto the display.
// The dst rectangle specifies the destination region on the display.
// The src image is positioned at src point sp within the destination.
// Pixels outside dst keep the value of the last Draw, Fill or Clear.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	// Fast path: source is already a full-size frame
	if srcFrame, ok := src.(*pixel.Frame); ok {
		if dst == d.rect && sp == (image.Point{}) && srcFrame.Rect == d.rect {
			return d.transmit(srcFrame)
		}
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	f := d.frame()
	draw.Draw(f, dst, src, sp, draw.Src)
	return d.transmit(f)
}

func (d *Dev) frame() *pixel.Frame {
	if d.next == nil {
		d.next = pixel.NewFrame(d.rect)
	}
	return d.next
}

// Halt turns every pixel off.
// After calling Halt, the device refuses further operations.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	err := d.Clear()
	d.halted = true
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("ledmatrix.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}
