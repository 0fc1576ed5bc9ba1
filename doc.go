// Package ledmatrix drives a 5x5 WS2812-style addressable LED matrix.
//
// Each LED takes one 24-bit GRB value. Values are shifted down a single data line, one
// LED after another, and latched when the line stays low for a short reset period.
// This driver implements the same Draw/Bounds/ColorModel/Halt shape as the periph.io
// display drivers.
//
// # Pixel Words
//
// Channel intensities (0.0 to 1.0) are packed by the pixel package into a 32-bit word:
//
//	G<<24 | R<<16 | B<<8
//
// The low byte is always zero. Out-of-range intensities are clamped before scaling.
//
// # Hardware Connection
//
// The driver generates the WS2812 waveform on the MOSI line of an SPI port. Each data
// bit becomes three SPI bits at 2.4MHz (110 for one, 100 for zero):
//
//	Matrix Pin → System Pin
//	GND        → GND
//	VCC        → 5V
//	DIN        → SPI Data (MOSI)
//
// Any other transport can be plugged in by implementing Sink.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/host/v3"
//
//		"github.com/flavioheleno/ledmatrix"
//		"github.com/flavioheleno/ledmatrix/glyph"
//		"github.com/flavioheleno/ledmatrix/pixel"
//	)
//
//	func main() {
//		host.Init()
//
//		spiBus, _ := spireg.Open("")
//		defer spiBus.Close()
//
//		dev, _ := ledmatrix.NewSPI(spiBus, nil)
//		defer dev.Halt()
//
//		// Show the letter K in blue
//		dev.Transmit(glyph.K.Render(pixel.Blue))
//	}
//
// # Panel Layout
//
// Glyphs and frames are addressed in logical row-major order: (0, 0) is the top-left
// pixel. The order in which LEDs are chained on the board is described by a Layout,
// which maps chain position k to the logical pixel shown there:
//
//	Serpentine(5, 5) // zig-zag board, chain starts bottom-right (default)
//	RowMajor(5, 5)   // chain runs left to right, top to bottom
//	Reversed(5, 5)   // chain runs right to left, bottom to top
//
// # Animations and Commands
//
// The anim package plays timed sequences of frames, and the command package maps keypad
// keys to displays and animations:
//
//	seq := anim.New(dev, nil)
//	seq.Play(anim.Closing())
//
// Every call blocks until the whole sequence has been shown.
//
// # Logging
//
// The package is silent by default. Call SetLogger to enable logging for ledmatrix and
// all its sub-packages:
//
//	ledmatrix.SetLogger(slog.Default())
package ledmatrix
