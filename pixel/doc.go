// Package pixel provides the color encoding and frame format for WS2812-style LED strings.
//
// Each LED receives one 24-bit GRB value. This package packs it into a 32-bit word with
// green in the most significant byte and the low byte left at zero:
//
//	bit:   31      24 23      16 15       8 7        0
//	       [ green   ][  red    ][  blue   ][ unused  ]
//
// Channel intensities are floating point values in [0, 1]. Values outside that range are
// clamped before scaling, so a malformed intensity can never spill into a neighbouring
// channel.
//
// This package provides:
//
// - Word: a packed pixel word with channel accessors
// - Encode / EncodeColor: intensity to word conversion
// - Model: a color model converting standard Go colors to colorful.Color
// - Frame: an image.Image / draw.Image of intensity triples
//
// Example usage:
//
//	// Pure red at full intensity
//	w := pixel.Encode(0, 1, 0) // 0x00FF0000
//
//	// A 5x5 frame, all pixels dim green
//	f := pixel.NewFrame(image.Rect(0, 0, 5, 5))
//	draw.Draw(f, f.Bounds(), image.NewUniform(colorful.Color{G: 0.5}), image.Point{}, draw.Src)
package pixel
