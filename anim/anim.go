// Package anim plays timed sequences of frames on an LED matrix.
//
// Playback is synchronous: Play returns once the last frame has been held for its full
// duration. There is no way to interrupt a running sequence.
package anim

import (
	"fmt"
	"time"

	"github.com/flavioheleno/ledmatrix"
	"github.com/flavioheleno/ledmatrix/glyph"
	"github.com/flavioheleno/ledmatrix/pixel"
	"github.com/lucasb-eyer/go-colorful"
)

// Transmitter sends one frame to the display.
type Transmitter interface {
	Transmit(f *pixel.Frame) error
}

// Step is one frame of an animation and how long it stays on.
type Step struct {
	Frame *pixel.Frame
	Hold  time.Duration
}

// Sequencer plays steps on a Transmitter.
type Sequencer struct {
	tx    Transmitter
	sleep func(time.Duration)
}

// New returns a Sequencer for tx. sleep blocks for the hold time of each step; nil
// selects time.Sleep.
func New(tx Transmitter, sleep func(time.Duration)) *Sequencer {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Sequencer{tx: tx, sleep: sleep}
}

// Play transmits each step in order and holds it for its duration.
// Steps with no hold are followed immediately by the next one.
func (s *Sequencer) Play(steps []Step) error {
	start := time.Now()
	for i, st := range steps {
		if err := s.tx.Transmit(st.Frame); err != nil {
			return fmt.Errorf("anim: step %d: %w", i, err)
		}
		if st.Hold > 0 {
			s.sleep(st.Hold)
		}
	}
	ledmatrix.Logger().Debug("animation finished", "steps", len(steps), "elapsed", time.Since(start))
	return nil
}

// Still shows a single glyph in color c for hold.
func Still(g glyph.Glyph, c colorful.Color, hold time.Duration) []Step {
	return []Step{{Frame: g.Render(c), Hold: hold}}
}

// Marquee shows each glyph of seq in color c for hold, one after another.
func Marquee(seq glyph.Sequence, c colorful.Color, hold time.Duration) []Step {
	steps := make([]Step, 0, len(seq))
	for _, g := range seq {
		steps = append(steps, Step{Frame: g.Render(c), Hold: hold})
	}
	return steps
}

// Solid lights every pixel in color c for hold.
func Solid(c colorful.Color, hold time.Duration) Step {
	return Step{Frame: glyph.Square.Render(c), Hold: hold}
}

// Clear turns every pixel off for hold.
func Clear(hold time.Duration) Step {
	return Step{Frame: glyph.Blank.Render(pixel.Off), Hold: hold}
}

// Closing animation timing.
const (
	ClosingSquareHold = 500 * time.Millisecond
	ClosingColorHold  = 3 * time.Second
	ClosingEndHold    = 5 * time.Second
	ClosingBlinkHold  = time.Second
	ClosingBlinks     = 5
)

// Closing returns the shutdown animation: a white square, solid red, green and blue
// flashes, the END mark in red, five white blinks, and a final clear.
func Closing() []Step {
	steps := []Step{
		{Frame: glyph.Square.Render(pixel.White), Hold: ClosingSquareHold},
		Solid(pixel.Red, ClosingColorHold),
		Solid(pixel.Green, ClosingColorHold),
		Solid(pixel.Blue, ClosingColorHold),
		Clear(0),
		{Frame: glyph.End.Render(pixel.Red), Hold: ClosingEndHold},
	}
	for i := 0; i < ClosingBlinks; i++ {
		steps = append(steps, Solid(pixel.White, ClosingBlinkHold), Clear(ClosingBlinkHold))
	}
	return append(steps, Clear(0))
}
