// Package command maps keypad keys to displays and animations on the LED matrix.
//
// Every key press is handled on its own: there is no mode carried from one key to the
// next. A command runs to completion before the keypad is polled again, so keys pressed
// while an animation plays are never seen.
package command

import (
	"fmt"
	"time"

	"github.com/flavioheleno/ledmatrix"
	"github.com/flavioheleno/ledmatrix/anim"
	"github.com/flavioheleno/ledmatrix/glyph"
	"github.com/flavioheleno/ledmatrix/pixel"
	"github.com/lucasb-eyer/go-colorful"
)

// Kind is what an Action does.
type Kind int

const (
	NoOp Kind = iota
	Clear
	Fill
	Still
	Marquee
	Closing
)

func (k Kind) String() string {
	switch k {
	case NoOp:
		return "no-op"
	case Clear:
		return "clear"
	case Fill:
		return "fill"
	case Still:
		return "still"
	case Marquee:
		return "marquee"
	case Closing:
		return "closing"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Action is the command bound to a key.
type Action struct {
	Kind  Kind
	Name  string         // for logs
	Color colorful.Color // Fill, Still, Marquee
	Glyph glyph.Glyph    // Still
	Seq   glyph.Sequence // Marquee
	Hold  time.Duration  // Still, and each glyph of a Marquee
}

// Keymap binds keypad symbols to actions. Keys not in the map do nothing.
type Keymap map[rune]Action

// MarqueeHold is how long each glyph of a marquee stays on.
const MarqueeHold = 1500 * time.Millisecond

// DefaultKeymap is the command set of the keypad.
var DefaultKeymap = Keymap{
	'0': {Kind: Clear, Name: "clear all pixels"},
	'4': {Kind: Marquee, Name: "letters K to O", Seq: glyph.KLMNO, Color: pixel.Blue, Hold: MarqueeHold},
	'5': {Kind: Marquee, Name: "letters P to T", Seq: glyph.PQRST, Color: pixel.Blue, Hold: MarqueeHold},
	'8': {Kind: Marquee, Name: "digits 5 to 9", Seq: glyph.FiveToNine, Color: pixel.Blue, Hold: MarqueeHold},
	'9': {Kind: Closing, Name: "closing animation"},
	'D': {Kind: Fill, Name: "green at 50%", Color: pixel.Scale(pixel.Green, 0.5)},
}

// Device is the display a Dispatcher drives.
type Device interface {
	anim.Transmitter
	Fill(c colorful.Color) error
	Clear() error
}

// Dispatcher runs the action bound to each key.
type Dispatcher struct {
	dev  Device
	seq  *anim.Sequencer
	keys Keymap
}

// NewDispatcher returns a Dispatcher for dev. keys nil selects DefaultKeymap; sleep nil
// selects time.Sleep.
func NewDispatcher(dev Device, keys Keymap, sleep func(time.Duration)) *Dispatcher {
	if keys == nil {
		keys = DefaultKeymap
	}
	return &Dispatcher{dev: dev, seq: anim.New(dev, sleep), keys: keys}
}

// Dispatch runs the action bound to key and blocks until it has finished.
func (d *Dispatcher) Dispatch(key rune) error {
	logger := ledmatrix.Logger()
	a, ok := d.keys[key]
	if !ok || a.Kind == NoOp {
		logger.Warn("no command registered", "key", string(key))
		return nil
	}

	logger.Info("command", "key", string(key), "kind", a.Kind, "name", a.Name)
	var err error
	switch a.Kind {
	case Clear:
		err = d.dev.Clear()
	case Fill:
		err = d.dev.Fill(a.Color)
	case Still:
		err = d.seq.Play(anim.Still(a.Glyph, a.Color, a.Hold))
	case Marquee:
		err = d.seq.Play(anim.Marquee(a.Seq, a.Color, a.Hold))
	case Closing:
		err = d.seq.Play(anim.Closing())
	default:
		err = fmt.Errorf("command: unknown action %v for key %q", a.Kind, key)
	}
	if err != nil {
		return fmt.Errorf("command: key %q: %w", key, err)
	}
	logger.Info("command done", "key", string(key), "name", a.Name)
	return nil
}
