// Package ledmatrixtest provides a recording sink and a fake clock for testing code
// built on ledmatrix without hardware.
package ledmatrixtest

import (
	"time"

	"github.com/flavioheleno/ledmatrix/pixel"
)

// Record implements ledmatrix.Sink and ledmatrix.Flusher.
// It keeps every word sent, and groups them into frames on each Flush.
type Record struct {
	Words  []pixel.Word   // every word, in order
	Frames [][]pixel.Word // one entry per flushed frame

	pending []pixel.Word

	// Err, when set, is returned by Send and nothing is recorded.
	Err error
}

// Send records w.
func (r *Record) Send(w pixel.Word) error {
	if r.Err != nil {
		return r.Err
	}
	r.Words = append(r.Words, w)
	r.pending = append(r.pending, w)
	return nil
}

// Flush closes the current frame.
func (r *Record) Flush() error {
	r.Frames = append(r.Frames, r.pending)
	r.pending = nil
	return nil
}

// Reset forgets everything recorded so far.
func (r *Record) Reset() {
	r.Words = nil
	r.Frames = nil
	r.pending = nil
}

// Clock records sleeps instead of blocking.
type Clock struct {
	Sleeps []time.Duration
}

// Sleep records d.
func (c *Clock) Sleep(d time.Duration) {
	c.Sleeps = append(c.Sleeps, d)
}

// Total returns the sum of all recorded sleeps.
func (c *Clock) Total() time.Duration {
	var t time.Duration
	for _, d := range c.Sleeps {
		t += d
	}
	return t
}
