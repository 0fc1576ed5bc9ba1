package ledmatrix

import (
	"fmt"
	"io"

	"github.com/flavioheleno/ledmatrix/pixel"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Sink accepts packed words, one per LED, in chain order.
// Send blocks until the word has been accepted.
type Sink interface {
	Send(w pixel.Word) error
}

// Flusher is implemented by sinks that buffer a frame and need to be told when it ends.
type Flusher interface {
	Flush() error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(w pixel.Word) error

// Send calls f(w).
func (f SinkFunc) Send(w pixel.Word) error { return f(w) }

const (
	// spiFreq gives 3 SPI bits per WS2812 bit at 800kHz.
	spiFreq = 2400 * physic.KiloHertz

	// WS2812 bit patterns, 3 SPI bits each.
	nrzOne  = 0b110
	nrzZero = 0b100

	// resetBytes of low level latch the frame: 280µs at 2.4MHz, enough for WS2812B.
	resetBytes = 84
)

// spiSink drives a WS2812 string from the MOSI line of an SPI port.
type spiSink struct {
	c   conn.Conn
	buf []byte
}

func newSPISink(p spi.Port) (*spiSink, error) {
	c, err := p.Connect(spiFreq, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ledmatrix: failed to connect SPI: %w", err)
	}
	return &spiSink{c: c}, nil
}

// Send queues the 24 color bits of w for the next Flush.
func (s *spiSink) Send(w pixel.Word) error {
	s.buf = appendNRZ(s.buf, w)
	return nil
}

// Flush transmits the queued words followed by the latch period.
func (s *spiSink) Flush() error {
	if len(s.buf) == 0 {
		return nil
	}
	s.buf = append(s.buf, make([]byte, resetBytes)...)
	err := s.c.Tx(s.buf, nil)
	s.buf = s.buf[:0]
	return err
}

// appendNRZ appends the SPI encoding of the green, red and blue bytes of w, MSB first.
// Each color byte expands to 3 SPI bytes.
func appendNRZ(dst []byte, w pixel.Word) []byte {
	for _, b := range [3]uint8{w.G(), w.R(), w.B()} {
		var v uint32
		for i := 7; i >= 0; i-- {
			v <<= 3
			if b>>uint(i)&1 == 1 {
				v |= nrzOne
			} else {
				v |= nrzZero
			}
		}
		dst = append(dst, byte(v>>16), byte(v>>8), byte(v))
	}
	return dst
}

// writerSink prints words as text, one per line, for running without hardware.
type writerSink struct {
	w io.Writer
}

// NewWriterSink returns a Sink that writes each word to w as 8 hex digits on its own
// line, and a "--" line at the end of each frame.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{w: w}
}

func (s *writerSink) Send(w pixel.Word) error {
	_, err := fmt.Fprintf(s.w, "%08x\n", uint32(w))
	return err
}

func (s *writerSink) Flush() error {
	_, err := io.WriteString(s.w, "--\n")
	return err
}
