// Package keypad reads a 4x4 matrix keypad.
//
// Rows are driven low one at a time while the columns are read through pull-up inputs;
// a pressed key connects its row to its column and reads low.
package keypad

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"periph.io/x/conn/v3/gpio"
)

// NoKey is returned when no key is pressed.
const NoKey rune = 0

// Symbols is the legend of the keypad, indexed by row then column.
var Symbols = [4][4]rune{
	{'1', '2', '3', 'A'},
	{'4', '5', '6', 'B'},
	{'7', '8', '9', 'C'},
	{'*', '0', '#', 'D'},
}

// IsSymbol reports whether r is printed on the keypad.
func IsSymbol(r rune) bool {
	for _, row := range Symbols {
		for _, s := range row {
			if s == r {
				return true
			}
		}
	}
	return false
}

// Matrix scans a keypad wired to GPIO pins.
type Matrix struct {
	rows []gpio.PinOut
	cols []gpio.PinIn
}

// NewMatrix returns a scanner for a keypad with the given row and column pins.
// Columns are configured as pulled-up inputs and every row is driven high.
func NewMatrix(rows []gpio.PinOut, cols []gpio.PinIn) (*Matrix, error) {
	if len(rows) != len(Symbols) || len(cols) != len(Symbols[0]) {
		return nil, fmt.Errorf("keypad: need %d rows and %d columns, got %d and %d",
			len(Symbols), len(Symbols[0]), len(rows), len(cols))
	}
	for i, p := range rows {
		if p == nil {
			return nil, fmt.Errorf("keypad: row %d pin is nil", i)
		}
		if err := p.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("keypad: failed to drive %s: %w", p, err)
		}
	}
	for i, p := range cols {
		if p == nil {
			return nil, fmt.Errorf("keypad: column %d pin is nil", i)
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("keypad: failed to configure %s: %w", p, err)
		}
	}
	return &Matrix{rows: rows, cols: cols}, nil
}

// Scan returns the first pressed key found, or NoKey.
func (m *Matrix) Scan() (rune, error) {
	for r := range m.rows {
		if err := m.selectRow(r); err != nil {
			return NoKey, err
		}
		for c, p := range m.cols {
			if p.Read() == gpio.Low {
				return Symbols[r][c], nil
			}
		}
	}
	return NoKey, nil
}

// selectRow drives row r low and every other row high.
func (m *Matrix) selectRow(r int) error {
	for i, p := range m.rows {
		if err := p.Out(gpio.Level(i != r)); err != nil {
			return fmt.Errorf("keypad: failed to drive %s: %w", p, err)
		}
	}
	return nil
}

// Reader reads key presses from text, one per line.
// It stands in for the keypad when running without hardware.
type Reader struct {
	s *bufio.Scanner
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{s: bufio.NewScanner(r)}
}

// Scan returns the key on the next line. Blank lines and characters that are not on
// the keypad read as NoKey. At the end of input it returns io.EOF.
func (r *Reader) Scan() (rune, error) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return NoKey, err
		}
		return NoKey, io.EOF
	}
	line := strings.TrimSpace(r.s.Text())
	if line == "" {
		return NoKey, nil
	}
	k, _ := utf8.DecodeRuneInString(line)
	k = unicode.ToUpper(k)
	if !IsSymbol(k) {
		return NoKey, nil
	}
	return k, nil
}
