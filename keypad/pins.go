package keypad

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// ErrPinNotFound is returned by Open when a pin name does not resolve.
var ErrPinNotFound = errors.New("keypad: pin not found")

// Open looks up the row and column pins by name in the GPIO registry and returns a
// scanner for them. The host drivers must already be initialized.
func Open(rowNames, colNames []string) (*Matrix, error) {
	rows := make([]gpio.PinOut, 0, len(rowNames))
	for _, n := range rowNames {
		p := gpioreg.ByName(n)
		if p == nil {
			return nil, fmt.Errorf("%w: %s", ErrPinNotFound, n)
		}
		rows = append(rows, p)
	}
	cols := make([]gpio.PinIn, 0, len(colNames))
	for _, n := range colNames {
		p := gpioreg.ByName(n)
		if p == nil {
			return nil, fmt.Errorf("%w: %s", ErrPinNotFound, n)
		}
		cols = append(cols, p)
	}
	return NewMatrix(rows, cols)
}
