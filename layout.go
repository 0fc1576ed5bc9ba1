package ledmatrix

import (
	"fmt"
	"strings"
)

// Layout maps chain positions to logical pixels: Layout[k] is the row-major index
// (y*W + x) of the pixel that receives the k-th word sent down the string.
type Layout []int

// RowMajor returns the identity layout: the chain runs left to right, top to bottom.
func RowMajor(w, h int) Layout {
	l := make(Layout, w*h)
	for i := range l {
		l[i] = i
	}
	return l
}

// Reversed returns a layout where the chain runs right to left, bottom to top.
func Reversed(w, h int) Layout {
	n := w * h
	l := make(Layout, n)
	for k := range l {
		l[k] = n - 1 - k
	}
	return l
}

// Serpentine returns the layout of a zig-zag wired panel: the chain runs from the last
// logical pixel backwards, with every odd row mirrored. On a 5x5 board the chain starts
// at the bottom-right corner, runs right to left along the bottom row, left to right
// along the row above it, and so on.
func Serpentine(w, h int) Layout {
	n := w * h
	l := make(Layout, n)
	for k := range l {
		d := n - 1 - k
		row, col := d/w, d%w
		if row%2 == 1 {
			col = w - 1 - col
		}
		l[k] = row*w + col
	}
	return l
}

// ParseLayout returns the named layout for a w x h panel.
// Known names are "serpentine", "rowmajor" and "reversed".
func ParseLayout(name string, w, h int) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "serpentine":
		return Serpentine(w, h), nil
	case "rowmajor", "row-major", "raster":
		return RowMajor(w, h), nil
	case "reversed", "reverse":
		return Reversed(w, h), nil
	default:
		return nil, fmt.Errorf("ledmatrix: unknown layout %q", name)
	}
}

// Validate checks that l is a permutation of 0..n-1.
func (l Layout) Validate(n int) error {
	if len(l) != n {
		return fmt.Errorf("ledmatrix: layout has %d entries, want %d", len(l), n)
	}
	seen := make([]bool, n)
	for k, idx := range l {
		if idx < 0 || idx >= n {
			return fmt.Errorf("ledmatrix: layout[%d] = %d out of range", k, idx)
		}
		if seen[idx] {
			return fmt.Errorf("ledmatrix: layout maps pixel %d twice", idx)
		}
		seen[idx] = true
	}
	return nil
}
