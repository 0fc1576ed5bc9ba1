package ledmatrix

import (
	"reflect"
	"testing"
)

func TestLayouts(t *testing.T) {
	tests := []struct {
		name string
		got  Layout
		want Layout
	}{
		{"RowMajor 3x2", RowMajor(3, 2), Layout{0, 1, 2, 3, 4, 5}},
		{"Reversed 3x2", Reversed(3, 2), Layout{5, 4, 3, 2, 1, 0}},
		{"Serpentine 5x5", Serpentine(5, 5), Layout{
			24, 23, 22, 21, 20,
			15, 16, 17, 18, 19,
			14, 13, 12, 11, 10,
			5, 6, 7, 8, 9,
			4, 3, 2, 1, 0,
		}},
		{"Serpentine 2x2", Serpentine(2, 2), Layout{2, 3, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("layout = %v, want %v", tt.got, tt.want)
			}
			if err := tt.got.Validate(len(tt.want)); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		layout  Layout
		n       int
		wantErr bool
	}{
		{"permutation", Layout{2, 0, 1}, 3, false},
		{"too short", Layout{0, 1}, 3, true},
		{"too long", Layout{0, 1, 2, 3}, 3, true},
		{"duplicate", Layout{0, 0, 1}, 3, true},
		{"negative", Layout{-1, 0, 1}, 3, true},
		{"out of range", Layout{0, 1, 3}, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.layout.Validate(tt.n)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseLayout(t *testing.T) {
	tests := []struct {
		name    string
		want    Layout
		wantErr bool
	}{
		{"", Serpentine(5, 5), false},
		{"serpentine", Serpentine(5, 5), false},
		{"Serpentine", Serpentine(5, 5), false},
		{"rowmajor", RowMajor(5, 5), false},
		{"raster", RowMajor(5, 5), false},
		{"reversed", Reversed(5, 5), false},
		{"spiral", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLayout(tt.name, 5, 5)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLayout(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLayout(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}
