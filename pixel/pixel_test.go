package pixel

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name    string
		b, r, g float64
		want    Word
	}{
		{"off", 0, 0, 0, 0x00000000},
		{"white", 1, 1, 1, 0xFFFFFF00},
		{"red", 0, 1, 0, 0x00FF0000},
		{"green", 0, 0, 1, 0xFF000000},
		{"blue", 1, 0, 0, 0x0000FF00},
		{"half green truncates", 0, 0, 0.5, 0x7F000000},
		{"fifth of each", 0.2, 0.2, 0.2, 0x33333300},
		{"mixed", 0.2, 0.5, 1, 0xFF7F3300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.b, tt.r, tt.g); got != tt.want {
				t.Errorf("Encode(%v, %v, %v) = 0x%08X, want 0x%08X", tt.b, tt.r, tt.g, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestEncodeClamps(t *testing.T) {
	tests := []struct {
		name    string
		b, r, g float64
		want    Word
	}{
		{"blue above range", 10, 0, 0, 0x0000FF00},
		{"red above range", 0, 10, 0, 0x00FF0000},
		{"green above range", 0, 0, 1.5, 0xFF000000},
		{"negative", -1, -0.5, -100, 0x00000000},
		{"NaN", math.NaN(), 1, 0, 0x00FF0000},
		{"+Inf", math.Inf(1), 0, 0, 0x0000FF00},
		{"-Inf", 0, math.Inf(-1), 0, 0x00000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.b, tt.r, tt.g)
			if got != tt.want {
				t.Errorf("Encode(%v, %v, %v) = 0x%08X, want 0x%08X", tt.b, tt.r, tt.g, uint32(got), uint32(tt.want))
			}
			if got&0xFF != 0 {
				t.Errorf("low byte = 0x%02X, want 0", uint32(got&0xFF))
			}
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	for _, v := range []float64{0, 0.1, 0.25, 0.333, 0.5, 0.75, 0.9, 1} {
		first := Encode(v, 1-v, v/2)
		for i := 0; i < 10; i++ {
			if got := Encode(v, 1-v, v/2); got != first {
				t.Fatalf("Encode(%v, ...) not deterministic: 0x%08X then 0x%08X", v, uint32(first), uint32(got))
			}
		}
	}
}

func TestWordChannels(t *testing.T) {
	w := Encode(0.2, 0.5, 1)
	if w.G() != 0xFF {
		t.Errorf("G() = 0x%02X, want 0xFF", w.G())
	}
	if w.R() != 0x7F {
		t.Errorf("R() = 0x%02X, want 0x7F", w.R())
	}
	if w.B() != 0x33 {
		t.Errorf("B() = 0x%02X, want 0x33", w.B())
	}
}

func TestWordString(t *testing.T) {
	got := Word(0xFF000000).String()
	want := "11111111" + strings.Repeat("0", 24)
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := Word(0).String(); len(got) != 32 {
		t.Errorf("len(String()) = %d, want 32", len(got))
	}
}

func TestEncodeColor(t *testing.T) {
	tests := []struct {
		name string
		c    colorful.Color
		want Word
	}{
		{"Off", Off, 0x00000000},
		{"White", White, 0xFFFFFF00},
		{"Red", Red, 0x00FF0000},
		{"Green", Green, 0xFF000000},
		{"Blue", Blue, 0x0000FF00},
		{"half green", Scale(Green, 0.5), 0x7F000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeColor(tt.c); got != tt.want {
				t.Errorf("EncodeColor(%v) = 0x%08X, want 0x%08X", tt.c, uint32(got), uint32(tt.want))
			}
		})
	}
}

func TestModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  colorful.Color
	}{
		{"colorful passthrough", colorful.Color{R: 0.3, G: 0.2, B: 0.1}, colorful.Color{R: 0.3, G: 0.2, B: 0.1}},
		{"black", color.Black, colorful.Color{}},
		{"white", color.White, White},
		{"opaque red", color.RGBA{0xFF, 0, 0, 0xFF}, Red},
		{"transparent", color.RGBA{}, Off},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Model.Convert(tt.input).(colorful.Color)
			if got != tt.want {
				t.Errorf("Model.Convert(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewFrame(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantStride int
		wantPixLen int
	}{
		{"5x5", image.Rect(0, 0, 5, 5), 5, 25},
		{"8x8", image.Rect(0, 0, 8, 8), 8, 64},
		{"1x1", image.Rect(0, 0, 1, 1), 1, 1},
		{"offset rect", image.Rect(10, 20, 13, 22), 3, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(tt.rect)
			if f.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", f.Rect, tt.rect)
			}
			if f.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", f.Stride, tt.wantStride)
			}
			if len(f.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(f.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestFrameSetGet(t *testing.T) {
	f := NewFrame(image.Rect(0, 0, 5, 5))
	f.SetColor(1, 2, Red)
	f.Set(4, 4, color.RGBA{0, 0, 0xFF, 0xFF})

	if got := f.ColorAt(1, 2); got != Red {
		t.Errorf("ColorAt(1, 2) = %v, want %v", got, Red)
	}
	if got := f.WordAt(4, 4); got != 0x0000FF00 {
		t.Errorf("WordAt(4, 4) = 0x%08X, want 0x0000FF00", uint32(got))
	}
	if got := f.PixOffset(1, 2); got != 11 {
		t.Errorf("PixOffset(1, 2) = %d, want 11", got)
	}
	c, ok := f.At(1, 2).(colorful.Color)
	if !ok {
		t.Fatalf("At(1, 2) returned %T, want colorful.Color", f.At(1, 2))
	}
	if c != Red {
		t.Errorf("At(1, 2) = %v, want %v", c, Red)
	}
}

func TestFrameOutOfBounds(t *testing.T) {
	f := NewFrame(image.Rect(0, 0, 5, 5))

	f.SetColor(-1, 0, White)
	f.SetColor(5, 0, White)
	f.Set(0, 5, color.White)

	for i, c := range f.Pix {
		if c != Off {
			t.Errorf("Pix[%d] = %v after out-of-bounds writes, want off", i, c)
		}
	}
	if got := f.ColorAt(-1, 0); got != Off {
		t.Errorf("ColorAt(-1, 0) = %v, want off", got)
	}
}

func TestFrameOffsetRect(t *testing.T) {
	f := NewFrame(image.Rect(100, 50, 105, 55))
	f.SetColor(100, 50, Green)
	if f.Pix[0] != Green {
		t.Errorf("Pix[0] = %v, want %v", f.Pix[0], Green)
	}
	if got := f.ColorAt(100, 50); got != Green {
		t.Errorf("ColorAt(100, 50) = %v, want %v", got, Green)
	}
}

func TestFrameDraw(t *testing.T) {
	f := NewFrame(image.Rect(0, 0, 5, 5))
	draw.Draw(f, f.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	for i, c := range f.Pix {
		if EncodeColor(c) != 0xFFFFFF00 {
			t.Errorf("Pix[%d] encodes to 0x%08X, want 0xFFFFFF00", i, uint32(EncodeColor(c)))
		}
	}

	f.Fill(Off)
	for i, c := range f.Pix {
		if c != Off {
			t.Errorf("Pix[%d] = %v after Fill(Off)", i, c)
		}
	}
}

func TestFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 40))
	draw.Draw(src, image.Rect(0, 0, 40, 40), image.NewUniform(color.RGBA{R: 0xFF, A: 0xFF}), image.Point{}, draw.Src)

	f := Fit(src, image.Rect(0, 0, 5, 5))
	if len(f.Pix) != 25 {
		t.Fatalf("len(Pix) = %d, want 25", len(f.Pix))
	}
	for i, c := range f.Pix {
		w := EncodeColor(c)
		if w.R() < 0xFE || w.G() != 0 || w.B() != 0 {
			t.Errorf("Pix[%d] encodes to 0x%08X, want red", i, uint32(w))
		}
	}
}

func TestFitEmpty(t *testing.T) {
	f := Fit(image.NewRGBA(image.Rectangle{}), image.Rect(0, 0, 5, 5))
	for i, c := range f.Pix {
		if c != Off {
			t.Errorf("Pix[%d] = %v, want off", i, c)
		}
	}
}
