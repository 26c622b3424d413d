package roundui

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestParseColor(t *testing.T) {
	rgb := func(v uint32) gg.RGBA {
		return gg.RGB(float64(v>>16)/255, float64(v>>8&0xff)/255, float64(v&0xff)/255)
	}
	tests := []struct {
		name string
		s    string
		want gg.RGBA
	}{
		{"hash", "#F5F5F5", rgb(0xf5f5f5)},
		{"hash lowercase", "#14ae5c", rgb(0x14ae5c)},
		{"hash short", "#FFF", rgb(0x000fff)},
		{"hash four digits", "#F5F5", rgb(0x00f5f5)},
		{"0x", "0x2C2C2C", rgb(0x2c2c2c)},
		{"0X", "0X00ff00", rgb(0x00ff00)},
		{"decimal", "16711680", rgb(0xff0000)},
		{"decimal zero", "0", rgb(0)},
		{"octal", "010", rgb(8)},
		{"octal zero", "00", rgb(0)},
		{"plus", "+#0000ff", rgb(0x0000ff)},
		{"negative", "-1", rgb(0xffffff)},
		{"negative hex", "-0x80000000", rgb(0)},
		{"above 24 bits", "16777216", rgb(0)},
		{"max int32", "#7FFFFFFF", rgb(0xffffff)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.s)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.s, err)
			}
			if !colorNear(got, tt.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.s, got, tt.want)
			}
		})
	}
}

func TestParseColor_Invalid(t *testing.T) {
	for _, s := range []string{"", "#", "-", "0x", "#F5F5F5AA", "#80000000", "08", "#GGGGGG", "red", "#-1", "0x+1", "- 1", "#F5F5F5 ", "2147483648", "1_000"} {
		t.Run(s, func(t *testing.T) {
			_, err := ParseColor(s)
			if err == nil {
				t.Fatalf("ParseColor(%q) succeeded, want error", s)
			}
			if !errors.Is(err, ErrColor) {
				t.Errorf("ParseColor(%q) error %v, want ErrColor", s, err)
			}
		})
	}
}

func TestDrawColor(t *testing.T) {
	tests := []struct {
		c    gg.RGBA
		want uint32
	}{
		{gg.Hex("#F5F5F5"), 0xf5f5f5ff},
		{gg.Hex("#14AE5C"), 0x14ae5cff},
		{gg.Hex("#C0C0C0"), 0xc0c0c0ff},
		{gg.RGBA{}, 0x00000000},
	}
	for _, tt := range tests {
		got := uint32(DrawColor(tt.c))
		if got != tt.want {
			t.Errorf("DrawColor(%+v) = %#08x, want %#08x", tt.c, got, tt.want)
		}
		back := colorFromDraw(DrawColor(tt.c))
		if !colorNear(back, tt.c) {
			t.Errorf("colorFromDraw(DrawColor(%+v)) = %+v", tt.c, back)
		}
	}
}

func colorNear(a, b gg.RGBA) bool {
	const eps = 1.0 / 255
	return math.Abs(a.R-b.R) <= eps && math.Abs(a.G-b.G) <= eps && math.Abs(a.B-b.B) <= eps && math.Abs(a.A-b.A) <= eps
}
