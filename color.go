package roundui

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"9fans.net/go/draw"
	"github.com/gogpu/gg"
)

// ErrColor is returned, wrapped, by ParseColor for malformed colors.
var ErrColor = errors.New("bad color")

// ParseColor parses an integer color value as RGB, the way java.awt.Color.decode does:
// an optional sign, then "0x", "0X" or "#" for hexadecimal, a leading "0" for octal, or decimal.
// The value must fit in a signed 32-bit integer; only its low 24 bits are used. Colors are opaque.
func ParseColor(s string) (gg.RGBA, error) {
	digits := s
	neg := false
	if digits != "" && (digits[0] == '-' || digits[0] == '+') {
		neg = digits[0] == '-'
		digits = digits[1:]
	}
	base := 10
	switch {
	case strings.HasPrefix(digits, "0x"), strings.HasPrefix(digits, "0X"):
		base = 16
		digits = digits[2:]
	case strings.HasPrefix(digits, "#"):
		base = 16
		digits = digits[1:]
	case strings.HasPrefix(digits, "0") && len(digits) > 1:
		base = 8
		digits = digits[1:]
	}
	if digits == "" || digits[0] == '-' || digits[0] == '+' {
		return gg.RGBA{}, fmt.Errorf("%w %q: no digits", ErrColor, s)
	}
	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w %q: %v", ErrColor, s, err)
	}
	if neg {
		v = -v
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return gg.RGBA{}, fmt.Errorf("%w %q: out of 32-bit range", ErrColor, s)
	}
	rgb := uint32(v) & 0xffffff
	return gg.RGB(float64(rgb>>16)/255, float64(rgb>>8&0xff)/255, float64(rgb&0xff)/255), nil
}

// DrawColor converts c to a devdraw color, 0xRRGGBBAA with premultiplied alpha.
func DrawColor(c gg.RGBA) draw.Color {
	p := rgba8(c)
	return draw.Color(uint32(p.R)<<24 | uint32(p.G)<<16 | uint32(p.B)<<8 | uint32(p.A))
}

// colorFromDraw is the inverse of DrawColor.
func colorFromDraw(c draw.Color) gg.RGBA {
	return gg.FromColor(color.RGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}).Unpremultiply()
}

// rgba8 converts c to 8-bit premultiplied color, rounding to nearest.
func rgba8(c gg.RGBA) color.RGBA {
	c = c.Premultiply()
	v := func(f float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, f)) * 255))
	}
	return color.RGBA{R: v(c.R), G: v(c.G), B: v(c.B), A: v(c.A)}
}
