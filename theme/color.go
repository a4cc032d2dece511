package theme

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHexColor is returned for anything that is not exactly "#RRGGBB".
var ErrInvalidHexColor = errors.New("not a valid hex color")

// Color is an sRGB color with straight alpha. Channels are nominally in
// [0,1]; nothing clamps them.
type Color struct {
	R, G, B, A float64
}

// HexToColor parses "#RRGGBB". Alpha is always 1.
func HexToColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}
	return Color{R: byteUnit(c.R), G: byteUnit(c.G), B: byteUnit(c.B), A: 1}, nil
}

// byteUnit snaps v to the exact byte/255 value it was parsed from.
func byteUnit(v float64) float64 {
	return math.Round(v*255) / 255
}

// ColorToHex formats c as lowercase "#rrggbb", rounding each channel to the
// nearest byte. Alpha is dropped.
func ColorToHex(c Color) string {
	return c.rgb().Clamped().Hex()
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return ColorToHex(c)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(ColorToHex(c)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := HexToColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) rgb() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// ToHsl converts c to Okhsl. A saturation that comes out NaN (achromatic
// input) is replaced by MaxSaturation. Alpha is not carried.
func ToHsl(c Color) Hsl {
	hsl := srgbToOkhsl(c.rgb())
	if math.IsNaN(hsl.Saturation) {
		hsl.Saturation = MaxSaturation
	}
	return hsl
}

// FromHsl converts an Okhsl value back to an opaque Color.
func FromHsl(h Hsl) Color {
	rgb := okhslToSrgb(h)
	return Color{R: rgb.R, G: rgb.G, B: rgb.B, A: 1}
}

// Mix interpolates a and b in Okhsl; factor 0 yields a and 1 yields b.
func Mix(a, b Color, factor float64) Color {
	return FromHsl(ToHsl(a).Mix(ToHsl(b), factor))
}

// Lighten adds a fixed amount to the Okhsl lightness of c.
func Lighten(c Color, amount float64) Color {
	hsl := ToHsl(c)
	hsl.Lightness = clamp01(hsl.Lightness + amount*MaxLightness)
	return FromHsl(hsl)
}

// Darken subtracts a fixed amount from the Okhsl lightness of c.
func Darken(c Color, amount float64) Color {
	hsl := ToHsl(c)
	hsl.Lightness = clamp01(hsl.Lightness - amount*MaxLightness)
	return FromHsl(hsl)
}

// Alpha returns c with its alpha channel replaced.
func Alpha(c Color, a float64) Color {
	c.A = a
	return c
}

// IsDark reports whether the Okhsl lightness of c is below one half.
func IsDark(c Color) bool {
	return ToHsl(c).IsDark()
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
