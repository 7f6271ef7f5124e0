// Package colorx normalizes user-supplied color specifications (names,
// hex strings, numeric tuples) into opaque RGBA values.
package colorx

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/af0b9b/qrlogo/internal/domain/common/errorz"
)

// names covers the color keywords accepted on the command line. QR modules
// need strong contrast, so the set leans on the basic CSS palette.
var names = map[string]color.RGBA{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 128, 0, 255},
	"lime":    {0, 255, 0, 255},
	"blue":    {0, 0, 255, 255},
	"navy":    {0, 0, 128, 255},
	"teal":    {0, 128, 128, 255},
	"aqua":    {0, 255, 255, 255},
	"cyan":    {0, 255, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"orange":  {255, 165, 0, 255},
	"purple":  {128, 0, 128, 255},
	"magenta": {255, 0, 255, 255},
	"fuchsia": {255, 0, 255, 255},
	"maroon":  {128, 0, 0, 255},
	"olive":   {128, 128, 0, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
	"silver":  {192, 192, 192, 255},
	"brown":   {165, 42, 42, 255},
	"pink":    {255, 192, 203, 255},
	"gold":    {255, 215, 0, 255},
	"indigo":  {75, 0, 130, 255},
	"violet":  {238, 130, 238, 255},
}

// Resolve normalizes a color spec into an opaque RGBA value. Accepted forms
// are CSS-style names ("black"), hex strings ("#1a2b3c", "#abc") and numeric
// tuples ("rgb(10,20,30)" or "10,20,30"). An alpha component in the input is
// dropped: QR modules are always rendered opaque.
func Resolve(spec string) (color.RGBA, error) {
	s := strings.TrimSpace(strings.ToLower(spec))
	if s == "" {
		return color.RGBA{}, fmt.Errorf("%w: empty spec", errorz.InvalidColor)
	}

	if c, ok := names[s]; ok {
		return c, nil
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q", errorz.InvalidColor, spec)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	}

	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		s = strings.TrimSuffix(strings.TrimPrefix(s, "rgb("), ")")
	} else if strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")") {
		s = strings.TrimSuffix(strings.TrimPrefix(s, "rgba("), ")")
	}

	if strings.Contains(s, ",") {
		return resolveTuple(spec, s)
	}

	return color.RGBA{}, fmt.Errorf("%w: %q", errorz.InvalidColor, spec)
}

func resolveTuple(spec, s string) (color.RGBA, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.RGBA{}, fmt.Errorf("%w: %q", errorz.InvalidColor, spec)
	}
	// A fourth component is alpha and is intentionally ignored.
	vals := make([]uint8, 3)
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return color.RGBA{}, fmt.Errorf("%w: %q", errorz.InvalidColor, spec)
		}
		vals[i] = uint8(n)
	}
	return color.RGBA{R: vals[0], G: vals[1], B: vals[2], A: 255}, nil
}
