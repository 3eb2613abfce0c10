package core

import (
	"fmt"
	"strconv"
	"strings"
)

// RGBA is a straight (non-premultiplied) 8-bit color.
type RGBA struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) RGBA {
	return RGBA{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns the color with its alpha multiplied by a in [0, 1].
func (c RGBA) WithAlpha(a float64) RGBA {
	a = ClampF(a, 0, 1)
	c.A = uint8(float64(c.A)*a + 0.5)
	return c
}

// RGBA implements color.Color so core colors can be handed straight to
// image and rendering libraries.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A)
	a |= a << 8
	r = uint32(c.R) * uint32(c.A) / 255
	r |= r << 8
	g = uint32(c.G) * uint32(c.A) / 255
	g |= g << 8
	b = uint32(c.B) * uint32(c.A) / 255
	b |= b << 8
	return r, g, b, a
}

// Over blends c on top of dst using c's alpha. The result is opaque if dst is.
func (c RGBA) Over(dst RGBA) RGBA {
	if c.A == 255 {
		return c
	}
	if c.A == 0 {
		return dst
	}
	a := float64(c.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a) + 0.5)
	}
	return RGBA{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: uint8(Min(255, int(c.A)+int(float64(dst.A)*(1-a)+0.5))),
	}
}

// Hex formats the color as "#rrggbb" (alpha is dropped).
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rrggbb" or "rrggbb" into an opaque color.
func ParseHex(s string) (RGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGBA{}, false
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
}
