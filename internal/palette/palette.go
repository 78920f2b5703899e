// Package palette parses pen colors and holds the palette offered by the front end.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/bethropolis/glyphpaint/internal/logger"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownColor indicates a color that is neither a known name nor a hex value.
var ErrUnknownColor = errors.New("unknown color")

// Palette is an ordered list of opaque colors.
type Palette []color.RGBA

// defaultNames lists the 16 classic text-mode colors in palette order.
var defaultNames = []struct {
	name string
	hex  string
}{
	{"black", "#000000"},
	{"navy", "#0000aa"},
	{"green", "#00aa00"},
	{"teal", "#00aaaa"},
	{"maroon", "#aa0000"},
	{"purple", "#aa00aa"},
	{"brown", "#aa5500"},
	{"silver", "#aaaaaa"},
	{"gray", "#555555"},
	{"blue", "#5555ff"},
	{"lime", "#55ff55"},
	{"aqua", "#55ffff"},
	{"red", "#ff5555"},
	{"fuchsia", "#ff55ff"},
	{"yellow", "#ffff55"},
	{"white", "#ffffff"},
}

// Default returns the 16-color text-mode palette.
func Default() Palette {
	p := make(Palette, 0, len(defaultNames))
	for _, n := range defaultNames {
		c, _ := Parse(n.hex)
		p = append(p, c)
	}
	return p
}

// Parse accepts "#rrggbb", "#rgb" (the leading '#' is optional) or the name
// of a default palette color.
func Parse(s string) (color.RGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for _, n := range defaultNames {
		if n.name == v {
			v = n.hex
			break
		}
	}
	if v == "grey" {
		v = "#555555"
	}
	if !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	if len(v) != 4 && len(v) != 7 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Format renders c as "#rrggbb", ignoring alpha.
func Format(c color.RGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}

// FromConfig builds a palette from color strings. Invalid entries are logged
// and skipped; an empty result falls back to Default.
func FromConfig(values []string) Palette {
	p := make(Palette, 0, len(values))
	for _, v := range values {
		c, err := Parse(v)
		if err != nil {
			logger.Warnf("Palette: skipping entry: %v", err)
			continue
		}
		p = append(p, c)
	}
	if len(p) == 0 {
		return Default()
	}
	return p
}

// Index returns the position of c in the palette, or -1.
func (p Palette) Index(c color.RGBA) int {
	for i, pc := range p {
		if pc == c {
			return i
		}
	}
	return -1
}

// Next returns the palette color after c, wrapping around. Colors not in the
// palette step to the first entry.
func (p Palette) Next(c color.RGBA, step int) color.RGBA {
	if len(p) == 0 {
		return c
	}
	i := p.Index(c)
	if i < 0 {
		return p[0]
	}
	n := len(p)
	return p[((i+step)%n+n)%n]
}
