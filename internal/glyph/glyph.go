// Package glyph maps tile glyph indices to printable runes using code page 437,
// the layout of the 16x16 tile sheets glyphpaint canvases are drawn with.
package glyph

import (
	"strings"

	"github.com/bethropolis/glyphpaint/internal/canvas"
	"github.com/rivo/uniseg"
)

// Count is the number of glyphs in a tile sheet.
const Count = 256

// Fallback is drawn for indices without a single-width rune.
const Fallback = '?'

var cp437 = [Count]rune{
	' ', '☺', '☻', '♥', '♦', '♣', '♠', '•', '◘', '○', '◙', '♂', '♀', '♪', '♫', '☼',
	'►', '◄', '↕', '‼', '¶', '§', '▬', '↨', '↑', '↓', '→', '←', '∟', '↔', '▲', '▼',
	' ', '!', '"', '#', '$', '%', '&', '\'', '(', ')', '*', '+', ',', '-', '.', '/',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', ':', ';', '<', '=', '>', '?',
	'@', 'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M', 'N', 'O',
	'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z', '[', '\\', ']', '^', '_',
	'`', 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j', 'k', 'l', 'm', 'n', 'o',
	'p', 'q', 'r', 's', 't', 'u', 'v', 'w', 'x', 'y', 'z', '{', '|', '}', '~', '⌂',
	'Ç', 'ü', 'é', 'â', 'ä', 'à', 'å', 'ç', 'ê', 'ë', 'è', 'ï', 'î', 'ì', 'Ä', 'Å',
	'É', 'æ', 'Æ', 'ô', 'ö', 'ò', 'û', 'ù', 'ÿ', 'Ö', 'Ü', '¢', '£', '¥', '₧', 'ƒ',
	'á', 'í', 'ó', 'ú', 'ñ', 'Ñ', 'ª', 'º', '¿', '⌐', '¬', '½', '¼', '¡', '«', '»',
	'░', '▒', '▓', '│', '┤', '╡', '╢', '╖', '╕', '╣', '║', '╗', '╝', '╜', '╛', '┐',
	'└', '┴', '┬', '├', '─', '┼', '╞', '╟', '╚', '╔', '╩', '╦', '╠', '═', '╬', '╧',
	'╨', '╤', '╥', '╙', '╘', '╒', '╓', '╫', '╪', '┘', '┌', '█', '▄', '▌', '▐', '▀',
	'α', 'ß', 'Γ', 'π', 'Σ', 'σ', 'µ', 'τ', 'Φ', 'Θ', 'Ω', 'δ', '∞', 'φ', 'ε', '∩',
	'≡', '±', '≥', '≤', '⌠', '⌡', '÷', '≈', '°', '∙', '·', '√', 'ⁿ', '²', '■', ' ',
}

// runes is cp437 with every entry that does not occupy exactly one terminal
// column replaced by Fallback.
var runes = func() [Count]rune {
	var out [Count]rune
	for i, r := range cp437 {
		if uniseg.StringWidth(string(r)) != 1 {
			r = Fallback
		}
		out[i] = r
	}
	return out
}()

// Rune returns the printable rune for glyph index idx.
func Rune(idx int) rune {
	if idx < 0 || idx >= Count {
		return Fallback
	}
	return runes[idx]
}

// Index returns the glyph index of r, or -1 if no glyph shows r.
// The space rune maps to index 32.
func Index(r rune) int {
	if r == ' ' {
		return 32
	}
	for i, c := range cp437 {
		if c == r {
			return i
		}
	}
	return -1
}

// Text renders the grid as lines of runes. Empty cells become spaces.
func Text(g *canvas.Grid) string {
	var b strings.Builder
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width(); x++ {
			t, ok := g.Get(x, y).Tile()
			if !ok {
				b.WriteByte(' ')
				continue
			}
			b.WriteRune(Rune(t.Glyph))
		}
	}
	return b.String()
}
