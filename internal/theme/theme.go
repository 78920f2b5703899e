// internal/theme/theme.go
package theme

import (
	"image/color"
	"strings"

	"github.com/bethropolis/glyphpaint/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names used by the front end.
const (
	StyleDefault           = "Default"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBarModified"
	StyleStatusBarMessage  = "StatusBarMessage"
	StyleStatusBarError    = "StatusBarError"
	StyleCheckerLight      = "Checker.light"
	StyleCheckerDark       = "Checker.dark"
	StyleCursor            = "Cursor"
	StyleRectPreview       = "RectPreview"
	StyleBorder            = "Border"
	StylePaletteMarker     = "PaletteMarker"
)

type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle looks up name, then the part of name before the first dot, then
// Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Color converts a canvas color to a terminal color.
func Color(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Charcoal is the built-in theme.
var Charcoal Theme

func init() {
	bg := tcell.NewHexColor(0x2a2f38)
	fg := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	red := tcell.NewHexColor(0xe06c75)
	blue := tcell.NewHexColor(0x61afef)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)

	Charcoal = Theme{
		Name:   "Charcoal",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:           base,
			StyleStatusBar:         tcell.StyleDefault.Background(bg).Foreground(fg),
			StyleStatusBarModified: tcell.StyleDefault.Background(bg).Foreground(yellow),
			StyleStatusBarMessage:  tcell.StyleDefault.Background(bg).Foreground(fg).Bold(true),
			StyleStatusBarError:    tcell.StyleDefault.Background(bg).Foreground(red).Bold(true),
			StyleCheckerLight:      tcell.StyleDefault.Background(tcell.NewHexColor(0x3a3f48)).Foreground(muted),
			StyleCheckerDark:       tcell.StyleDefault.Background(tcell.NewHexColor(0x30353e)).Foreground(muted),
			StyleCursor:            base.Reverse(true),
			StyleRectPreview:       tcell.StyleDefault.Background(blue).Foreground(bg),
			StyleBorder:            base.Foreground(muted),
			StylePaletteMarker:     tcell.StyleDefault.Foreground(fg).Bold(true),
		},
	}
}
