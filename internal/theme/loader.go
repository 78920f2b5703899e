// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/glyphpaint/internal/logger"
	"github.com/bethropolis/glyphpaint/internal/palette"
	"github.com/gdamore/tcell/v2"
)

// TomlStyleDef is one style in a theme file. Pointers detect missing keys.
type TomlStyleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// TomlTheme is the layout of a theme file.
type TomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]TomlStyleDef `toml:"styles"`
}

// Load returns the built-in theme when filePath is empty, otherwise the
// theme in filePath layered over the built-in styles.
func Load(filePath string) (*Theme, error) {
	if filePath == "" {
		return &Charcoal, nil
	}
	return LoadThemeFromFile(filePath)
}

// LoadThemeFromFile parses a TOML theme. Styles it does not define are taken
// from the built-in theme.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}

	var tomlTheme TomlTheme
	metadata, err := toml.Decode(string(data), &tomlTheme)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML theme file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Theme '%s': Unrecognized keys in file '%s': %v", tomlTheme.Name, filePath, metadata.Undecoded())
	}
	if tomlTheme.Name == "" {
		tomlTheme.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	theme := &Theme{
		Name:   tomlTheme.Name,
		IsDark: tomlTheme.IsDark,
		Styles: make(map[string]tcell.Style, len(Charcoal.Styles)),
	}
	for name, style := range Charcoal.Styles {
		theme.Styles[name] = style
	}

	baseStyle := theme.Styles[StyleDefault]
	if def, ok := tomlTheme.Styles[StyleDefault]; ok {
		style, err := convertTomlStyle(def, tcell.StyleDefault)
		if err != nil {
			logger.Warnf("Theme '%s': Failed to parse 'Default' style: %v", theme.Name, err)
		} else {
			baseStyle = style
			theme.Styles[StyleDefault] = style
		}
	}

	for name, def := range tomlTheme.Styles {
		if name == StyleDefault {
			continue
		}
		style, err := convertTomlStyle(def, baseStyle)
		if err != nil {
			logger.Warnf("Theme '%s': Failed to parse style '%s', skipping: %v", theme.Name, name, err)
			continue
		}
		theme.Styles[name] = style
	}

	logger.Debugf("Loaded theme '%s' from '%s'", theme.Name, filePath)
	return theme, nil
}

func convertTomlStyle(def TomlStyleDef, style tcell.Style) (tcell.Style, error) {
	if def.Fg != nil {
		c, err := parseColorString(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground color '%s': %w", *def.Fg, err)
		}
		style = style.Foreground(c)
	}
	if def.Bg != nil {
		c, err := parseColorString(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background color '%s': %w", *def.Bg, err)
		}
		style = style.Background(c)
	}
	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// parseColorString accepts the palette's names and hex forms plus the
// terminal keywords "reset" and "default".
func parseColorString(s string) (tcell.Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reset":
		return tcell.ColorReset, nil
	case "default":
		return tcell.ColorDefault, nil
	}
	c, err := palette.Parse(s)
	if err != nil {
		return tcell.ColorDefault, err
	}
	return Color(c), nil
}
