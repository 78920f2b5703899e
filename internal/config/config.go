// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/glyphpaint/internal/canvas"
	"github.com/bethropolis/glyphpaint/internal/core/history"
	"github.com/bethropolis/glyphpaint/internal/export"
	"github.com/bethropolis/glyphpaint/internal/glyph"
	"github.com/bethropolis/glyphpaint/internal/logger"
	"github.com/bethropolis/glyphpaint/internal/palette"
	"github.com/bethropolis/glyphpaint/internal/pen"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger   logger.Config  `toml:"logger"`
	Canvas   CanvasConfig   `toml:"canvas"`
	Pen      PenConfig      `toml:"pen"`
	Palette  PaletteConfig  `toml:"palette"`
	Autosave AutosaveConfig `toml:"autosave"`
	Export   ExportConfig   `toml:"export"`
	Watch    WatchConfig    `toml:"watch"`
	UI       UIConfig       `toml:"ui"`
}

// CanvasConfig sets the size of new canvases and how resizes anchor content.
type CanvasConfig struct {
	Width         int    `toml:"width"`
	Height        int    `toml:"height"`
	CheckpointGap int    `toml:"checkpoint_gap"`
	ResizeAnchor  string `toml:"resize_anchor"`
}

// PenConfig is the initial pen state.
type PenConfig struct {
	Glyph int    `toml:"glyph"`
	FG    string `toml:"fg"`
	BG    string `toml:"bg"`
	Tool  string `toml:"tool"`
}

type PaletteConfig struct {
	Colors []string `toml:"colors"`
}

type AutosaveConfig struct {
	Enabled  bool          `toml:"enabled"`
	Interval time.Duration `toml:"interval"`
}

type ExportConfig struct {
	Scale int `toml:"scale"`
}

// WatchConfig controls reloading the canvas file when another program
// changes it.
type WatchConfig struct {
	Enabled  bool          `toml:"enabled"`
	Debounce time.Duration `toml:"debounce"`
}

// UIConfig holds front-end settings. An empty ThemeFile selects the
// built-in theme.
type UIConfig struct {
	ThemeFile string `toml:"theme_file"`
}


// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Canvas: CanvasConfig{
			Width:         DefaultWidth,
			Height:        DefaultHeight,
			CheckpointGap: history.DefaultCheckpointGap,
			ResizeAnchor:  DefaultResizeAnchor,
		},
		Pen: PenConfig{
			Glyph: DefaultGlyph,
			FG:    DefaultFG,
			BG:    DefaultBG,
			Tool:  DefaultTool,
		},
		Autosave: AutosaveConfig{
			Enabled:  true,
			Interval: DefaultAutosaveInterval,
		},
		Export: ExportConfig{Scale: DefaultExportScale},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: DefaultWatchDebounce,
		},
	}
}

// loadFromFile decodes filePath over cfg. Keys absent from the file keep the
// values already in cfg. A missing file is not an error.
func loadFromFile(filePath string, cfg *Config) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		logger.Debugf("Config file not found: %s", filePath)
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	logger.Infof("Loaded configuration from: %s", filePath)
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}

	if c.Canvas.Width < 1 {
		c.Canvas.Width = defaults.Canvas.Width
	}
	if c.Canvas.Height < 1 {
		c.Canvas.Height = defaults.Canvas.Height
	}
	if c.Canvas.CheckpointGap < 1 {
		c.Canvas.CheckpointGap = defaults.Canvas.CheckpointGap
	}
	if _, err := canvas.ParseAnchor(c.Canvas.ResizeAnchor); err != nil {
		logger.Warnf("Config: %v, using %s", err, defaults.Canvas.ResizeAnchor)
		c.Canvas.ResizeAnchor = defaults.Canvas.ResizeAnchor
	}

	if c.Pen.Glyph < 0 || c.Pen.Glyph >= glyph.Count {
		c.Pen.Glyph = defaults.Pen.Glyph
	}
	if _, err := palette.Parse(c.Pen.FG); err != nil {
		logger.Warnf("Config: pen fg: %v", err)
		c.Pen.FG = defaults.Pen.FG
	}
	if _, err := palette.Parse(c.Pen.BG); err != nil {
		logger.Warnf("Config: pen bg: %v", err)
		c.Pen.BG = defaults.Pen.BG
	}
	if _, err := pen.ParseTool(c.Pen.Tool); err != nil {
		logger.Warnf("Config: %v", err)
		c.Pen.Tool = defaults.Pen.Tool
	}

	if c.Autosave.Interval <= 0 {
		c.Autosave.Interval = defaults.Autosave.Interval
	}
	c.Export.Scale = export.ClampScale(c.Export.Scale)
	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = defaults.Watch.Debounce
	}
}

// Anchor returns the parsed resize anchor.
func (c *Config) Anchor() canvas.Anchor {
	a, err := canvas.ParseAnchor(c.Canvas.ResizeAnchor)
	if err != nil {
		return canvas.AnchorCenter
	}
	return a
}

// NewPen builds the initial pen from the [pen] section.
func (c *Config) NewPen() *pen.Pen {
	fg, err := palette.Parse(c.Pen.FG)
	if err != nil {
		fg = palette.Default()[15]
	}
	bg, err := palette.Parse(c.Pen.BG)
	if err != nil {
		bg = palette.Default()[0]
	}
	tool, _ := pen.ParseTool(c.Pen.Tool)
	return &pen.Pen{Glyph: c.Pen.Glyph, FG: fg, BG: bg, Tool: tool}
}

// DefaultPath returns the config file used when no -config flag is given,
// or "" when the user config directory is unknown.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// Load builds a configuration from defaults, the file at configFilePath (or
// DefaultPath when empty) and flag overrides, in that order of precedence.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	effectivePath := configFilePath
	if effectivePath == "" {
		effectivePath = DefaultPath()
	}

	var err error
	if effectivePath != "" {
		if err = loadFromFile(effectivePath, cfg); err != nil {
			// Fall back to defaults; the caller reports the error.
			cfg = NewDefaultConfig()
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, err
}
