// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bethropolis/glyphpaint/internal/logger"
)

// Flags holds values parsed from command-line flags.
// Pointers distinguish unset flags from zero values.
type Flags struct {
	ConfigFilePath *string
	Version        *bool
	LogLevel       *string
	LogFilePath    *string
	Width          *int
	Height         *int
	Anchor         *string
	EnableTags     *string
	DisableTags    *string
	EnablePkgs     *string
	DisablePkgs    *string
	EnableFiles    *string
	DisableFiles   *string

	fs *flag.FlagSet
}

// DefineFlags registers the flags on fs, or on the process-wide set when fs is nil.
func (f *Flags) DefineFlags(fs *flag.FlagSet) {
	if fs == nil {
		fs = flag.CommandLine
	}
	f.fs = fs
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.Width = fs.Int("width", 0, "Width of a new canvas in cells - Overrides config file")
	f.Height = fs.Int("height", 0, "Height of a new canvas in cells - Overrides config file")
	f.Anchor = fs.String("anchor", "", "Resize anchor (top-left, top, ..., center, ..., bottom-right) - Overrides config file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
}

// ParseFlags defines and parses the process flags, returning the remaining
// arguments (the canvas file).
func (f *Flags) ParseFlags() []string {
	f.DefineFlags(nil)
	flag.Parse()
	return flag.Args()
}

// ApplyOverrides updates cfg with the flags that were actually set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.fs == nil {
		return
	}
	f.fs.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "width":
			if *f.Width > 0 {
				cfg.Canvas.Width = *f.Width
			}
		case "height":
			if *f.Height > 0 {
				cfg.Canvas.Height = *f.Height
			}
		case "anchor":
			if *f.Anchor != "" {
				cfg.Canvas.ResizeAnchor = *f.Anchor
			}
		case "log-tags":
			if tags := splitCommaList(*f.EnableTags); tags != nil {
				cfg.Logger.EnabledTags = tags
			}
		case "log-disable-tags":
			if tags := splitCommaList(*f.DisableTags); tags != nil {
				cfg.Logger.DisabledTags = tags
			}
		case "log-packages":
			if pkgs := splitCommaList(*f.EnablePkgs); pkgs != nil {
				cfg.Logger.EnabledPackages = pkgs
			}
		case "log-disable-packages":
			if pkgs := splitCommaList(*f.DisablePkgs); pkgs != nil {
				cfg.Logger.DisabledPackages = pkgs
			}
		case "log-files":
			if files := splitCommaList(*f.EnableFiles); files != nil {
				cfg.Logger.EnabledFiles = files
			}
		case "log-disable-files":
			if files := splitCommaList(*f.DisableFiles); files != nil {
				cfg.Logger.DisabledFiles = files
			}
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}
