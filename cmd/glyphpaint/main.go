// cmd/glyphpaint/main.go
package main

import (
	"fmt"
	"io"
	stlog "log" // the package logger is not ready for early failures
	"os"
	"path/filepath"

	"github.com/bethropolis/glyphpaint/internal/app"
	"github.com/bethropolis/glyphpaint/internal/config"
	"github.com/bethropolis/glyphpaint/internal/logger"
)

var version = "dev"

func main() {
	var flags config.Flags
	args := flags.ParseFlags()

	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	cfg, cfgErr := config.Load(*flags.ConfigFilePath, &flags)

	logOut, closeLog, err := openLog(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()
	logger.Init(cfg.Logger, logOut)

	if cfgErr != nil {
		logger.Warnf("Config: %v, using defaults", cfgErr)
	}
	logger.Infof("Starting %s %s", config.AppName, version)

	filePath := ""
	if len(args) > 0 {
		filePath = args[0]
	}

	paint, err := app.NewApp(app.Options{Config: cfg, FilePath: filePath})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		os.Exit(1)
	}

	if err := paint.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
	logger.Infof("%s finished", config.AppName)
}

// openLog opens the log destination: stderr for "-", otherwise a file that
// defaults to the user cache dir.
func openLog(path string) (io.Writer, func(), error) {
	if path == "-" {
		return os.Stderr, func() {}, nil
	}
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}
		dir = filepath.Join(dir, config.AppName)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
		path = filepath.Join(dir, config.DefaultLogFileName)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		return nil, nil, fmt.Errorf("'%s': %w", path, err)
	}
	return f, func() { f.Close() }, nil
}
