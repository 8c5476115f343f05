package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	coreconfig "github.com/AzielCF/az-access/core/config"
	"github.com/sirupsen/logrus"
)

var logFile *os.File

// setupLogging configures the package-level logrus logger. Debug mode forces debug level.
func setupLogging(cfg coreconfig.LogConfig, debug bool) error {
	level, err := logrus.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	if debug {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)

	if cfg.Format == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	var out io.Writer = os.Stdout
	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("create log directory %s: %w", dir, err)
			}
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file %s: %w", cfg.File, err)
		}
		closeLogFile()
		logFile = f
		out = io.MultiWriter(os.Stdout, f)
	}
	logrus.SetOutput(out)

	return nil
}

func closeLogFile() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
