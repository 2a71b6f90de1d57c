// Package logger builds the zap logger used across CapitolQuiz.
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/capitolquiz/internal/config"
)

// New returns a JSON logger when cfg.Env is "production" and a console
// logger otherwise. Output goes to cfg.Log.File, or to the default log path
// when unset, so the terminal UI is never written over. "-" logs to stderr.
func New(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	zc := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	out, err := outputPath(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{out}

	return zc.Build()
}

func outputPath(file string) (string, error) {
	switch file {
	case "-":
		return "stderr", nil
	case "":
		file = config.DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}
	return file, nil
}
