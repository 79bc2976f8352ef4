package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/NeuralTrust/InstallGate/pkg/config"
	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

func NewLogger(cfg config.LogConfig) *logrus.Logger {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(parseLevel(cfg.Level))

	if cfg.File == "" {
		logger.SetOutput(os.Stdout)
		return logger
	}

	logger.SetOutput(&lumberjack.Logger{
		Filename:   filepath.Clean(cfg.File),
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		LocalTime:  true,
	})
	logger.AddHook(NewConsoleHook(os.Stdout))

	return logger
}

// NewNopLogger discards every entry. Used by tests and one-shot CLI commands.
func NewNopLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func parseLevel(level string) logrus.Level {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
