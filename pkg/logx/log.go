package logx

import (
	"io"
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
	"github.com/pkg/errors"
	"github.com/shrewx/suitex/pkg/conf"
	"github.com/sirupsen/logrus"
)

var (
	logManager = initLogManager()
)

const (
	Timestamp = "2006-01-02 15:04:05"
)

// Load builds the logger described by c and registers it under c.Label.
// Loading the same label again replaces the previous logger.
func Load(c *conf.Log) error {
	if c.Label == "" {
		c.Label = defaultLogLabel
	}
	logger, err := load(c)
	if err != nil {
		return err
	}
	logManager.Set(LogLabel(c.Label), logger)
	return nil
}

func load(c *conf.Log) (*logrus.Logger, error) {
	logger := logrus.New()

	if c.IsJson {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: Timestamp,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableQuote:     c.DisableQuote,
			FullTimestamp:    true,
			QuoteEmptyFields: false,
			TimestampFormat:  Timestamp,
		})
	}

	var out io.Writer = os.Stderr
	if c.ToFile {
		if c.LogDirPath != "" {
			if err := os.MkdirAll(c.LogDirPath, 0755); err != nil {
				return nil, errors.Wrapf(err, "create log dir %s", c.LogDirPath)
			}
		}
		out = &lumberjack.Logger{
			Filename:   filepath.Join(c.LogDirPath, c.LogFileName),
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			Compress:   c.Compress,
		}
	}
	logger.SetOutput(out)

	setLogLevel(logger, c.LogLevel)

	if c.EnableCaller {
		logger.AddHook(NewCallerHook(1))
	} else {
		logger.AddHook(NewCallerHook(0))
	}

	return logger, nil
}

func Instance() *logrus.Logger {
	logger := logManager.Load(defaultLogLabel)
	if logger == nil {
		logger, _ = load(defaultConfig())
		logManager.Set(defaultLogLabel, logger)
	}
	return logger
}

func Label(label LogLabel) *logrus.Logger {
	if logger := logManager.Load(label); logger != nil {
		return logger
	}
	return Instance()
}

func defaultConfig() *conf.Log {
	return &conf.Log{
		LogLevel: "warn",
	}
}
