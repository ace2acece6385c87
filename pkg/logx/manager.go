package logx

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	defaultLogLabel = "default"
)

type LogManager struct {
	mu   sync.RWMutex
	logs map[LogLabel]*logrus.Logger
}

type LogLabel string

func initLogManager() *LogManager {
	return &LogManager{logs: make(map[LogLabel]*logrus.Logger)}
}

func (m *LogManager) Load(label LogLabel) *logrus.Logger {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.logs[normalize(label)]
}

func (m *LogManager) Set(label LogLabel, logger *logrus.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logs[normalize(label)] = logger
}

func normalize(label LogLabel) LogLabel {
	return LogLabel(strings.ToLower(string(label)))
}

func SetLogLevel(logLevel string, labels ...LogLabel) {
	if len(labels) == 0 {
		setLogLevel(Instance(), logLevel)
		return
	}
	for _, label := range labels {
		setLogLevel(Label(label), logLevel)
	}
}

func setLogLevel(logger *logrus.Logger, level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(logrus.DebugLevel)
	case "info":
		logger.SetLevel(logrus.InfoLevel)
	case "warn":
		logger.SetLevel(logrus.WarnLevel)
	case "error":
		logger.SetLevel(logrus.ErrorLevel)
	case "fatal":
		logger.SetLevel(logrus.FatalLevel)
	case "panic":
		logger.SetLevel(logrus.PanicLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}
}

func Debugf(format string, args ...interface{}) {
	Instance().Debugf(format, args...)
}

func WithFields(fields logrus.Fields, labels ...LogLabel) *logrus.Entry {
	if len(labels) == 0 {
		return Instance().WithFields(fields)
	}
	return Label(labels[0]).WithFields(fields)
}
