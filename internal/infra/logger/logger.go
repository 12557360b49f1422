package logger

import (
	"os"

	"messenger-relay/internal/config"

	"github.com/sirupsen/logrus"
)

type Logger struct {
	logger *logrus.Logger
}

// NewLogger initializes a new instance of Logger. The level comes from the
// LOG_LEVEL environment variable and falls back to info.
func NewLogger(jsonFormat bool) *Logger {
	logger := logrus.New()
	logger.Out = os.Stdout

	level, err := logrus.ParseLevel(config.GetEnv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if jsonFormat {
		logger.SetFormatter(&logrus.JSONFormatter{
			PrettyPrint: false,
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
			PadLevelText:  true,
		})
	}

	return &Logger{logger: logger}
}

// Debug logs a debug-level message.
func (l *Logger) Debug(msg string, fields ...logrus.Fields) {
	l.logWithFields(logrus.DebugLevel, msg, fields...)
}

// Info logs an info-level message.
func (l *Logger) Info(msg string, fields ...logrus.Fields) {
	l.logWithFields(logrus.InfoLevel, msg, fields...)
}

// Warn logs a warn-level message.
func (l *Logger) Warn(msg string, fields ...logrus.Fields) {
	l.logWithFields(logrus.WarnLevel, msg, fields...)
}

// Error logs an error-level message.
func (l *Logger) Error(msg string, fields ...logrus.Fields) {
	l.logWithFields(logrus.ErrorLevel, msg, fields...)
}

// Fatal logs a fatal-level message and exits the application.
func (l *Logger) Fatal(msg string, fields ...logrus.Fields) {
	l.logWithFields(logrus.FatalLevel, msg, fields...)
	os.Exit(1)
}

func (l *Logger) logWithFields(level logrus.Level, msg string, fields ...logrus.Fields) {
	entry := logrus.NewEntry(l.logger)

	for _, field := range fields {
		entry = entry.WithFields(field)
	}

	entry.Log(level, msg)
}
