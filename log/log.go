// Package log provides structured logging persisted to a daily file.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/twshades/twshades/filesystem"
	"github.com/twshades/twshades/key"
	"github.com/twshades/twshades/where"
)

// enabled reports whether logs.write was set when Setup ran.
var enabled bool

// Fields is an alias so callers don't import logrus directly.
type Fields = logrus.Fields

// Setup opens today's log file and configures the formatter and level.
// If logging is disabled, every call in this package is a no-op.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return nil
}

// With returns an entry carrying fields, or a discarding entry when logging is disabled.
func With(fields Fields) *logrus.Entry {
	if !enabled {
		return discard.WithFields(fields)
	}
	return logrus.WithFields(fields)
}

var discard = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}()

func Error(args ...interface{}) {
	if enabled {
		logrus.Error(args...)
	}
}
func Warnf(format string, args ...interface{}) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}
func Info(args ...interface{}) {
	if enabled {
		logrus.Info(args...)
	}
}
func Infof(format string, args ...interface{}) {
	if enabled {
		logrus.Infof(format, args...)
	}
}
func Debugf(format string, args ...interface{}) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
