// Package log provides the shared zap logger used by long-running
// commands.
package log

import (
	"fmt"

	"go.uber.org/zap"
)

var log *zap.SugaredLogger

// Init initializes the package-level logger.
func Init(debug bool) error {
	var zapLogger *zap.Logger
	var err error

	if debug {
		zapLogger, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	} else {
		zapLogger, err = zap.NewProduction(zap.AddCallerSkip(1))
	}
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	log = zapLogger.Sugar()
	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	if log != nil {
		log.Sync()
	}
}

func logger() *zap.SugaredLogger {
	if log == nil {
		base, _ := zap.NewProduction(zap.AddCallerSkip(1))
		log = base.Sugar()
	}
	return log
}

// Info logs at info level with sprintf-style formatting.
func Info(format string, args ...any) { logger().Infof(format, args...) }

// Warn logs at warn level with sprintf-style formatting.
func Warn(format string, args ...any) { logger().Warnf(format, args...) }

// Error logs at error level with sprintf-style formatting.
func Error(format string, args ...any) { logger().Errorf(format, args...) }
