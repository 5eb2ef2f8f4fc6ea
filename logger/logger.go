// Package logger holds the process-wide zap logger.
package logger

import (
	"go.uber.org/zap"
)

var log = zap.NewNop().Sugar()

// Init builds the global logger. Call once at startup, before anything logs.
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	log = l.Sugar()
	return nil
}

// L returns the global sugared logger.
func L() *zap.SugaredLogger {
	return log
}

// Sync flushes buffered entries. Safe to call on shutdown.
func Sync() {
	_ = log.Sync()
}
