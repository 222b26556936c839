package lendcell

import "go.uber.org/zap"

// Options configures a Cell.
type Options struct {
	// Observer receives lifecycle events. Nil disables notifications.
	Observer Observer

	// Logger overrides the package logger for this cell and its handles.
	Logger *zap.Logger

	// Name labels log lines and events. Defaults to the Go type name of T.
	Name string
}

// DefaultOptions returns default cell configuration.
func DefaultOptions() Options {
	return Options{}
}
