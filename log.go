package plotpanel

import "log/slog"

var logger *slog.Logger

// SetLogger directs the diagnostics of this package to l.
// A nil l restores the default logger of package slog.
func SetLogger(l *slog.Logger) { logger = l }

func lg() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
