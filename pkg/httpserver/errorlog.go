package httpserver

import (
	"log"
	"log/slog"
)

// slogErrorLog routes net/http internal errors (TLS handshakes, panics in handlers) to l.
func slogErrorLog(l *slog.Logger) *log.Logger {
	return slog.NewLogLogger(l.Handler(), slog.LevelError)
}
