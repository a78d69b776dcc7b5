package httpserver

import "errors"

// Run and Shutdown failures are joined with the underlying cause; match them with errors.Is.
var (
	ErrStart          = errors.New("http server: start failed")
	ErrAlreadyRunning = errors.New("http server: already running")
	ErrShutdown       = errors.New("http server: graceful shutdown failed")
)
