// Package httpserver runs an http.Handler with graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    return err // errors.Is(err, httpserver.ErrStart)
//	}
//
// Run blocks until ctx is cancelled, SIGINT/SIGTERM arrives or Shutdown is called, then
// waits up to the shutdown timeout for in-flight requests. Ready and Addr expose the bound
// listener, which is handy with ":0" in tests.
//
// HealthCheckHandler serves liveness ("ALIVE") and readiness ("READY"/"NOT_READY") probes.
package httpserver
