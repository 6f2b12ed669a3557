// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run binds the listener before serving, so Addr reports the real address
// even when the configured one uses port 0. Cancelling the context passed to
// Run drains in-flight requests for at most the shutdown timeout.
//
// Liveness and Readiness return handlers suitable for orchestrator probes.
package httpserver
