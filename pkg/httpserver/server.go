package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/dmitrymomot/namegen/pkg/logger"
)

// Server wraps http.Server with graceful shutdown and logging.
type Server struct {
	opts options

	mu      sync.Mutex
	started bool
	addr    net.Addr
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.Discard()
	}
	return &Server{opts: o}
}

// Addr returns the bound listener address, or nil before Run binds it.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Run serves handler until ctx is cancelled or the server fails. A server
// runs at most once.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.started = true
	s.mu.Unlock()

	if handler == nil {
		handler = http.NotFoundHandler()
	}

	ln, err := net.Listen("tcp", s.opts.addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	return s.serve(ctx, ln, handler)
}

func (s *Server) serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	o := s.opts
	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       o.readTimeout,
		ReadHeaderTimeout: o.readHeaderTimeout,
		WriteTimeout:      o.writeTimeout,
		IdleTimeout:       o.idleTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	s.mu.Lock()
	s.addr = ln.Addr()
	s.mu.Unlock()

	addr := ln.Addr().String()
	o.logger.InfoContext(ctx, "http server listening", "addr", addr)
	for _, fn := range o.onStart {
		fn(addr)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(ErrStart, err)
		}
		return nil
	case <-ctx.Done():
	}

	o.logger.InfoContext(ctx, "http server shutting down", logger.Duration(o.shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.shutdownTimeout)
	defer cancel()

	shutdownErr := srv.Shutdown(shutdownCtx)
	<-errCh
	for _, fn := range o.onStop {
		fn()
	}
	if shutdownErr != nil {
		_ = srv.Close()
		return errors.Join(ErrShutdown, shutdownErr)
	}
	o.logger.InfoContext(ctx, "http server stopped")
	return nil
}
