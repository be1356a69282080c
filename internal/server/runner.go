// Package server runs the marqueed HTTP server and its startup jobs.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultShutdownTimeout bounds graceful shutdown when Config leaves it
// unset.
const DefaultShutdownTimeout = 30 * time.Second

// Config for the server runner.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Job runs alongside the server, e.g. warming a cache. A job's error is
// logged and does not stop the server.
type Job func(ctx context.Context) error

// Runner manages the HTTP server lifecycle.
type Runner struct {
	handler http.Handler
	config  Config
	jobs    map[string]Job
	logger  *slog.Logger
}

// NewRunner creates a new runner.
func NewRunner(handler http.Handler, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}
	return &Runner{
		handler: handler,
		config:  cfg,
		jobs:    make(map[string]Job),
		logger:  logger,
	}
}

// AddJob registers a startup job under name.
func (r *Runner) AddJob(name string, job Job) {
	r.jobs[name] = job
}

// Run listens on the configured address and serves until ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", r.config.Addr, err)
	}
	return r.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled, then shuts down gracefully.
// It returns nil after a clean shutdown.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		r.logger.Info("server stopped")
		return nil
	})

	for name, job := range r.jobs {
		g.Go(func() error {
			start := time.Now()
			if err := job(gctx); err != nil {
				r.logger.Warn("startup job failed", "job", name, "error", err)
				return nil
			}
			r.logger.Debug("startup job done", "job", name, "duration_ms", time.Since(start).Milliseconds())
			return nil
		})
	}

	return g.Wait()
}
