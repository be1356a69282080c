package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	v1 "github.com/vmunix/marquee/internal/api/v1"
	"github.com/vmunix/marquee/internal/browse"
	"github.com/vmunix/marquee/internal/config"
	"github.com/vmunix/marquee/internal/server"
	"github.com/vmunix/marquee/internal/session"
	"github.com/vmunix/marquee/internal/tmdb"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func runServer(configPath string) error {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, cleanup, err := buildHandler(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	logger.Info("server starting",
		"addr", addr,
		"session_db", cfg.Session.Path,
		"tmdb", cfg.TMDB.BaseURL,
		"home_rows", len(cfg.Home.Rows),
		"log_level", cfg.Server.LogLevel,
	)

	runner := server.NewRunner(a.handler, server.Config{Addr: addr}, logger.With("component", "server"))
	runner.AddJob("genres", func(ctx context.Context) error {
		genres := a.genres.Load(ctx, a.client)
		if len(genres) == 0 {
			return fmt.Errorf("genre list unavailable")
		}
		return nil
	})
	return runner.Run(ctx)
}

type app struct {
	handler http.Handler
	client  *tmdb.Client
	genres  *tmdb.GenreCache
}

// buildHandler wires stores, clients and the v1 API. cleanup closes the
// session database.
func buildHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, func(), error) {
	// === Stores ===
	db, err := session.OpenDB(ctx, cfg.Session.Path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() { _ = db.Close() }
	gate := session.NewGate(session.NewStore(db), logger.With("component", "session"))

	// === Clients ===
	client := tmdb.NewClient(cfg.TMDB.Settings(), tmdb.WithLogger(logger.With("component", "tmdb")))
	genres := tmdb.NewGenreCache()

	// === Services ===
	orchestrator := browse.New(client,
		browse.WithGenres(genres),
		browse.WithLogger(logger.With("component", "browse")),
	)

	homeRows, err := cfg.Home.Categories()
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("home rows: %w", err)
	}

	// === HTTP Setup ===
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	apiV1, err := v1.New(v1.ServerDeps{
		Browser:     orchestrator,
		Gate:        gate,
		Genres:      genres,
		GenreSource: client,
		HomeRows:    homeRows,
	}, logger.With("component", "api"))
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("api: %w", err)
	}
	apiV1.RegisterRoutes(mux)

	return &app{
		handler: v1.LogRequests(mux, logger.With("component", "http")),
		client:  client,
		genres:  genres,
	}, cleanup, nil
}
