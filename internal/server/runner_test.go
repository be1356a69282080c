package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startRunner(t *testing.T, r *Runner) (string, context.CancelFunc, <-chan error) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- r.Serve(ctx, ln)
	}()
	return "http://" + ln.Addr().String(), cancel, done
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for runner to stop")
		return nil
	}
}

func TestRunner_ServesAndStops(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	url, cancel, done := startRunner(t, NewRunner(handler, Config{}, testLogger()))

	resp, err := http.Get(url)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	assert.NoError(t, waitDone(t, done))
}

func TestRunner_RunsJobs(t *testing.T) {
	var ran, failed atomic.Bool
	r := NewRunner(http.NotFoundHandler(), Config{}, testLogger())
	r.AddJob("warm", func(context.Context) error {
		ran.Store(true)
		return nil
	})
	r.AddJob("broken", func(context.Context) error {
		failed.Store(true)
		return errors.New("upstream down")
	})

	_, cancel, done := startRunner(t, r)
	require.Eventually(t, func() bool { return ran.Load() && failed.Load() }, time.Second, 10*time.Millisecond)

	// A failing job does not take the server down.
	select {
	case err := <-done:
		t.Fatalf("runner stopped early: %v", err)
	default:
	}

	cancel()
	assert.NoError(t, waitDone(t, done))
}

func TestRunner_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	r := NewRunner(http.NotFoundHandler(), Config{Addr: ln.Addr().String()}, testLogger())
	err = r.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}

func TestNewRunner_Defaults(t *testing.T) {
	// Should not panic with nil logger
	r := NewRunner(http.NotFoundHandler(), Config{}, nil)
	require.NotNil(t, r.logger)
	assert.Equal(t, DefaultShutdownTimeout, r.config.ShutdownTimeout)
}
