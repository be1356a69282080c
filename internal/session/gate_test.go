package session

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/marquee/internal/migrations"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// A single connection keeps every query on the same in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(migrations.InitialSQL)
	require.NoError(t, err)
	return db
}

func newTestGate(t *testing.T) *Gate {
	t.Helper()
	g := NewGate(NewStore(setupTestDB(t)), slog.New(slog.NewTextHandler(io.Discard, nil)))
	clock := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	g.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return g
}

func TestGate_StartsClosed(t *testing.T) {
	g := newTestGate(t)

	assert.False(t, g.IsAuthorized(context.Background()))
	_, err := g.Current(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestGate_Login(t *testing.T) {
	g := newTestGate(t)
	ctx := context.Background()

	s, err := g.Login(ctx, Credentials{Email: " viewer@example.com ", Password: "anything"})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "viewer@example.com", s.Email)
	assert.Equal(t, MethodLogin, s.Method)

	assert.True(t, g.IsAuthorized(ctx))
	current, err := g.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, s.ID, current.ID)
}

func TestGate_LoginValidation(t *testing.T) {
	tests := []struct {
		name  string
		creds Credentials
		want  string
	}{
		{"missing email", Credentials{Password: "x"}, "email is required"},
		{"missing password", Credentials{Email: "a@b.co"}, "password is required"},
		{"malformed email", Credentials{Email: "not-an-email", Password: "x"}, "email must be a valid email address"},
		{"whitespace email", Credentials{Email: "   ", Password: "x"}, "email is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGate(t)

			s, err := g.Login(context.Background(), tt.creds)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Contains(t, err.Error(), tt.want)
			assert.False(t, g.IsAuthorized(context.Background()))
		})
	}
}

func TestGate_Register(t *testing.T) {
	g := newTestGate(t)
	ctx := context.Background()

	_, err := g.Register(ctx, Registration{Email: "a@b.co", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Contains(t, err.Error(), "name is required")

	s, err := g.Register(ctx, Registration{Name: "Ada", Email: "a@b.co", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, MethodRegister, s.Method)
	assert.Equal(t, "Ada", s.Name)
	assert.True(t, g.IsAuthorized(ctx))
}

func TestGate_NewLoginReplacesOldSession(t *testing.T) {
	g := newTestGate(t)
	ctx := context.Background()

	first, err := g.Login(ctx, Credentials{Email: "one@example.com", Password: "x"})
	require.NoError(t, err)
	second, err := g.Login(ctx, Credentials{Email: "two@example.com", Password: "x"})
	require.NoError(t, err)

	current, err := g.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
	assert.NotEqual(t, first.ID, current.ID)

	var active int
	require.NoError(t, g.store.db.QueryRow("SELECT COUNT(*) FROM sessions WHERE ended_at IS NULL").Scan(&active))
	assert.Equal(t, 1, active)
}

func TestGate_Logout(t *testing.T) {
	g := newTestGate(t)
	ctx := context.Background()

	// Logging out while logged out is fine.
	require.NoError(t, g.Logout(ctx))

	_, err := g.Login(ctx, Credentials{Email: "viewer@example.com", Password: "x"})
	require.NoError(t, err)
	require.NoError(t, g.Logout(ctx))

	assert.False(t, g.IsAuthorized(ctx))
}

func TestGate_FlagSurvivesReopen(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	_, err := NewGate(NewStore(db), nil).Login(ctx, Credentials{Email: "viewer@example.com", Password: "x"})
	require.NoError(t, err)

	// A fresh gate over the same database sees the open session.
	assert.True(t, NewGate(NewStore(db), nil).IsAuthorized(ctx))
}
