package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "marquee.db")

	db, err := OpenDB(ctx, path)
	require.NoError(t, err)
	g := NewGate(NewStore(db), nil)
	_, err = g.Login(ctx, Credentials{Email: "viewer@example.com", Password: "x"})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Migrations are idempotent and the open session survives a restart.
	db, err = OpenDB(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	assert.True(t, NewGate(NewStore(db), nil).IsAuthorized(ctx))
}

func TestOpenDB_Memory(t *testing.T) {
	db, err := OpenDB(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	assert.False(t, NewGate(NewStore(db), nil).IsAuthorized(context.Background()))
}
