// Package session implements the mock session gate: a persisted "is logged
// in" flag opened by any well-formed login or registration.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Method records how a session was opened.
type Method string

const (
	MethodLogin    Method = "login"
	MethodRegister Method = "register"
)

// Session is one opened gate.
type Session struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name,omitempty"`
	Method    Method     `json:"method"`
	CreatedAt time.Time  `json:"created_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// Store persists sessions in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a new session store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Start ends any active session and records s as the active one.
func (st *Store) Start(ctx context.Context, s *Session) error {
	tx, err := st.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"UPDATE sessions SET ended_at = ? WHERE ended_at IS NULL", s.CreatedAt,
	); err != nil {
		return fmt.Errorf("end sessions: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO sessions (id, email, name, method, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.Email, s.Name, string(s.Method), s.CreatedAt,
	); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return tx.Commit()
}

// EndAll closes every active session. Returns the number closed.
func (st *Store) EndAll(ctx context.Context, at time.Time) (int64, error) {
	result, err := st.db.ExecContext(ctx,
		"UPDATE sessions SET ended_at = ? WHERE ended_at IS NULL", at,
	)
	if err != nil {
		return 0, fmt.Errorf("end sessions: %w", err)
	}
	return result.RowsAffected()
}

// Active returns the open session, or ErrNoSession.
func (st *Store) Active(ctx context.Context) (*Session, error) {
	var s Session
	var method string
	err := st.db.QueryRowContext(ctx,
		`SELECT id, email, name, method, created_at
		 FROM sessions WHERE ended_at IS NULL
		 ORDER BY created_at DESC LIMIT 1`,
	).Scan(&s.ID, &s.Email, &s.Name, &method, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("get active session: %w", err)
	}
	s.Method = Method(method)
	return &s, nil
}
