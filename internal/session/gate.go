package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	// ErrNoSession is returned when the gate is closed.
	ErrNoSession = errors.New("not logged in")
	// ErrInvalidCredentials is returned when a login or registration form
	// is incomplete or malformed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Credentials is the login form. The password is required but never
// checked or stored.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration is the sign-up form.
type Registration struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Gate opens and closes the session. It knows nothing about the catalog.
type Gate struct {
	store    *Store
	validate *validator.Validate
	now      func() time.Time
	log      *slog.Logger
}

// NewGate creates a gate backed by store.
func NewGate(store *Store, log *slog.Logger) *Gate {
	if log == nil {
		log = slog.Default()
	}
	return &Gate{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      func() time.Time { return time.Now().UTC() },
		log:      log,
	}
}

// Login opens the gate for any well-formed credentials.
func (g *Gate) Login(ctx context.Context, c Credentials) (*Session, error) {
	c.Email = strings.TrimSpace(c.Email)
	if err := g.check(c); err != nil {
		return nil, err
	}
	return g.open(ctx, c.Email, "", MethodLogin)
}

// Register opens the gate for any complete registration.
func (g *Gate) Register(ctx context.Context, r Registration) (*Session, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	if err := g.check(r); err != nil {
		return nil, err
	}
	return g.open(ctx, r.Email, r.Name, MethodRegister)
}

// Logout closes the gate. Logging out while logged out is not an error.
func (g *Gate) Logout(ctx context.Context) error {
	n, err := g.store.EndAll(ctx, g.now())
	if err != nil {
		return err
	}
	g.log.Info("session closed", "sessions", n)
	return nil
}

// Current returns the open session, or ErrNoSession.
func (g *Gate) Current(ctx context.Context) (*Session, error) {
	return g.store.Active(ctx)
}

// IsAuthorized reports whether the gate is open. Storage errors count as
// closed.
func (g *Gate) IsAuthorized(ctx context.Context) bool {
	_, err := g.store.Active(ctx)
	if err != nil && !errors.Is(err, ErrNoSession) {
		g.log.Warn("session lookup failed", "error", err)
	}
	return err == nil
}

func (g *Gate) open(ctx context.Context, email, name string, method Method) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Method:    method,
		CreatedAt: g.now(),
	}
	if err := g.store.Start(ctx, s); err != nil {
		return nil, err
	}
	g.log.Info("session opened", "session_id", s.ID, "method", method)
	return s, nil
}

func (g *Gate) check(form any) error {
	err := g.validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}
	var problems []string
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			problems = append(problems, field+" is required")
		case "email":
			problems = append(problems, field+" must be a valid email address")
		default:
			problems = append(problems, field+" is invalid")
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidCredentials, strings.Join(problems, ", "))
}
