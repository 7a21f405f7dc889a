// Package session holds the server-side session table mapping opaque cookie
// tokens to the logged-in user's projection.
package session

import (
	"fmt"
	"time"

	"eventman/internal/core/model"
	"eventman/internal/core/util"
)

// tokenBytes gives 256 bits of entropy per token.
const tokenBytes = 32

type Session struct {
	User      model.Projection `json:"user"`
	CreatedAt time.Time        `json:"createdAt"`
	ExpiresAt time.Time        `json:"expiresAt"`
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store persists sessions keyed by token. Implementations must be safe for
// concurrent use.
type Store interface {
	Save(token string, sess Session, ttl time.Duration) error
	// Load reports false for unknown and expired tokens alike.
	Load(token string) (Session, bool, error)
	Delete(token string) error
}

type Manager struct {
	store Store
	ttl   time.Duration
}

func NewManager(store Store, ttl time.Duration) *Manager {
	return &Manager{
		store: store,
		ttl:   ttl,
	}
}

// Create allocates a session for the user and returns its token.
func (m *Manager) Create(user model.Projection) (string, error) {
	token, err := util.GenerateToken(tokenBytes)
	if err != nil {
		return "", fmt.Errorf("generating session token: %w", err)
	}

	now := time.Now()
	sess := Session{
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.store.Save(token, sess, m.ttl); err != nil {
		return "", fmt.Errorf("saving session: %w", err)
	}
	return token, nil
}

// Get resolves a token to its user projection. Sessions are not renewed on
// activity; once the TTL elapses the token is treated as absent.
func (m *Manager) Get(token string) (model.Projection, bool, error) {
	if token == "" {
		return model.Projection{}, false, nil
	}

	sess, ok, err := m.store.Load(token)
	if err != nil {
		return model.Projection{}, false, fmt.Errorf("loading session: %w", err)
	}
	if !ok {
		return model.Projection{}, false, nil
	}
	return sess.User, true, nil
}

// Destroy removes the session. Destroying an unknown token is a no-op.
func (m *Manager) Destroy(token string) error {
	if token == "" {
		return nil
	}
	if err := m.store.Delete(token); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
