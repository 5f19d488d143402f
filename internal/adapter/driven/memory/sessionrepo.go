// Package memory holds in-process driven adapters. The session store lives
// here because a browsing session maps to the process lifetime: durable data
// survives a restart, the principal does not.
package memory

import (
	"context"
	"sync"

	"github.com/twomenstudio/studiopanel/internal/domain/model"
	"github.com/twomenstudio/studiopanel/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SessionStore = (*SessionRepo)(nil)

// SessionRepo is the in-memory implementation of the SessionStore port
// interface. It holds at most one principal record.
type SessionRepo struct {
	mu   sync.RWMutex
	user *model.User
}

// NewSessionRepo creates an empty SessionRepo.
func NewSessionRepo() *SessionRepo {
	return &SessionRepo{}
}

// Set stores a copy of the principal, replacing any previous record.
func (r *SessionRepo) Set(_ context.Context, user model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.user = &user
	return nil
}

// Get returns a copy of the stored principal, or nil when no session exists.
func (r *SessionRepo) Get(_ context.Context) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.user == nil {
		return nil, nil
	}

	user := *r.user
	return &user, nil
}

// Clear removes the stored principal.
func (r *SessionRepo) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.user = nil
	return nil
}
