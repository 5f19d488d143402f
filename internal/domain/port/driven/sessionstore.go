package driven

import (
	"context"

	"github.com/twomenstudio/studiopanel/internal/domain/model"
)

// SessionStore defines the driven port for the current-session principal.
// Its lifetime is the running process (the browsing session); there is no
// explicit teardown and overflow is not a realistic failure mode.
type SessionStore interface {
	// Set stores the principal, replacing any previous record.
	Set(ctx context.Context, user model.User) error

	// Get retrieves the stored principal, or nil when no session exists.
	Get(ctx context.Context) (*model.User, error)

	// Clear removes the stored principal. Clearing an empty store is not
	// an error.
	Clear(ctx context.Context) error
}
