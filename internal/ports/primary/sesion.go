package primary

import "context"

// SesionService defines the primary port for the login session.
// The identity provider hands over an email; the service maps it to a
// whitelisted usuario, including its recorded rol. Unknown or inactive emails
// are denied here rather than silently granted a default role.
type SesionService interface {
	// Login resolves the email against the whitelist and persists the session.
	Login(ctx context.Context, email string) (*Usuario, error)

	// Resolve maps an email to its whitelisted usuario without touching the
	// persisted session. Used by the HTTP middleware to build the actor.
	Resolve(ctx context.Context, email string) (*Usuario, error)

	// Current returns the persisted session usuario, or nil when logged out.
	Current(ctx context.Context) (*Usuario, error)

	// Logout clears the persisted session. Idempotent.
	Logout(ctx context.Context) error
}
