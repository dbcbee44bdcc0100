package secondary

import "context"

// SesionStore defines the secondary port for the persisted local session.
// It caches the identity of the logged-in usuario between process runs; it is
// not a cache of domain data. Absent means logged out.
type SesionStore interface {
	// Save persists the usuario as the current session.
	Save(ctx context.Context, usuario *UsuarioRecord) error

	// Load returns the persisted usuario, or (nil, nil) when logged out.
	Load(ctx context.Context) (*UsuarioRecord, error)

	// Clear removes the persisted session. Idempotent.
	Clear(ctx context.Context) error
}
