package memory

import (
	"context"
	"sync"

	"github.com/example/gestor/internal/apperr"
	"github.com/example/gestor/internal/ports/secondary"
)

// UsuarioRepository implements secondary.UsuarioRepository in memory.
type UsuarioRepository struct {
	mu       sync.RWMutex
	usuarios []*secondary.UsuarioRecord
}

// NewUsuarioRepository creates a new in-memory usuario repository.
func NewUsuarioRepository() *UsuarioRepository {
	return &UsuarioRepository{}
}

// Add persists a new usuario.
func (r *UsuarioRepository) Add(ctx context.Context, usuario *secondary.UsuarioRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.usuarios {
		if u.Email == usuario.Email {
			return apperr.Validationf("el usuario %s ya existe", usuario.Email)
		}
	}

	clone := *usuario
	r.usuarios = append(r.usuarios, &clone)
	return nil
}

// GetByEmail retrieves a usuario by its unique email.
func (r *UsuarioRepository) GetByEmail(ctx context.Context, email string) (*secondary.UsuarioRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.usuarios {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperr.NotFoundf("usuario %s no encontrado", email)
}

// List retrieves every usuario, active or not, in insertion order.
func (r *UsuarioRepository) List(ctx context.Context) ([]*secondary.UsuarioRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*secondary.UsuarioRecord, len(r.usuarios))
	for i, u := range r.usuarios {
		clone := *u
		result[i] = &clone
	}
	return result, nil
}

// SetActivo updates the activo flag of a usuario.
func (r *UsuarioRepository) SetActivo(ctx context.Context, email string, activo bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.usuarios {
		if u.Email == email {
			u.Activo = activo
			return nil
		}
	}
	return apperr.NotFoundf("usuario %s no encontrado", email)
}

// Ensure UsuarioRepository implements the interface
var _ secondary.UsuarioRepository = (*UsuarioRepository)(nil)
