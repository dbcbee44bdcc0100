// Package memory contains in-memory implementations of repository interfaces.
// They back the demo mode (GESTOR_DB=memoria): same contracts as the sqlite
// adapters, nothing survives the process.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/example/gestor/internal/apperr"
	"github.com/example/gestor/internal/ports/secondary"
)

// GestionRepository implements secondary.GestionRepository in memory.
type GestionRepository struct {
	mu        sync.RWMutex
	gestiones []*secondary.GestionRecord
	nextID    int
}

// NewGestionRepository creates a new in-memory gestión repository.
func NewGestionRepository() *GestionRepository {
	return &GestionRepository{nextID: 1}
}

// Create persists a new gestión.
func (r *GestionRepository) Create(ctx context.Context, gestion *secondary.GestionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, g := range r.gestiones {
		if g.ID == gestion.ID {
			return apperr.Validationf("la gestión %s ya existe", gestion.ID)
		}
	}

	clone := *gestion
	r.gestiones = append(r.gestiones, &clone)
	return nil
}

// GetByID retrieves a gestión by its ID.
func (r *GestionRepository) GetByID(ctx context.Context, id string) (*secondary.GestionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.gestiones {
		if g.ID == id {
			clone := *g
			return &clone, nil
		}
	}
	return nil, apperr.NotFoundf("gestión %s no encontrada", id)
}

// List retrieves gestiones matching the given filters, in insertion order.
func (r *GestionRepository) List(ctx context.Context, filters secondary.GestionFilters) ([]*secondary.GestionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	busqueda := strings.ToLower(filters.Busqueda)
	var result []*secondary.GestionRecord
	for _, g := range r.gestiones {
		if busqueda != "" && !coincide(g, busqueda) {
			continue
		}
		clone := *g
		result = append(result, &clone)
	}
	return result, nil
}

func coincide(g *secondary.GestionRecord, busqueda string) bool {
	return strings.Contains(strings.ToLower(g.Detalle), busqueda) ||
		strings.Contains(strings.ToLower(g.NroExpediente), busqueda) ||
		strings.Contains(strings.ToLower(g.Departamento), busqueda)
}

// Update replaces the mutable fields of an existing gestión.
func (r *GestionRepository) Update(ctx context.Context, gestion *secondary.GestionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, g := range r.gestiones {
		if g.ID == gestion.ID {
			clone := *gestion
			r.gestiones[i] = &clone
			return nil
		}
	}
	return apperr.NotFoundf("gestión %s no encontrada", gestion.ID)
}

// SoftDelete flips is_deleted. Idempotent for already-deleted records.
func (r *GestionRepository) SoftDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, g := range r.gestiones {
		if g.ID == id {
			g.IsDeleted = true
			return nil
		}
	}
	return apperr.NotFoundf("gestión %s no encontrada", id)
}

// GetNextID returns the next available gestión ID.
func (r *GestionRepository) GetNextID(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := fmt.Sprintf("G-%03d", r.nextID)
	r.nextID++
	return id, nil
}

// Ensure GestionRepository implements the interface
var _ secondary.GestionRepository = (*GestionRepository)(nil)
