package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/example/gestor/internal/ports/secondary"
)

// EventoRepository implements secondary.EventoRepository in memory.
// Eventos are append-only; the slice never shrinks.
type EventoRepository struct {
	mu      sync.RWMutex
	eventos []*secondary.EventoRecord
}

// NewEventoRepository creates a new in-memory evento repository.
func NewEventoRepository() *EventoRepository {
	return &EventoRepository{}
}

// Append persists a new evento.
func (r *EventoRepository) Append(ctx context.Context, evento *secondary.EventoRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *evento
	r.eventos = append(r.eventos, &clone)
	return nil
}

// ByGestion retrieves the eventos of a gestión ordered by ts_evento
// descending; timestamp ties break by insertion order, last inserted first.
func (r *EventoRepository) ByGestion(ctx context.Context, gestionID string) ([]*secondary.EventoRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	type posicionado struct {
		evento *secondary.EventoRecord
		seq    int
	}
	var matched []posicionado
	for i, e := range r.eventos {
		if e.IDGestion == gestionID {
			clone := *e
			matched = append(matched, posicionado{&clone, i})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].evento.TsEvento != matched[j].evento.TsEvento {
			return matched[i].evento.TsEvento > matched[j].evento.TsEvento
		}
		return matched[i].seq > matched[j].seq
	})

	result := make([]*secondary.EventoRecord, len(matched))
	for i, m := range matched {
		result[i] = m.evento
	}
	return result, nil
}

// Ensure EventoRepository implements the interface
var _ secondary.EventoRepository = (*EventoRepository)(nil)
