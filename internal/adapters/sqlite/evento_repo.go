package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/gestor/internal/ports/secondary"
)

// EventoRepository implements secondary.EventoRepository with SQLite.
// The eventos table only ever sees INSERT and SELECT.
type EventoRepository struct {
	db *sql.DB
}

// NewEventoRepository creates a new SQLite evento repository.
func NewEventoRepository(db *sql.DB) *EventoRepository {
	return &EventoRepository{db: db}
}

// Append persists a new evento.
func (r *EventoRepository) Append(ctx context.Context, evento *secondary.EventoRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO eventos (
			id_evento, id_gestion, ts_evento, actor_email, actor_rol,
			tipo_evento, estado_anterior, estado_nuevo, comentario, payload_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		evento.IDEvento,
		evento.IDGestion,
		evento.TsEvento,
		evento.ActorEmail,
		evento.ActorRol,
		evento.TipoEvento,
		nullString(evento.EstadoAnterior),
		nullString(evento.EstadoNuevo),
		nullString(evento.Comentario),
		nullString(evento.PayloadJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to append evento: %w", err)
	}

	return nil
}

// ByGestion retrieves the eventos of a gestión ordered by ts_evento
// descending; timestamp ties break by insertion order, last inserted first.
func (r *EventoRepository) ByGestion(ctx context.Context, gestionID string) ([]*secondary.EventoRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id_evento, id_gestion, ts_evento, actor_email, actor_rol,
			tipo_evento, estado_anterior, estado_nuevo, comentario, payload_json
		FROM eventos WHERE id_gestion = ?
		ORDER BY ts_evento DESC, rowid DESC`,
		gestionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list eventos: %w", err)
	}
	defer rows.Close()

	var eventos []*secondary.EventoRecord
	for rows.Next() {
		var (
			estadoAnterior sql.NullString
			estadoNuevo    sql.NullString
			comentario     sql.NullString
			payloadJSON    sql.NullString
		)

		record := &secondary.EventoRecord{}
		err := rows.Scan(
			&record.IDEvento, &record.IDGestion, &record.TsEvento,
			&record.ActorEmail, &record.ActorRol, &record.TipoEvento,
			&estadoAnterior, &estadoNuevo, &comentario, &payloadJSON,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan evento: %w", err)
		}

		record.EstadoAnterior = estadoAnterior.String
		record.EstadoNuevo = estadoNuevo.String
		record.Comentario = comentario.String
		record.PayloadJSON = payloadJSON.String

		eventos = append(eventos, record)
	}

	return eventos, rows.Err()
}

// Ensure EventoRepository implements the interface
var _ secondary.EventoRepository = (*EventoRepository)(nil)
