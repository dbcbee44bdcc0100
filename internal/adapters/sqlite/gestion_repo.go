// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/gestor/internal/apperr"
	"github.com/example/gestor/internal/ports/secondary"
)

// GestionRepository implements secondary.GestionRepository with SQLite.
type GestionRepository struct {
	db *sql.DB
}

// NewGestionRepository creates a new SQLite gestión repository.
func NewGestionRepository(db *sql.DB) *GestionRepository {
	return &GestionRepository{db: db}
}

const gestionColumns = `id, nro_expediente, origen, estado, fecha_ingreso, fecha_estado,
	fecha_finalizacion, urgencia, ministerio_agencia_id, categoria_general_id,
	subtipo_detalle, detalle, observaciones, departamento, localidad, direccion,
	lat, lon, costo_estimado, costo_moneda, created_at, created_by, updated_at,
	updated_by, is_deleted`

// Create persists a new gestión.
func (r *GestionRepository) Create(ctx context.Context, gestion *secondary.GestionRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO gestiones (`+gestionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		gestion.ID,
		nullString(gestion.NroExpediente),
		nullString(gestion.Origen),
		gestion.Estado,
		gestion.FechaIngreso,
		gestion.FechaEstado,
		nullString(gestion.FechaFinalizacion),
		gestion.Urgencia,
		gestion.MinisterioAgenciaID,
		gestion.CategoriaGeneralID,
		nullString(gestion.SubtipoDetalle),
		gestion.Detalle,
		nullString(gestion.Observaciones),
		gestion.Departamento,
		gestion.Localidad,
		nullString(gestion.Direccion),
		nullCoord(gestion.GeoResuelta, gestion.Lat),
		nullCoord(gestion.GeoResuelta, gestion.Lon),
		gestion.CostoEstimado,
		gestion.CostoMoneda,
		gestion.CreatedAt,
		gestion.CreatedBy,
		gestion.UpdatedAt,
		gestion.UpdatedBy,
		boolToInt(gestion.IsDeleted),
	)
	if err != nil {
		return fmt.Errorf("failed to create gestión: %w", err)
	}

	return nil
}

// GetByID retrieves a gestión by its ID.
func (r *GestionRepository) GetByID(ctx context.Context, id string) (*secondary.GestionRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+gestionColumns+` FROM gestiones WHERE id = ?`, id,
	)

	record, err := scanGestion(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFoundf("gestión %s no encontrada", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gestión: %w", err)
	}

	return record, nil
}

// List retrieves gestiones matching the given filters, in insertion order.
func (r *GestionRepository) List(ctx context.Context, filters secondary.GestionFilters) ([]*secondary.GestionRecord, error) {
	query := `SELECT ` + gestionColumns + ` FROM gestiones WHERE 1=1`
	args := []any{}

	if filters.Busqueda != "" {
		pattern := "%" + filters.Busqueda + "%"
		query += " AND (detalle LIKE ? OR nro_expediente LIKE ? OR departamento LIKE ?)"
		args = append(args, pattern, pattern, pattern)
	}

	query += " ORDER BY rowid"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list gestiones: %w", err)
	}
	defer rows.Close()

	var gestiones []*secondary.GestionRecord
	for rows.Next() {
		record, err := scanGestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gestión: %w", err)
		}
		gestiones = append(gestiones, record)
	}

	return gestiones, rows.Err()
}

// Update replaces the mutable fields of an existing gestión.
func (r *GestionRepository) Update(ctx context.Context, gestion *secondary.GestionRecord) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE gestiones SET
			nro_expediente = ?, origen = ?, estado = ?, fecha_estado = ?,
			fecha_finalizacion = ?, urgencia = ?, ministerio_agencia_id = ?,
			categoria_general_id = ?, subtipo_detalle = ?, detalle = ?,
			observaciones = ?, departamento = ?, localidad = ?, direccion = ?,
			lat = ?, lon = ?, costo_estimado = ?, costo_moneda = ?,
			updated_at = ?, updated_by = ?
		WHERE id = ?`,
		nullString(gestion.NroExpediente),
		nullString(gestion.Origen),
		gestion.Estado,
		gestion.FechaEstado,
		nullString(gestion.FechaFinalizacion),
		gestion.Urgencia,
		gestion.MinisterioAgenciaID,
		gestion.CategoriaGeneralID,
		nullString(gestion.SubtipoDetalle),
		gestion.Detalle,
		nullString(gestion.Observaciones),
		gestion.Departamento,
		gestion.Localidad,
		nullString(gestion.Direccion),
		nullCoord(gestion.GeoResuelta, gestion.Lat),
		nullCoord(gestion.GeoResuelta, gestion.Lon),
		gestion.CostoEstimado,
		gestion.CostoMoneda,
		gestion.UpdatedAt,
		gestion.UpdatedBy,
		gestion.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update gestión: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperr.NotFoundf("gestión %s no encontrada", gestion.ID)
	}

	return nil
}

// SoftDelete flips is_deleted. Idempotent for already-deleted records.
func (r *GestionRepository) SoftDelete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE gestiones SET is_deleted = 1 WHERE id = ?", id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete gestión: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperr.NotFoundf("gestión %s no encontrada", id)
	}

	return nil
}

// GetNextID returns the next available gestión ID.
func (r *GestionRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 3) AS INTEGER)), 0) FROM gestiones",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next gestión ID: %w", err)
	}

	return fmt.Sprintf("G-%03d", maxID+1), nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanGestion(s scanner) (*secondary.GestionRecord, error) {
	var (
		nroExpediente     sql.NullString
		origen            sql.NullString
		fechaFinalizacion sql.NullString
		subtipoDetalle    sql.NullString
		observaciones     sql.NullString
		direccion         sql.NullString
		lat               sql.NullFloat64
		lon               sql.NullFloat64
		costoEstimado     sql.NullFloat64
		isDeleted         int
	)

	record := &secondary.GestionRecord{}
	err := s.Scan(
		&record.ID, &nroExpediente, &origen, &record.Estado,
		&record.FechaIngreso, &record.FechaEstado, &fechaFinalizacion,
		&record.Urgencia, &record.MinisterioAgenciaID, &record.CategoriaGeneralID,
		&subtipoDetalle, &record.Detalle, &observaciones,
		&record.Departamento, &record.Localidad, &direccion,
		&lat, &lon, &costoEstimado, &record.CostoMoneda,
		&record.CreatedAt, &record.CreatedBy, &record.UpdatedAt, &record.UpdatedBy,
		&isDeleted,
	)
	if err != nil {
		return nil, err
	}

	record.NroExpediente = nroExpediente.String
	record.Origen = origen.String
	record.FechaFinalizacion = fechaFinalizacion.String
	record.SubtipoDetalle = subtipoDetalle.String
	record.Observaciones = observaciones.String
	record.Direccion = direccion.String
	if lat.Valid && lon.Valid {
		record.GeoResuelta = true
		record.Lat = lat.Float64
		record.Lon = lon.Float64
	}
	record.CostoEstimado = costoEstimado.Float64
	record.IsDeleted = isDeleted != 0

	return record, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// nullCoord stores NULL when the gestión carries no resolved coordinates.
func nullCoord(resuelta bool, v float64) sql.NullFloat64 {
	if !resuelta {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Ensure GestionRepository implements the interface
var _ secondary.GestionRepository = (*GestionRepository)(nil)
