package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/gestor/internal/apperr"
	"github.com/example/gestor/internal/ports/secondary"
)

// UsuarioRepository implements secondary.UsuarioRepository with SQLite.
type UsuarioRepository struct {
	db *sql.DB
}

// NewUsuarioRepository creates a new SQLite usuario repository.
func NewUsuarioRepository(db *sql.DB) *UsuarioRepository {
	return &UsuarioRepository{db: db}
}

// Add persists a new usuario.
func (r *UsuarioRepository) Add(ctx context.Context, usuario *secondary.UsuarioRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO usuarios (email, nombre, rol, activo) VALUES (?, ?, ?, ?)",
		usuario.Email, nullString(usuario.Nombre), usuario.Rol, boolToInt(usuario.Activo),
	)
	if err != nil {
		return fmt.Errorf("failed to add usuario: %w", err)
	}

	return nil
}

// GetByEmail retrieves a usuario by its unique email.
func (r *UsuarioRepository) GetByEmail(ctx context.Context, email string) (*secondary.UsuarioRecord, error) {
	var (
		nombre sql.NullString
		activo int
	)

	record := &secondary.UsuarioRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT email, nombre, rol, activo FROM usuarios WHERE email = ?", email,
	).Scan(&record.Email, &nombre, &record.Rol, &activo)

	if err == sql.ErrNoRows {
		return nil, apperr.NotFoundf("usuario %s no encontrado", email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get usuario: %w", err)
	}

	record.Nombre = nombre.String
	record.Activo = activo != 0

	return record, nil
}

// List retrieves every usuario, active or not, in insertion order.
func (r *UsuarioRepository) List(ctx context.Context) ([]*secondary.UsuarioRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT email, nombre, rol, activo FROM usuarios ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list usuarios: %w", err)
	}
	defer rows.Close()

	var usuarios []*secondary.UsuarioRecord
	for rows.Next() {
		var (
			nombre sql.NullString
			activo int
		)

		record := &secondary.UsuarioRecord{}
		if err := rows.Scan(&record.Email, &nombre, &record.Rol, &activo); err != nil {
			return nil, fmt.Errorf("failed to scan usuario: %w", err)
		}

		record.Nombre = nombre.String
		record.Activo = activo != 0

		usuarios = append(usuarios, record)
	}

	return usuarios, rows.Err()
}

// SetActivo updates the activo flag of a usuario.
func (r *UsuarioRepository) SetActivo(ctx context.Context, email string, activo bool) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE usuarios SET activo = ? WHERE email = ?", boolToInt(activo), email,
	)
	if err != nil {
		return fmt.Errorf("failed to update usuario: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperr.NotFoundf("usuario %s no encontrado", email)
	}

	return nil
}

// Ensure UsuarioRepository implements the interface
var _ secondary.UsuarioRepository = (*UsuarioRepository)(nil)
