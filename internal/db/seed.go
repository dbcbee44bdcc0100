package db

import (
	"database/sql"
	"fmt"
)

// SeedFixtures populates the database with the demo panel fixtures: the three
// staff usuarios and two gestiones in different estados. Safe to run only on
// a fresh database.
func SeedFixtures(database *sql.DB) error {
	usuarios := []struct {
		email, nombre, rol string
	}{
		{"admin@gmail.com", "Administración", "Admin"},
		{"supervisor@gmail.com", "Mesa de Supervisión", "Supervisor"},
		{"operador@gmail.com", "Mesa de Entradas", "Operador"},
	}
	for _, u := range usuarios {
		if _, err := database.Exec(
			"INSERT INTO usuarios (email, nombre, rol, activo) VALUES (?, ?, ?, 1)",
			u.email, u.nombre, u.rol,
		); err != nil {
			return fmt.Errorf("seed usuarios: %w", err)
		}
	}

	if _, err := database.Exec(`
		INSERT INTO gestiones (
			id, nro_expediente, origen, estado, fecha_ingreso, fecha_estado,
			urgencia, ministerio_agencia_id, categoria_general_id, subtipo_detalle,
			detalle, departamento, localidad, direccion, lat, lon,
			costo_estimado, costo_moneda, created_at, created_by, updated_at, updated_by
		) VALUES (
			'G-001', '2024-EXP-0101', 'Municipio', 'INGRESADO', '2024-03-04', '2024-03-04T09:15:00Z',
			'Alta', 'MIN_INFRA', 'OBRA_VIAL', 'Bacheo',
			'Bacheo y recapado de Av. Vélez Sarsfield entre calles 1 y 9',
			'Capital', 'Córdoba', 'Av. Vélez Sarsfield 400', -31.416, -64.183,
			12500000, 'ARS', '2024-03-04T09:15:00Z', 'operador@gmail.com', '2024-03-04T09:15:00Z', 'operador@gmail.com'
		)`,
	); err != nil {
		return fmt.Errorf("seed gestiones: %w", err)
	}

	if _, err := database.Exec(`
		INSERT INTO gestiones (
			id, nro_expediente, origen, estado, fecha_ingreso, fecha_estado,
			urgencia, ministerio_agencia_id, categoria_general_id,
			detalle, observaciones, departamento, localidad, lat, lon,
			costo_estimado, costo_moneda, created_at, created_by, updated_at, updated_by
		) VALUES (
			'G-002', '2024-EXP-0117', 'Ciudadano', 'DERIVADO A SUAC', '2024-03-11', '2024-03-15T14:02:00Z',
			'Media', 'MIN_AGUA', 'RED_CLOACAL',
			'Extensión de red cloacal en Barrio El Talar',
			'[15/03/2024] Cambio a DERIVADO A SUAC: expediente remitido',
			'Colon', 'Rio Ceballos', -31.168, -64.323,
			48000000, 'ARS', '2024-03-11T10:40:00Z', 'supervisor@gmail.com', '2024-03-15T14:02:00Z', 'supervisor@gmail.com'
		)`,
	); err != nil {
		return fmt.Errorf("seed gestiones: %w", err)
	}

	return nil
}
