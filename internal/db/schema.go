package db

// SchemaSQL is the complete schema for fresh installs. It is the single
// source of truth: adapter tests build their :memory: databases from
// GetSchemaSQL(), so a repository referencing a column missing here fails
// immediately with "no such column".
//
// Dates are stored as TEXT: fecha_ingreso and fecha_finalizacion as
// YYYY-MM-DD, every timestamp as RFC3339. Insertion order (rowid) is the
// stable ordering for listings and the tie-break for evento history.
const SchemaSQL = `
-- Usuarios (access whitelist; revoked via activo, never deleted)
CREATE TABLE IF NOT EXISTS usuarios (
	email TEXT PRIMARY KEY,
	nombre TEXT,
	rol TEXT NOT NULL CHECK(rol IN ('Admin', 'Operador', 'Supervisor', 'Consulta')),
	activo INTEGER NOT NULL DEFAULT 1
);

-- Gestiones (infrastructure work orders)
CREATE TABLE IF NOT EXISTS gestiones (
	id TEXT PRIMARY KEY,
	nro_expediente TEXT,
	origen TEXT,
	estado TEXT NOT NULL CHECK(estado IN ('INGRESADO', 'DERIVADO A SUAC', 'LISTA PARA INAUGURAR', 'FINALIZADA', 'NO REMITE SUAC', 'ARCHIVADO')),
	fecha_ingreso TEXT NOT NULL,
	fecha_estado TEXT NOT NULL,
	fecha_finalizacion TEXT,
	urgencia TEXT NOT NULL CHECK(urgencia IN ('Alta', 'Media', 'Baja')) DEFAULT 'Media',
	ministerio_agencia_id TEXT NOT NULL,
	categoria_general_id TEXT NOT NULL,
	subtipo_detalle TEXT,
	detalle TEXT NOT NULL,
	observaciones TEXT,
	departamento TEXT NOT NULL,
	localidad TEXT NOT NULL,
	direccion TEXT,
	lat REAL,
	lon REAL,
	costo_estimado REAL,
	costo_moneda TEXT NOT NULL DEFAULT 'ARS',
	created_at TEXT NOT NULL,
	created_by TEXT NOT NULL,
	updated_at TEXT NOT NULL,
	updated_by TEXT NOT NULL,
	is_deleted INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_gestiones_estado ON gestiones(estado);
CREATE INDEX IF NOT EXISTS idx_gestiones_departamento ON gestiones(departamento);

-- Eventos (append-only audit log; no UPDATE or DELETE ever issued)
CREATE TABLE IF NOT EXISTS eventos (
	id_evento TEXT PRIMARY KEY,
	id_gestion TEXT NOT NULL,
	ts_evento TEXT NOT NULL,
	actor_email TEXT NOT NULL,
	actor_rol TEXT NOT NULL,
	tipo_evento TEXT NOT NULL CHECK(tipo_evento IN ('CREACION', 'EDICION', 'CAMBIO_ESTADO', 'ELIMINACION')),
	estado_anterior TEXT,
	estado_nuevo TEXT,
	comentario TEXT,
	payload_json TEXT,
	FOREIGN KEY (id_gestion) REFERENCES gestiones(id)
);

CREATE INDEX IF NOT EXISTS idx_eventos_gestion ON eventos(id_gestion);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	if _, err := db.Exec(SchemaSQL); err != nil {
		return err
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
