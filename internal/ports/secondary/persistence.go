// Package secondary defines the secondary ports (driven adapters) for the
// application. These interfaces are the seam where a storage backend plugs in:
// the in-memory adapters serve demo mode, the sqlite adapters serve local
// persistence, and a warehouse-backed implementation would satisfy the same
// contracts.
package secondary

import "context"

// GestionRepository defines the secondary port for gestión persistence.
type GestionRepository interface {
	// Create persists a new gestión.
	Create(ctx context.Context, gestion *GestionRecord) error

	// GetByID retrieves a gestión by its ID.
	GetByID(ctx context.Context, id string) (*GestionRecord, error)

	// List retrieves gestiones matching the given filters, in insertion order.
	// Soft-deleted records are included; they remain visible with history.
	List(ctx context.Context, filters GestionFilters) ([]*GestionRecord, error)

	// Update replaces the mutable fields of an existing gestión.
	Update(ctx context.Context, gestion *GestionRecord) error

	// SoftDelete flips is_deleted. Idempotent for already-deleted records.
	SoftDelete(ctx context.Context, id string) error

	// GetNextID returns the next available gestión ID.
	GetNextID(ctx context.Context) (string, error)
}

// GestionRecord represents a gestión as stored in persistence.
type GestionRecord struct {
	ID                  string
	NroExpediente       string
	Origen              string
	Estado              string
	FechaIngreso        string // YYYY-MM-DD
	FechaEstado         string // RFC3339
	FechaFinalizacion   string // Empty string means null - YYYY-MM-DD
	Urgencia            string
	MinisterioAgenciaID string
	CategoriaGeneralID  string
	SubtipoDetalle      string // Empty string means null
	Detalle             string
	Observaciones       string // Append-only free text log
	Departamento        string
	Localidad           string
	Direccion           string // Empty string means null
	GeoResuelta         bool   // Lat/Lon are meaningful only when true
	Lat                 float64
	Lon                 float64
	CostoEstimado       float64
	CostoMoneda         string
	CreatedAt           string // RFC3339
	CreatedBy           string
	UpdatedAt           string // RFC3339
	UpdatedBy           string
	IsDeleted           bool
}

// GestionFilters contains filter options for querying gestiones.
type GestionFilters struct {
	// Busqueda is a case-insensitive substring matched against detalle,
	// nro_expediente and departamento. Empty means no filtering.
	Busqueda string
}

// EventoRepository defines the secondary port for the per-gestión audit log.
// Eventos are immutable - no Update or Delete operations.
type EventoRepository interface {
	// Append persists a new evento.
	Append(ctx context.Context, evento *EventoRecord) error

	// ByGestion retrieves the eventos of a gestión ordered by ts_evento
	// descending; timestamp ties break by insertion order, last inserted
	// first.
	ByGestion(ctx context.Context, gestionID string) ([]*EventoRecord, error)
}

// EventoRecord represents an audit evento as stored in persistence.
type EventoRecord struct {
	IDEvento       string
	IDGestion      string
	TsEvento       string // RFC3339
	ActorEmail     string
	ActorRol       string
	TipoEvento     string // CREACION, EDICION, CAMBIO_ESTADO, ELIMINACION
	EstadoAnterior string // Empty string means null
	EstadoNuevo    string // Empty string means null
	Comentario     string // Empty string means null
	PayloadJSON    string // Empty string means null
}

// Evento tipo constants.
const (
	EventoCreacion     = "CREACION"
	EventoEdicion      = "EDICION"
	EventoCambioEstado = "CAMBIO_ESTADO"
	EventoEliminacion  = "ELIMINACION"
)

// UsuarioRepository defines the secondary port for the whitelist.
// Usuarios are never hard-deleted; access is revoked via the activo flag.
type UsuarioRepository interface {
	// Add persists a new usuario.
	Add(ctx context.Context, usuario *UsuarioRecord) error

	// GetByEmail retrieves a usuario by its unique email.
	GetByEmail(ctx context.Context, email string) (*UsuarioRecord, error)

	// List retrieves every usuario, active or not, in insertion order.
	List(ctx context.Context) ([]*UsuarioRecord, error)

	// SetActivo updates the activo flag of a usuario.
	SetActivo(ctx context.Context, email string, activo bool) error
}

// UsuarioRecord represents a whitelisted usuario as stored in persistence.
type UsuarioRecord struct {
	Email  string
	Nombre string
	Rol    string
	Activo bool
}
