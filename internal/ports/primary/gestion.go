// Package primary defines the primary ports (driving adapters) for the
// application: the service interfaces consumed by the CLI and HTTP surfaces,
// with their request/response types.
package primary

import "context"

// GestionService defines the primary port for gestión operations.
// Every mutating operation reads the acting usuario from the context (see
// internal/ctxutil) and validates before mutating: on error nothing changed.
type GestionService interface {
	// CreateGestion creates a new gestión with estado INGRESADO.
	CreateGestion(ctx context.Context, req CreateGestionRequest) (*CreateGestionResponse, error)

	// GetGestion retrieves a gestión by ID.
	GetGestion(ctx context.Context, gestionID string) (*Gestion, error)

	// ListGestiones lists gestiones with an optional search filter.
	ListGestiones(ctx context.Context, filters GestionFilters) ([]*Gestion, error)

	// UpdateGestion updates the editable fields of a gestión.
	UpdateGestion(ctx context.Context, req UpdateGestionRequest) error

	// ChangeEstado applies a role-authorized status transition.
	ChangeEstado(ctx context.Context, req ChangeEstadoRequest) error

	// DeleteGestion soft-deletes a gestión. Idempotent.
	DeleteGestion(ctx context.Context, gestionID string) error

	// GetHistorial returns the audit eventos of a gestión, newest first.
	GetHistorial(ctx context.Context, gestionID string) ([]*Evento, error)

	// Resumen returns the per-estado counters shown on the panel dashboard.
	Resumen(ctx context.Context) (*ResumenGestiones, error)
}

// CreateGestionRequest contains parameters for creating a gestión.
// Departamento, Localidad, MinisterioAgenciaID, CategoriaGeneralID and
// Detalle are mandatory.
type CreateGestionRequest struct {
	NroExpediente       string
	Origen              string
	Urgencia            string // Empty defaults to Media
	MinisterioAgenciaID string
	CategoriaGeneralID  string
	SubtipoDetalle      string
	Detalle             string
	Observaciones       string
	Departamento        string
	Localidad           string
	Direccion           string
	CostoEstimado       float64
	CostoMoneda         string // Empty defaults to ARS
}

// CreateGestionResponse contains the result of creating a gestión.
type CreateGestionResponse struct {
	GestionID string
	Gestion   *Gestion
}

// UpdateGestionRequest contains parameters for editing a gestión.
// Empty string fields are left unchanged; CostoEstimado is only applied when
// non-nil.
type UpdateGestionRequest struct {
	GestionID           string
	NroExpediente       string
	Origen              string
	Urgencia            string
	MinisterioAgenciaID string
	CategoriaGeneralID  string
	SubtipoDetalle      string
	Detalle             string
	Departamento        string
	Localidad           string
	Direccion           string
	CostoEstimado       *float64
}

// ChangeEstadoRequest contains parameters for a status transition.
type ChangeEstadoRequest struct {
	GestionID   string
	NuevoEstado string
	Comentario  string // Mandatory for ARCHIVADO and NO REMITE SUAC
}

// Gestion represents a gestión at the port boundary.
type Gestion struct {
	ID                  string
	NroExpediente       string
	Origen              string
	Estado              string
	FechaIngreso        string
	FechaEstado         string
	FechaFinalizacion   string
	Urgencia            string
	MinisterioAgenciaID string
	CategoriaGeneralID  string
	SubtipoDetalle      string
	Detalle             string
	Observaciones       string
	Departamento        string
	Localidad           string
	Direccion           string
	GeoResuelta         bool
	Lat                 float64
	Lon                 float64
	CostoEstimado       float64
	CostoMoneda         string
	CreatedAt           string
	CreatedBy           string
	UpdatedAt           string
	UpdatedBy           string
	IsDeleted           bool
}

// GestionFilters contains filter options for listing gestiones.
type GestionFilters struct {
	Busqueda string
}

// Evento represents an audit evento at the port boundary.
type Evento struct {
	IDEvento       string
	IDGestion      string
	TsEvento       string
	ActorEmail     string
	ActorRol       string
	TipoEvento     string
	EstadoAnterior string
	EstadoNuevo    string
	Comentario     string
	PayloadJSON    string
}

// ResumenGestiones aggregates the panel counters.
type ResumenGestiones struct {
	Total      int
	Eliminadas int
	PorEstado  map[string]int
}
