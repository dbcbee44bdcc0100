// Package app implements the primary ports with injected repositories.
// Services run every policy and validation check before touching the
// repositories, so a failed operation never leaves partial state behind.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/gestor/internal/apperr"
	"github.com/example/gestor/internal/core/geo"
	"github.com/example/gestor/internal/core/gestion"
	"github.com/example/gestor/internal/core/usuario"
	"github.com/example/gestor/internal/ctxutil"
	"github.com/example/gestor/internal/ports/primary"
	"github.com/example/gestor/internal/ports/secondary"
)

// GestionServiceImpl implements the GestionService interface.
type GestionServiceImpl struct {
	gestionRepo secondary.GestionRepository
	eventoRepo  secondary.EventoRepository
	now         func() time.Time
}

// NewGestionService creates a new GestionService with injected dependencies.
func NewGestionService(gestionRepo secondary.GestionRepository, eventoRepo secondary.EventoRepository) *GestionServiceImpl {
	return &GestionServiceImpl{
		gestionRepo: gestionRepo,
		eventoRepo:  eventoRepo,
		now:         time.Now,
	}
}

// CreateGestion creates a new gestión with estado INGRESADO.
func (s *GestionServiceImpl) CreateGestion(ctx context.Context, req primary.CreateGestionRequest) (*primary.CreateGestionResponse, error) {
	actor, rol, err := s.requireActor(ctx)
	if err != nil {
		return nil, err
	}

	if res := gestion.CanCrear(rol); !res.Allowed {
		return nil, apperr.Authorizationf("%s", res.Reason)
	}

	if err := validarObligatorios(req); err != nil {
		return nil, err
	}

	urg := gestion.DefaultUrgencia()
	if req.Urgencia != "" {
		urg, err = gestion.ParseUrgencia(req.Urgencia)
		if err != nil {
			return nil, apperr.Validationf("%v", err)
		}
	}

	moneda := req.CostoMoneda
	if moneda == "" {
		moneda = gestion.DefaultMoneda
	}

	nextID, err := s.gestionRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate gestión ID: %w", err)
	}

	now := s.now()
	ts := now.Format(time.RFC3339)

	record := &secondary.GestionRecord{
		ID:                  nextID,
		NroExpediente:       req.NroExpediente,
		Origen:              req.Origen,
		Estado:              string(gestion.InitialEstado()),
		FechaIngreso:        now.Format("2006-01-02"),
		FechaEstado:         ts,
		Urgencia:            string(urg),
		MinisterioAgenciaID: req.MinisterioAgenciaID,
		CategoriaGeneralID:  req.CategoriaGeneralID,
		SubtipoDetalle:      req.SubtipoDetalle,
		Detalle:             req.Detalle,
		Observaciones:       req.Observaciones,
		Departamento:        req.Departamento,
		Localidad:           req.Localidad,
		Direccion:           req.Direccion,
		CostoEstimado:       req.CostoEstimado,
		CostoMoneda:         moneda,
		CreatedAt:           ts,
		CreatedBy:           actor.Email,
		UpdatedAt:           ts,
		UpdatedBy:           actor.Email,
	}

	if c, ok := geo.Resolver(record.Departamento, record.Localidad); ok {
		record.GeoResuelta = true
		record.Lat = c.Lat
		record.Lon = c.Lon
	}

	if err := s.gestionRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create gestión: %w", err)
	}

	payload, _ := json.Marshal(map[string]string{"detalle": req.Detalle})
	if err := s.appendEvento(ctx, actor, &secondary.EventoRecord{
		IDGestion:   nextID,
		TipoEvento:  secondary.EventoCreacion,
		PayloadJSON: string(payload),
	}); err != nil {
		return nil, err
	}

	return &primary.CreateGestionResponse{
		GestionID: nextID,
		Gestion:   recordToGestion(record),
	}, nil
}

// GetGestion retrieves a gestión by ID.
func (s *GestionServiceImpl) GetGestion(ctx context.Context, gestionID string) (*primary.Gestion, error) {
	record, err := s.gestionRepo.GetByID(ctx, gestionID)
	if err != nil {
		return nil, err
	}
	return recordToGestion(record), nil
}

// ListGestiones lists gestiones with an optional search filter.
func (s *GestionServiceImpl) ListGestiones(ctx context.Context, filters primary.GestionFilters) ([]*primary.Gestion, error) {
	records, err := s.gestionRepo.List(ctx, secondary.GestionFilters{
		Busqueda: filters.Busqueda,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list gestiones: %w", err)
	}

	gestiones := make([]*primary.Gestion, len(records))
	for i, r := range records {
		gestiones[i] = recordToGestion(r)
	}
	return gestiones, nil
}

// UpdateGestion updates the editable fields of a gestión.
func (s *GestionServiceImpl) UpdateGestion(ctx context.Context, req primary.UpdateGestionRequest) error {
	actor, rol, err := s.requireActor(ctx)
	if err != nil {
		return err
	}

	if res := gestion.CanEditar(rol); !res.Allowed {
		return apperr.Authorizationf("%s", res.Reason)
	}

	existing, err := s.gestionRepo.GetByID(ctx, req.GestionID)
	if err != nil {
		return err
	}
	if existing.IsDeleted {
		return apperr.Validationf("la gestión %s está eliminada y no admite ediciones", req.GestionID)
	}

	var cambios []string
	merge := func(dst *string, v, campo string) {
		if v != "" && v != *dst {
			*dst = v
			cambios = append(cambios, campo)
		}
	}

	if req.Urgencia != "" && req.Urgencia != existing.Urgencia {
		if res := gestion.CanCambiarUrgencia(rol, true); !res.Allowed {
			return apperr.Authorizationf("%s", res.Reason)
		}
		urg, err := gestion.ParseUrgencia(req.Urgencia)
		if err != nil {
			return apperr.Validationf("%v", err)
		}
		existing.Urgencia = string(urg)
		cambios = append(cambios, "urgencia")
	}

	merge(&existing.NroExpediente, req.NroExpediente, "nro_expediente")
	merge(&existing.Origen, req.Origen, "origen")
	merge(&existing.MinisterioAgenciaID, req.MinisterioAgenciaID, "ministerio_agencia_id")
	merge(&existing.CategoriaGeneralID, req.CategoriaGeneralID, "categoria_general_id")
	merge(&existing.SubtipoDetalle, req.SubtipoDetalle, "subtipo_detalle")
	merge(&existing.Detalle, req.Detalle, "detalle")
	merge(&existing.Direccion, req.Direccion, "direccion")

	ubicacionCambiada := false
	if req.Departamento != "" && req.Departamento != existing.Departamento {
		existing.Departamento = req.Departamento
		cambios = append(cambios, "departamento")
		ubicacionCambiada = true
	}
	if req.Localidad != "" && req.Localidad != existing.Localidad {
		existing.Localidad = req.Localidad
		cambios = append(cambios, "localidad")
		ubicacionCambiada = true
	}
	if ubicacionCambiada {
		c, ok := geo.Resolver(existing.Departamento, existing.Localidad)
		existing.GeoResuelta = ok
		existing.Lat = c.Lat
		existing.Lon = c.Lon
	}

	if req.CostoEstimado != nil && *req.CostoEstimado != existing.CostoEstimado {
		existing.CostoEstimado = *req.CostoEstimado
		cambios = append(cambios, "costo_estimado")
	}

	if len(cambios) == 0 {
		return nil
	}

	existing.UpdatedAt = s.now().Format(time.RFC3339)
	existing.UpdatedBy = actor.Email

	if err := s.gestionRepo.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update gestión: %w", err)
	}

	payload, _ := json.Marshal(map[string][]string{"campos": cambios})
	return s.appendEvento(ctx, actor, &secondary.EventoRecord{
		IDGestion:   req.GestionID,
		TipoEvento:  secondary.EventoEdicion,
		PayloadJSON: string(payload),
	})
}

// ChangeEstado applies a role-authorized status transition. All checks run
// before any write: an unauthorized or invalid attempt mutates nothing.
func (s *GestionServiceImpl) ChangeEstado(ctx context.Context, req primary.ChangeEstadoRequest) error {
	actor, rol, err := s.requireActor(ctx)
	if err != nil {
		return err
	}

	existing, err := s.gestionRepo.GetByID(ctx, req.GestionID)
	if err != nil {
		return err
	}
	if existing.IsDeleted {
		return apperr.Validationf("la gestión %s está eliminada y no admite cambios de estado", req.GestionID)
	}

	desde, err := gestion.ParseEstado(existing.Estado)
	if err != nil {
		return fmt.Errorf("stored estado is invalid: %w", err)
	}
	hacia, err := gestion.ParseEstado(req.NuevoEstado)
	if err != nil {
		return apperr.Validationf("%v", err)
	}

	if res := gestion.CanTransition(rol, desde, hacia); !res.Allowed {
		return apperr.Authorizationf("%s", res.Reason)
	}

	if gestion.RequiereComentario(hacia) && strings.TrimSpace(req.Comentario) == "" {
		return apperr.Validationf("el comentario es obligatorio para los estados %s y %s", gestion.EstadoArchivado, gestion.EstadoNoRemite)
	}

	cambio := gestion.ApplyCambioEstado(hacia, req.Comentario, s.now())

	existing.Estado = string(cambio.NuevoEstado)
	existing.FechaEstado = cambio.FechaEstado.Format(time.RFC3339)
	existing.Observaciones = gestion.AppendObservacion(existing.Observaciones, cambio.LineaObservacion)
	if cambio.FechaFinalizacion != nil {
		existing.FechaFinalizacion = cambio.FechaFinalizacion.Format("2006-01-02")
	}
	existing.UpdatedAt = cambio.FechaEstado.Format(time.RFC3339)
	existing.UpdatedBy = actor.Email

	if err := s.gestionRepo.Update(ctx, existing); err != nil {
		return fmt.Errorf("failed to update gestión: %w", err)
	}

	return s.appendEvento(ctx, actor, &secondary.EventoRecord{
		IDGestion:      req.GestionID,
		TipoEvento:     secondary.EventoCambioEstado,
		EstadoAnterior: string(desde),
		EstadoNuevo:    string(hacia),
		Comentario:     req.Comentario,
	})
}

// DeleteGestion soft-deletes a gestión. A second call is a no-op: the flag
// stays true and no duplicate evento is recorded.
func (s *GestionServiceImpl) DeleteGestion(ctx context.Context, gestionID string) error {
	actor, rol, err := s.requireActor(ctx)
	if err != nil {
		return err
	}

	if res := gestion.CanEliminar(rol); !res.Allowed {
		return apperr.Authorizationf("%s", res.Reason)
	}

	existing, err := s.gestionRepo.GetByID(ctx, gestionID)
	if err != nil {
		return err
	}
	if existing.IsDeleted {
		return nil
	}

	if err := s.gestionRepo.SoftDelete(ctx, gestionID); err != nil {
		return fmt.Errorf("failed to delete gestión: %w", err)
	}

	return s.appendEvento(ctx, actor, &secondary.EventoRecord{
		IDGestion:  gestionID,
		TipoEvento: secondary.EventoEliminacion,
	})
}

// GetHistorial returns the audit eventos of a gestión, newest first.
func (s *GestionServiceImpl) GetHistorial(ctx context.Context, gestionID string) ([]*primary.Evento, error) {
	if _, err := s.gestionRepo.GetByID(ctx, gestionID); err != nil {
		return nil, err
	}

	records, err := s.eventoRepo.ByGestion(ctx, gestionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list eventos: %w", err)
	}

	eventos := make([]*primary.Evento, len(records))
	for i, r := range records {
		eventos[i] = &primary.Evento{
			IDEvento:       r.IDEvento,
			IDGestion:      r.IDGestion,
			TsEvento:       r.TsEvento,
			ActorEmail:     r.ActorEmail,
			ActorRol:       r.ActorRol,
			TipoEvento:     r.TipoEvento,
			EstadoAnterior: r.EstadoAnterior,
			EstadoNuevo:    r.EstadoNuevo,
			Comentario:     r.Comentario,
			PayloadJSON:    r.PayloadJSON,
		}
	}
	return eventos, nil
}

// Resumen returns the per-estado counters shown on the panel dashboard.
func (s *GestionServiceImpl) Resumen(ctx context.Context) (*primary.ResumenGestiones, error) {
	records, err := s.gestionRepo.List(ctx, secondary.GestionFilters{})
	if err != nil {
		return nil, fmt.Errorf("failed to list gestiones: %w", err)
	}

	resumen := &primary.ResumenGestiones{
		PorEstado: make(map[string]int),
	}
	for _, r := range records {
		resumen.Total++
		if r.IsDeleted {
			resumen.Eliminadas++
			continue
		}
		resumen.PorEstado[r.Estado]++
	}
	return resumen, nil
}

// Helper methods

// requireActor extracts the acting usuario from the context and parses its
// role. Mutating operations refuse to run without an authenticated actor.
func (s *GestionServiceImpl) requireActor(ctx context.Context) (*ctxutil.Actor, usuario.Rol, error) {
	actor := ctxutil.ActorFromContext(ctx)
	if actor == nil {
		return nil, "", apperr.Authorizationf("se requiere una sesión activa")
	}
	rol, err := usuario.ParseRol(actor.Rol)
	if err != nil {
		return nil, "", apperr.Authorizationf("%v", err)
	}
	return actor, rol, nil
}

func (s *GestionServiceImpl) appendEvento(ctx context.Context, actor *ctxutil.Actor, evento *secondary.EventoRecord) error {
	evento.IDEvento = uuid.NewString()
	evento.TsEvento = s.now().Format(time.RFC3339)
	evento.ActorEmail = actor.Email
	evento.ActorRol = actor.Rol

	if err := s.eventoRepo.Append(ctx, evento); err != nil {
		return fmt.Errorf("failed to record evento: %w", err)
	}
	return nil
}

func validarObligatorios(req primary.CreateGestionRequest) error {
	var faltantes []string
	campos := []struct {
		valor  string
		nombre string
	}{
		{req.Departamento, "departamento"},
		{req.Localidad, "localidad"},
		{req.MinisterioAgenciaID, "ministerio_agencia_id"},
		{req.CategoriaGeneralID, "categoria_general_id"},
		{req.Detalle, "detalle"},
	}
	for _, c := range campos {
		if strings.TrimSpace(c.valor) == "" {
			faltantes = append(faltantes, c.nombre)
		}
	}
	if len(faltantes) > 0 {
		return apperr.Validationf("complete los campos obligatorios: %s", strings.Join(faltantes, ", "))
	}
	return nil
}

func recordToGestion(r *secondary.GestionRecord) *primary.Gestion {
	return &primary.Gestion{
		ID:                  r.ID,
		NroExpediente:       r.NroExpediente,
		Origen:              r.Origen,
		Estado:              r.Estado,
		FechaIngreso:        r.FechaIngreso,
		FechaEstado:         r.FechaEstado,
		FechaFinalizacion:   r.FechaFinalizacion,
		Urgencia:            r.Urgencia,
		MinisterioAgenciaID: r.MinisterioAgenciaID,
		CategoriaGeneralID:  r.CategoriaGeneralID,
		SubtipoDetalle:      r.SubtipoDetalle,
		Detalle:             r.Detalle,
		Observaciones:       r.Observaciones,
		Departamento:        r.Departamento,
		Localidad:           r.Localidad,
		Direccion:           r.Direccion,
		GeoResuelta:         r.GeoResuelta,
		Lat:                 r.Lat,
		Lon:                 r.Lon,
		CostoEstimado:       r.CostoEstimado,
		CostoMoneda:         r.CostoMoneda,
		CreatedAt:           r.CreatedAt,
		CreatedBy:           r.CreatedBy,
		UpdatedAt:           r.UpdatedAt,
		UpdatedBy:           r.UpdatedBy,
		IsDeleted:           r.IsDeleted,
	}
}

// Ensure GestionServiceImpl implements the interface
var _ primary.GestionService = (*GestionServiceImpl)(nil)
