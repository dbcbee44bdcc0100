package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/gestor/internal/apperr"
	"github.com/example/gestor/internal/ports/primary"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps the service error taxonomy to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case apperr.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case apperr.IsAuthorization(err):
		writeError(w, http.StatusForbidden, err.Error())
	case apperr.IsNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// ============================================================================
// Gestiones
// ============================================================================

type createGestionBody struct {
	NroExpediente       string  `json:"nro_expediente"`
	Origen              string  `json:"origen"`
	Urgencia            string  `json:"urgencia"`
	MinisterioAgenciaID string  `json:"ministerio_agencia_id"`
	CategoriaGeneralID  string  `json:"categoria_general_id"`
	SubtipoDetalle      string  `json:"subtipo_detalle"`
	Detalle             string  `json:"detalle"`
	Observaciones       string  `json:"observaciones"`
	Departamento        string  `json:"departamento"`
	Localidad           string  `json:"localidad"`
	Direccion           string  `json:"direccion"`
	CostoEstimado       float64 `json:"costo_estimado"`
	CostoMoneda         string  `json:"costo_moneda"`
}

type gestionBody struct {
	ID                  string  `json:"id"`
	NroExpediente       string  `json:"nro_expediente,omitempty"`
	Origen              string  `json:"origen,omitempty"`
	Estado              string  `json:"estado"`
	FechaIngreso        string  `json:"fecha_ingreso"`
	FechaEstado         string  `json:"fecha_estado"`
	FechaFinalizacion   string  `json:"fecha_finalizacion,omitempty"`
	Urgencia            string  `json:"urgencia"`
	MinisterioAgenciaID string  `json:"ministerio_agencia_id"`
	CategoriaGeneralID  string  `json:"categoria_general_id"`
	SubtipoDetalle      string  `json:"subtipo_detalle,omitempty"`
	Detalle             string  `json:"detalle"`
	Observaciones       string  `json:"observaciones,omitempty"`
	Departamento        string  `json:"departamento"`
	Localidad           string  `json:"localidad"`
	Direccion           string  `json:"direccion,omitempty"`
	GeoResuelta         bool    `json:"geo_resuelta"`
	Lat                 float64 `json:"lat,omitempty"`
	Lon                 float64 `json:"lon,omitempty"`
	CostoEstimado       float64 `json:"costo_estimado"`
	CostoMoneda         string  `json:"costo_moneda"`
	CreatedAt           string  `json:"created_at"`
	CreatedBy           string  `json:"created_by"`
	UpdatedAt           string  `json:"updated_at"`
	UpdatedBy           string  `json:"updated_by"`
	IsDeleted           bool    `json:"is_deleted"`
}

func toGestionBody(g *primary.Gestion) gestionBody {
	return gestionBody{
		ID:                  g.ID,
		NroExpediente:       g.NroExpediente,
		Origen:              g.Origen,
		Estado:              g.Estado,
		FechaIngreso:        g.FechaIngreso,
		FechaEstado:         g.FechaEstado,
		FechaFinalizacion:   g.FechaFinalizacion,
		Urgencia:            g.Urgencia,
		MinisterioAgenciaID: g.MinisterioAgenciaID,
		CategoriaGeneralID:  g.CategoriaGeneralID,
		SubtipoDetalle:      g.SubtipoDetalle,
		Detalle:             g.Detalle,
		Observaciones:       g.Observaciones,
		Departamento:        g.Departamento,
		Localidad:           g.Localidad,
		Direccion:           g.Direccion,
		GeoResuelta:         g.GeoResuelta,
		Lat:                 g.Lat,
		Lon:                 g.Lon,
		CostoEstimado:       g.CostoEstimado,
		CostoMoneda:         g.CostoMoneda,
		CreatedAt:           g.CreatedAt,
		CreatedBy:           g.CreatedBy,
		UpdatedAt:           g.UpdatedAt,
		UpdatedBy:           g.UpdatedBy,
		IsDeleted:           g.IsDeleted,
	}
}

func (h *Handler) createGestion(w http.ResponseWriter, r *http.Request) {
	var body createGestionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	resp, err := h.gestiones.CreateGestion(r.Context(), primary.CreateGestionRequest{
		NroExpediente:       body.NroExpediente,
		Origen:              body.Origen,
		Urgencia:            body.Urgencia,
		MinisterioAgenciaID: body.MinisterioAgenciaID,
		CategoriaGeneralID:  body.CategoriaGeneralID,
		SubtipoDetalle:      body.SubtipoDetalle,
		Detalle:             body.Detalle,
		Observaciones:       body.Observaciones,
		Departamento:        body.Departamento,
		Localidad:           body.Localidad,
		Direccion:           body.Direccion,
		CostoEstimado:       body.CostoEstimado,
		CostoMoneda:         body.CostoMoneda,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toGestionBody(resp.Gestion))
}

func (h *Handler) getGestion(w http.ResponseWriter, r *http.Request) {
	g, err := h.gestiones.GetGestion(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGestionBody(g))
}

func (h *Handler) listGestiones(w http.ResponseWriter, r *http.Request) {
	gestiones, err := h.gestiones.ListGestiones(r.Context(), primary.GestionFilters{
		Busqueda: r.URL.Query().Get("busqueda"),
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	bodies := make([]gestionBody, len(gestiones))
	for i, g := range gestiones {
		bodies[i] = toGestionBody(g)
	}
	writeJSON(w, http.StatusOK, bodies)
}

type updateGestionBody struct {
	NroExpediente       string   `json:"nro_expediente"`
	Origen              string   `json:"origen"`
	Urgencia            string   `json:"urgencia"`
	MinisterioAgenciaID string   `json:"ministerio_agencia_id"`
	CategoriaGeneralID  string   `json:"categoria_general_id"`
	SubtipoDetalle      string   `json:"subtipo_detalle"`
	Detalle             string   `json:"detalle"`
	Departamento        string   `json:"departamento"`
	Localidad           string   `json:"localidad"`
	Direccion           string   `json:"direccion"`
	CostoEstimado       *float64 `json:"costo_estimado"`
}

func (h *Handler) updateGestion(w http.ResponseWriter, r *http.Request) {
	var body updateGestionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	err := h.gestiones.UpdateGestion(r.Context(), primary.UpdateGestionRequest{
		GestionID:           mux.Vars(r)["id"],
		NroExpediente:       body.NroExpediente,
		Origen:              body.Origen,
		Urgencia:            body.Urgencia,
		MinisterioAgenciaID: body.MinisterioAgenciaID,
		CategoriaGeneralID:  body.CategoriaGeneralID,
		SubtipoDetalle:      body.SubtipoDetalle,
		Detalle:             body.Detalle,
		Departamento:        body.Departamento,
		Localidad:           body.Localidad,
		Direccion:           body.Direccion,
		CostoEstimado:       body.CostoEstimado,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type changeEstadoBody struct {
	Estado     string `json:"estado"`
	Comentario string `json:"comentario"`
}

func (h *Handler) changeEstado(w http.ResponseWriter, r *http.Request) {
	var body changeEstadoBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	err := h.gestiones.ChangeEstado(r.Context(), primary.ChangeEstadoRequest{
		GestionID:   mux.Vars(r)["id"],
		NuevoEstado: body.Estado,
		Comentario:  body.Comentario,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteGestion(w http.ResponseWriter, r *http.Request) {
	if err := h.gestiones.DeleteGestion(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type eventoBody struct {
	IDEvento       string `json:"id_evento"`
	IDGestion      string `json:"id_gestion"`
	TsEvento       string `json:"ts_evento"`
	ActorEmail     string `json:"actor_email"`
	ActorRol       string `json:"actor_rol"`
	TipoEvento     string `json:"tipo_evento"`
	EstadoAnterior string `json:"estado_anterior,omitempty"`
	EstadoNuevo    string `json:"estado_nuevo,omitempty"`
	Comentario     string `json:"comentario,omitempty"`
	PayloadJSON    string `json:"payload_json,omitempty"`
}

func (h *Handler) getHistorial(w http.ResponseWriter, r *http.Request) {
	eventos, err := h.gestiones.GetHistorial(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	bodies := make([]eventoBody, len(eventos))
	for i, e := range eventos {
		bodies[i] = eventoBody{
			IDEvento:       e.IDEvento,
			IDGestion:      e.IDGestion,
			TsEvento:       e.TsEvento,
			ActorEmail:     e.ActorEmail,
			ActorRol:       e.ActorRol,
			TipoEvento:     e.TipoEvento,
			EstadoAnterior: e.EstadoAnterior,
			EstadoNuevo:    e.EstadoNuevo,
			Comentario:     e.Comentario,
			PayloadJSON:    e.PayloadJSON,
		}
	}
	writeJSON(w, http.StatusOK, bodies)
}

func (h *Handler) resumen(w http.ResponseWriter, r *http.Request) {
	resumen, err := h.gestiones.Resumen(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"total":      resumen.Total,
		"eliminadas": resumen.Eliminadas,
		"por_estado": resumen.PorEstado,
	})
}

// ============================================================================
// Usuarios
// ============================================================================

type usuarioBody struct {
	Email  string `json:"email"`
	Nombre string `json:"nombre,omitempty"`
	Rol    string `json:"rol"`
	Activo bool   `json:"activo"`
}

func toUsuarioBody(u *primary.Usuario) usuarioBody {
	return usuarioBody{Email: u.Email, Nombre: u.Nombre, Rol: u.Rol, Activo: u.Activo}
}

func (h *Handler) listUsuarios(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.usuarios.ListUsuarios(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	bodies := make([]usuarioBody, len(usuarios))
	for i, u := range usuarios {
		bodies[i] = toUsuarioBody(u)
	}
	writeJSON(w, http.StatusOK, bodies)
}

type addUsuarioBody struct {
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
}

func (h *Handler) addUsuario(w http.ResponseWriter, r *http.Request) {
	var body addUsuarioBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "cuerpo JSON inválido")
		return
	}

	u, err := h.usuarios.AddUsuario(r.Context(), primary.AddUsuarioRequest{
		Email:  body.Email,
		Nombre: body.Nombre,
		Rol:    body.Rol,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUsuarioBody(u))
}

func (h *Handler) toggleUsuario(w http.ResponseWriter, r *http.Request) {
	u, err := h.usuarios.ToggleActivo(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUsuarioBody(u))
}
