// Package httpapi exposes the services over a JSON HTTP API, the transport
// surface the web panel talks to. Authentication is delegated to the fronting
// identity proxy: requests arrive with the verified email in the
// X-Usuario-Email header and the middleware maps it to a whitelisted usuario.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/example/gestor/internal/ports/primary"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	gestiones primary.GestionService
	usuarios  primary.UsuarioService
	sesiones  primary.SesionService
	logger    *zap.Logger
}

// NewHandler creates a new Handler with the given services.
func NewHandler(gestiones primary.GestionService, usuarios primary.UsuarioService, sesiones primary.SesionService, logger *zap.Logger) *Handler {
	return &Handler{
		gestiones: gestiones,
		usuarios:  usuarios,
		sesiones:  sesiones,
		logger:    logger,
	}
}

// Router builds the mux router with all panel routes.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/salud", h.salud).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(h.actorMiddleware)
	api.Use(h.logMiddleware)

	api.HandleFunc("/gestiones", h.listGestiones).Methods("GET")
	api.HandleFunc("/gestiones", h.createGestion).Methods("POST")
	api.HandleFunc("/gestiones/{id}", h.getGestion).Methods("GET")
	api.HandleFunc("/gestiones/{id}", h.updateGestion).Methods("PUT")
	api.HandleFunc("/gestiones/{id}", h.deleteGestion).Methods("DELETE")
	api.HandleFunc("/gestiones/{id}/estado", h.changeEstado).Methods("PUT")
	api.HandleFunc("/gestiones/{id}/eventos", h.getHistorial).Methods("GET")
	api.HandleFunc("/resumen", h.resumen).Methods("GET")

	api.HandleFunc("/usuarios", h.listUsuarios).Methods("GET")
	api.HandleFunc("/usuarios", h.addUsuario).Methods("POST")
	api.HandleFunc("/usuarios/{email}/toggle", h.toggleUsuario).Methods("PUT")

	return r
}

func (h *Handler) salud(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"estado": "ok"})
}
