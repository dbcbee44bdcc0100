package httpapi

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/example/gestor/internal/ctxutil"
)

// actorHeader carries the email already verified by the identity proxy.
const actorHeader = "X-Usuario-Email"

// actorMiddleware resolves the header email to a whitelisted usuario and puts
// the actor in the request context. Unknown or inactive emails get 403 before
// any handler runs.
func (h *Handler) actorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get(actorHeader)
		if email == "" {
			writeError(w, http.StatusUnauthorized, "falta el header "+actorHeader)
			return
		}

		u, err := h.sesiones.Resolve(r.Context(), email)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		ctx := ctxutil.WithActor(r.Context(), &ctxutil.Actor{Email: u.Email, Rol: u.Rol})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (h *Handler) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		}
		if actor := ctxutil.ActorFromContext(r.Context()); actor != nil {
			fields = append(fields, zap.String("actor", actor.Email))
		}
		h.logger.Info("request", fields...)
	})
}
