// Package gestion contains the pure business logic for gestión lifecycle
// operations. This is part of the Functional Core - no I/O, only pure functions.
package gestion

import (
	"fmt"
	"time"
)

// Estado represents the lifecycle status of a gestión.
// The values are the wire strings used by the production warehouse.
type Estado string

const (
	EstadoIngresado      Estado = "INGRESADO"
	EstadoDerivado       Estado = "DERIVADO A SUAC"
	EstadoListaInaugurar Estado = "LISTA PARA INAUGURAR"
	EstadoFinalizada     Estado = "FINALIZADA"
	EstadoNoRemite       Estado = "NO REMITE SUAC"
	EstadoArchivado      Estado = "ARCHIVADO"
)

// Estados returns every lifecycle status, in display order.
func Estados() []Estado {
	return []Estado{
		EstadoIngresado,
		EstadoDerivado,
		EstadoListaInaugurar,
		EstadoFinalizada,
		EstadoNoRemite,
		EstadoArchivado,
	}
}

// ParseEstado validates a raw status string.
func ParseEstado(s string) (Estado, error) {
	for _, e := range Estados() {
		if string(e) == s {
			return e, nil
		}
	}
	return "", fmt.Errorf("estado desconocido: %q", s)
}

// InitialEstado returns the status assigned to a newly created gestión.
func InitialEstado() Estado {
	return EstadoIngresado
}

// Urgencia represents the priority classification of a gestión.
type Urgencia string

const (
	UrgenciaAlta  Urgencia = "Alta"
	UrgenciaMedia Urgencia = "Media"
	UrgenciaBaja  Urgencia = "Baja"
)

// Urgencias returns every priority classification, highest first.
func Urgencias() []Urgencia {
	return []Urgencia{UrgenciaAlta, UrgenciaMedia, UrgenciaBaja}
}

// ParseUrgencia validates a raw urgencia string.
func ParseUrgencia(s string) (Urgencia, error) {
	for _, u := range Urgencias() {
		if string(u) == s {
			return u, nil
		}
	}
	return "", fmt.Errorf("urgencia desconocida: %q", s)
}

// DefaultUrgencia returns the priority assigned when none is given.
func DefaultUrgencia() Urgencia {
	return UrgenciaMedia
}

// DefaultMoneda is the currency assumed for costo_estimado when none is given.
const DefaultMoneda = "ARS"

// RequiereComentario reports whether a transition into the given status
// demands a non-empty justification comment. This rule is independent of the
// actor's role.
func RequiereComentario(hacia Estado) bool {
	return hacia == EstadoArchivado || hacia == EstadoNoRemite
}

// CambioEstadoResult contains the result of a status transition.
// This is a value object that captures the new status and its side effects
// (fecha_estado, the observaciones audit line, and fecha_finalizacion when the
// gestión reaches FINALIZADA).
type CambioEstadoResult struct {
	NuevoEstado       Estado
	FechaEstado       time.Time
	LineaObservacion  string
	FechaFinalizacion *time.Time // Set when transitioning into FINALIZADA
}

// ApplyCambioEstado applies an authorized status transition and returns the
// resulting field changes. The caller passes the current time to enable
// testing; authorization and the mandatory-comment rule are checked before
// calling this (see CanTransition and RequiereComentario).
func ApplyCambioEstado(hacia Estado, comentario string, now time.Time) CambioEstadoResult {
	result := CambioEstadoResult{
		NuevoEstado:      hacia,
		FechaEstado:      now,
		LineaObservacion: fmt.Sprintf("[%s] Cambio a %s: %s", now.Format("02/01/2006"), hacia, comentario),
	}

	if hacia == EstadoFinalizada {
		result.FechaFinalizacion = &now
	}

	return result
}

// AppendObservacion appends an audit line to the append-only observaciones
// log. The existing text is never rewritten.
func AppendObservacion(observaciones, linea string) string {
	if observaciones == "" {
		return linea
	}
	return observaciones + "\n" + linea
}
