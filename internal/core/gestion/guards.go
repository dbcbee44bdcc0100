package gestion

import (
	"fmt"

	"github.com/example/gestor/internal/core/usuario"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// operadorDesdeIngresado is the only set of destinations an Operador may
// reach, and only from INGRESADO.
var operadorDesdeIngresado = map[Estado]bool{
	EstadoDerivado:       true,
	EstadoNoRemite:       true,
	EstadoListaInaugurar: true,
}

// CanTransition evaluates whether a role may move a gestión between statuses.
// Rule table:
//   - Admin y Supervisor: any → any.
//   - Operador: INGRESADO → {DERIVADO A SUAC, NO REMITE SUAC, LISTA PARA
//     INAUGURAR} only; every other source is forbidden.
//   - Consulta: read-only, no transitions.
func CanTransition(rol usuario.Rol, desde, hacia Estado) GuardResult {
	switch rol {
	case usuario.RolAdmin, usuario.RolSupervisor:
		return GuardResult{Allowed: true}
	case usuario.RolOperador:
		if desde == EstadoIngresado && operadorDesdeIngresado[hacia] {
			return GuardResult{Allowed: true}
		}
	}
	return GuardResult{
		Allowed: false,
		Reason:  fmt.Sprintf("el rol %s no tiene permisos para transicionar de %s a %s", rol, desde, hacia),
	}
}

// CanCrear evaluates whether a role may create gestiones.
// Rule: Consulta is read-only.
func CanCrear(rol usuario.Rol) GuardResult {
	if rol == usuario.RolConsulta {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("el rol %s es de solo consulta y no puede crear gestiones", rol),
		}
	}
	return GuardResult{Allowed: true}
}

// CanEditar evaluates whether a role may edit gestión fields.
// Rule: Consulta is read-only.
func CanEditar(rol usuario.Rol) GuardResult {
	if rol == usuario.RolConsulta {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("el rol %s es de solo consulta y no puede editar gestiones", rol),
		}
	}
	return GuardResult{Allowed: true}
}

// CanCambiarUrgencia evaluates whether a role may change the urgencia of a
// gestión. Rule: an Operador cannot reprioritize an existing gestión; the
// urgencia is set freely on creation.
func CanCambiarUrgencia(rol usuario.Rol, existente bool) GuardResult {
	if rol == usuario.RolOperador && existente {
		return GuardResult{
			Allowed: false,
			Reason:  "el rol Operador no puede cambiar la urgencia de una gestión existente",
		}
	}
	return GuardResult{Allowed: true}
}

// CanEliminar evaluates whether a role may soft-delete a gestión.
// Rule: only Admin and Supervisor.
func CanEliminar(rol usuario.Rol) GuardResult {
	if rol == usuario.RolAdmin || rol == usuario.RolSupervisor {
		return GuardResult{Allowed: true}
	}
	return GuardResult{
		Allowed: false,
		Reason:  fmt.Sprintf("el rol %s no tiene permisos para eliminar gestiones", rol),
	}
}
