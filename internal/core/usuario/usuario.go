// Package usuario contains the pure business logic for the user whitelist.
// This is part of the Functional Core - no I/O, only pure functions.
package usuario

import (
	"fmt"
	"strings"
)

// Rol represents the role assigned to a whitelisted usuario.
type Rol string

const (
	RolAdmin      Rol = "Admin"
	RolOperador   Rol = "Operador"
	RolSupervisor Rol = "Supervisor"
	RolConsulta   Rol = "Consulta"
)

// Roles returns every assignable role, in display order.
func Roles() []Rol {
	return []Rol{RolAdmin, RolOperador, RolSupervisor, RolConsulta}
}

// ParseRol validates a raw role string.
func ParseRol(s string) (Rol, error) {
	for _, r := range Roles() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("rol desconocido: %q", s)
}

// dominioPermitido is the single accepted email domain for the whitelist.
// Access runs through Google sign-in, so only Google accounts are admitted.
const dominioPermitido = "@gmail.com"

// EmailPermitido reports whether an email satisfies the accepted-domain policy.
func EmailPermitido(email string) bool {
	if !strings.HasSuffix(email, dominioPermitido) {
		return false
	}
	// Reject a bare "@gmail.com" with no local part.
	return strings.Index(email, "@") > 0
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// CanAdministrar evaluates whether a role may manage the whitelist.
// Rule: only Admin administers usuarios.
func CanAdministrar(rol Rol) GuardResult {
	if rol != RolAdmin {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("acceso denegado: se requiere rol Admin para administrar usuarios (rol actual: %s)", rol),
		}
	}
	return GuardResult{Allowed: true}
}
