package primary

import "context"

// UsuarioService defines the primary port for whitelist management.
// Every operation requires an Admin actor in the context.
type UsuarioService interface {
	// AddUsuario authorizes a new usuario (activo=true).
	AddUsuario(ctx context.Context, req AddUsuarioRequest) (*Usuario, error)

	// ListUsuarios lists every usuario, active or not.
	ListUsuarios(ctx context.Context) ([]*Usuario, error)

	// ToggleActivo flips the activo flag of a usuario (revoke/reactivate).
	ToggleActivo(ctx context.Context, email string) (*Usuario, error)
}

// AddUsuarioRequest contains parameters for authorizing a usuario.
type AddUsuarioRequest struct {
	Email  string
	Nombre string
	Rol    string
}

// Usuario represents a whitelisted usuario at the port boundary.
type Usuario struct {
	Email  string
	Nombre string
	Rol    string
	Activo bool
}
