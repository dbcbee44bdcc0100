package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/gestor/internal/ports/primary"
)

// SesionAdapter translates login/logout CLI operations to SesionService calls.
type SesionAdapter struct {
	service primary.SesionService
	out     io.Writer
}

// NewSesionAdapter creates a new SesionAdapter with the given service.
func NewSesionAdapter(service primary.SesionService, out io.Writer) *SesionAdapter {
	return &SesionAdapter{
		service: service,
		out:     out,
	}
}

// Login authenticates the email against the whitelist.
func (a *SesionAdapter) Login(ctx context.Context, email string) (*primary.Usuario, error) {
	u, err := a.service.Login(ctx, email)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Sesión iniciada como %s (%s)\n", u.Email, u.Rol)
	return u, nil
}

// Logout closes the current session.
func (a *SesionAdapter) Logout(ctx context.Context) error {
	if err := a.service.Logout(ctx); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "✓ Sesión cerrada")
	return nil
}

// WhoAmI prints the current session, if any.
func (a *SesionAdapter) WhoAmI(ctx context.Context) (*primary.Usuario, error) {
	u, err := a.service.Current(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		fmt.Fprintln(a.out, "No hay sesión activa. Use: gestor sesion login <email>")
		return nil, nil
	}

	fmt.Fprintf(a.out, "%s (%s, %s)\n", u.Email, u.Nombre, u.Rol)
	return u, nil
}
