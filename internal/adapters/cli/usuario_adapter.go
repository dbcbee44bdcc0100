package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/gestor/internal/ports/primary"
)

// UsuarioAdapter translates whitelist CLI operations to UsuarioService calls.
type UsuarioAdapter struct {
	service primary.UsuarioService
	out     io.Writer
}

// NewUsuarioAdapter creates a new UsuarioAdapter with the given service.
func NewUsuarioAdapter(service primary.UsuarioService, out io.Writer) *UsuarioAdapter {
	return &UsuarioAdapter{
		service: service,
		out:     out,
	}
}

// List lists every usuario.
func (a *UsuarioAdapter) List(ctx context.Context) ([]*primary.Usuario, error) {
	usuarios, err := a.service.ListUsuarios(ctx)
	if err != nil {
		return nil, err
	}

	if len(usuarios) == 0 {
		fmt.Fprintln(a.out, "No hay usuarios autorizados.")
		return usuarios, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "EMAIL\tNOMBRE\tROL\tESTADO")
	fmt.Fprintln(w, "-----\t------\t---\t------")

	for _, u := range usuarios {
		estado := "activo"
		if !u.Activo {
			estado = "inactivo"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", u.Email, u.Nombre, u.Rol, estado)
	}

	w.Flush()
	return usuarios, nil
}

// Add authorizes a new usuario.
func (a *UsuarioAdapter) Add(ctx context.Context, req primary.AddUsuarioRequest) (*primary.Usuario, error) {
	u, err := a.service.AddUsuario(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Usuario %s autorizado con rol %s\n", u.Email, u.Rol)
	return u, nil
}

// Toggle flips the activo flag of a usuario.
func (a *UsuarioAdapter) Toggle(ctx context.Context, email string) (*primary.Usuario, error) {
	u, err := a.service.ToggleActivo(ctx, email)
	if err != nil {
		return nil, err
	}

	if u.Activo {
		fmt.Fprintf(a.out, "✓ Usuario %s reactivado\n", u.Email)
	} else {
		fmt.Fprintf(a.out, "✓ Usuario %s desactivado\n", u.Email)
	}
	return u, nil
}
