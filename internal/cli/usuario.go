package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/gestor/internal/ports/primary"
	"github.com/example/gestor/internal/wire"
)

// UsuarioCmd returns the usuario command
func UsuarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usuario",
		Short: "Administrar el directorio de usuarios autorizados",
		Long:  `Alta, listado y activación de usuarios. Solo disponible para el rol Admin.`,
	}

	cmd.AddCommand(usuarioListCmd())
	cmd.AddCommand(usuarioAddCmd())
	cmd.AddCommand(usuarioToggleCmd())

	return cmd
}

func usuarioListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Listar usuarios autorizados",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := sessionContext()
			if err != nil {
				return err
			}
			_, err = wire.UsuarioAdapter().List(ctx)
			return err
		},
	}
}

func usuarioAddCmd() *cobra.Command {
	var nombre, rol string

	cmd := &cobra.Command{
		Use:   "agregar [email]",
		Short: "Autorizar un nuevo usuario",
		Long: `Autoriza un correo @gmail.com con el rol indicado.

Ejemplo:
  gestor usuario agregar maria.perez@gmail.com --rol Operador --nombre 'María Pérez'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := sessionContext()
			if err != nil {
				return err
			}
			_, err = wire.UsuarioAdapter().Add(ctx, primary.AddUsuarioRequest{
				Email:  args[0],
				Nombre: nombre,
				Rol:    rol,
			})
			return err
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "Nombre para mostrar")
	cmd.Flags().StringVar(&rol, "rol", "Consulta", "Rol: Admin, Operador, Supervisor o Consulta")

	return cmd
}

func usuarioToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle [email]",
		Short: "Activar o desactivar un usuario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := sessionContext()
			if err != nil {
				return err
			}
			_, err = wire.UsuarioAdapter().Toggle(ctx, args[0])
			return err
		},
	}
}
