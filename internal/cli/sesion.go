package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/gestor/internal/wire"
)

// SesionCmd returns the sesion command
func SesionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sesion",
		Short: "Iniciar y cerrar sesión",
	}

	cmd.AddCommand(sesionLoginCmd())
	cmd.AddCommand(sesionLogoutCmd())
	cmd.AddCommand(sesionWhoAmICmd())

	return cmd
}

func sesionLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login [email]",
		Short: "Iniciar sesión con un correo autorizado",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.SesionAdapter().Login(context.Background(), args[0])
			return err
		},
	}
}

func sesionLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar la sesión actual",
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.SesionAdapter().Logout(context.Background())
		},
	}
}

func sesionWhoAmICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Mostrar la sesión actual",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := wire.SesionAdapter().WhoAmI(context.Background())
			return err
		},
	}
}
