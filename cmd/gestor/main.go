package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/gestor/internal/cli"
	"github.com/example/gestor/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "gestor",
		Short:   "Gestor - panel de gestiones de infraestructura",
		Version: version.String(),
		Long: `Gestor administra las gestiones de obra pública de una repartición:
carga, edición, transiciones de estado auditadas y directorio de usuarios.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.GestionCmd())
	rootCmd.AddCommand(cli.UsuarioCmd())
	rootCmd.AddCommand(cli.SesionCmd())
	rootCmd.AddCommand(cli.CatalogoCmd())
	rootCmd.AddCommand(cli.ServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
