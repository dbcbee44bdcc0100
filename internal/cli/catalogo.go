package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/gestor/internal/core/catalogo"
)

// CatalogoCmd returns the catalogo command
func CatalogoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalogo",
		Short: "Consultar los catálogos de referencia",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "ministerios",
		Short: "Listar ministerios y agencias",
		RunE: func(cmd *cobra.Command, args []string) error {
			printItems(catalogo.Ministerios())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "categorias",
		Short: "Listar categorías generales",
		RunE: func(cmd *cobra.Command, args []string) error {
			printItems(catalogo.Categorias())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "localidades [departamento]",
		Short: "Listar departamentos, o las localidades de uno",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, d := range catalogo.Departamentos() {
					fmt.Println(d)
				}
				return nil
			}

			localidades := catalogo.Localidades(args[0])
			if len(localidades) == 0 {
				fmt.Printf("El departamento %s no tiene localidades cargadas.\n", args[0])
				return nil
			}
			for _, l := range localidades {
				fmt.Println(l)
			}
			return nil
		},
	})

	return cmd
}

func printItems(items []catalogo.Item) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\n", item.ID, item.Nombre)
	}
	w.Flush()
}
