package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/gestor/internal/ports/primary"
	"github.com/example/gestor/internal/wire"
)

// GestionCmd returns the gestion command
func GestionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gestion",
		Short: "Administrar gestiones de infraestructura",
		Long:  `Cargar, editar y seguir el ciclo de vida de las gestiones de obra.`,
	}

	cmd.AddCommand(gestionListCmd())
	cmd.AddCommand(gestionShowCmd())
	cmd.AddCommand(gestionCreateCmd())
	cmd.AddCommand(gestionUpdateCmd())
	cmd.AddCommand(gestionEstadoCmd())
	cmd.AddCommand(gestionDeleteCmd())
	cmd.AddCommand(gestionHistorialCmd())
	cmd.AddCommand(gestionResumenCmd())

	return cmd
}

func gestionListCmd() *cobra.Command {
	var busqueda string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar gestiones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := sessionContext()
			if err != nil {
				return err
			}
			_, err = wire.GestionAdapter().List(ctx, busqueda)
			return err
		},
	}

	cmd.Flags().StringVarP(&busqueda, "busqueda", "b", "", "Filtrar por texto en detalle, expediente o departamento")

	return cmd
}

func gestionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Mostrar una gestión",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := sessionContext()
			if err != nil {
				return err
			}
			_, err = wire.GestionAdapter().Show(ctx, args[0])
			return err
		},
	}
}

func gestionCreateCmd() *cobra.Command {
	var req primary.CreateGestionRequest

	cmd := &cobra.Command{
		Use:   "crear",
		Short: "Cargar una nueva gestión",
		Long: `Carga una gestión nueva en estado INGRESADO.

Departamento, localidad, ministerio, categoría y detalle son obligatorios.
Si la localidad figura en la tabla de referencia, las coordenadas se
completan solas.

Ejemplo:
  gestor gestion crear --detalle 'Bacheo Av. Colón' --departamento Capital \
    --localidad Córdoba --ministerio MIN_INFRA --categoria OBRA_VIAL --urgencia Alta`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := sessionContext()
			if err != nil {
				return err
			}
			_, err = wire.GestionAdapter().Create(ctx, req)
			return err
		},
	}

	cmd.Flags().StringVar(&req.NroExpediente, "expediente", "", "Número de expediente")
	cmd.Flags().StringVar(&req.Origen, "origen", "", "Origen del pedido")
	cmd.Flags().StringVar(&req.Urgencia, "urgencia", "", "Urgencia: Alta, Media o Baja (default Media)")
	cmd.Flags().StringVar(&req.MinisterioAgenciaID, "ministerio", "", "Ministerio o agencia responsable")
	cmd.Flags().StringVar(&req.CategoriaGeneralID, "categoria", "", "Categoría general")
	cmd.Flags().StringVar(&req.SubtipoDetalle, "subtipo", "", "Subtipo de obra")
	cmd.Flags().StringVar(&req.Detalle, "detalle", "", "Detalle de la gestión")
	cmd.Flags().StringVar(&req.Observaciones, "observaciones", "", "Observaciones iniciales")
	cmd.Flags().StringVar(&req.Departamento, "departamento", "", "Departamento")
	cmd.Flags().StringVar(&req.Localidad, "localidad", "", "Localidad")
	cmd.Flags().StringVar(&req.Direccion, "direccion", "", "Dirección")
	cmd.Flags().Float64Var(&req.CostoEstimado, "costo", 0, "Costo estimado")
	cmd.Flags().StringVar(&req.CostoMoneda, "moneda", "", "Moneda del costo (default ARS)")

	return cmd
}

func gestionUpdateCmd() *cobra.Command {
	var req primary.UpdateGestionRequest
	var costo float64

	cmd := &cobra.Command{
		Use:   "editar [id]",
		Short: "Editar una gestión",
		Long:  `Edita los campos de una gestión. Solo los flags provistos se modifican.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := sessionContext()
			if err != nil {
				return err
			}
			req.GestionID = args[0]
			if cmd.Flags().Changed("costo") {
				req.CostoEstimado = &costo
			}
			return wire.GestionAdapter().Update(ctx, req)
		},
	}

	cmd.Flags().StringVar(&req.NroExpediente, "expediente", "", "Número de expediente")
	cmd.Flags().StringVar(&req.Origen, "origen", "", "Origen del pedido")
	cmd.Flags().StringVar(&req.Urgencia, "urgencia", "", "Urgencia: Alta, Media o Baja")
	cmd.Flags().StringVar(&req.MinisterioAgenciaID, "ministerio", "", "Ministerio o agencia responsable")
	cmd.Flags().StringVar(&req.CategoriaGeneralID, "categoria", "", "Categoría general")
	cmd.Flags().StringVar(&req.SubtipoDetalle, "subtipo", "", "Subtipo de obra")
	cmd.Flags().StringVar(&req.Detalle, "detalle", "", "Detalle de la gestión")
	cmd.Flags().StringVar(&req.Departamento, "departamento", "", "Departamento")
	cmd.Flags().StringVar(&req.Localidad, "localidad", "", "Localidad")
	cmd.Flags().StringVar(&req.Direccion, "direccion", "", "Dirección")
	cmd.Flags().Float64Var(&costo, "costo", 0, "Costo estimado")

	return cmd
}

func gestionEstadoCmd() *cobra.Command {
	var comentario string

	cmd := &cobra.Command{
		Use:   "estado [id] [nuevo-estado]",
		Short: "Cambiar el estado de una gestión",
		Long: `Aplica una transición de estado según el rol de la sesión activa.

Los estados ARCHIVADO y NO REMITE SUAC exigen un comentario.

Ejemplo:
  gestor gestion estado G-001 'DERIVADO A SUAC' --comentario 'expediente remitido'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := sessionContext()
			if err != nil {
				return err
			}
			return wire.GestionAdapter().ChangeEstado(ctx, primary.ChangeEstadoRequest{
				GestionID:   args[0],
				NuevoEstado: args[1],
				Comentario:  comentario,
			})
		},
	}

	cmd.Flags().StringVarP(&comentario, "comentario", "c", "", "Comentario del cambio")

	return cmd
}

func gestionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eliminar [id]",
		Short: "Eliminar una gestión (baja lógica)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := sessionContext()
			if err != nil {
				return err
			}
			return wire.GestionAdapter().Delete(ctx, args[0])
		},
	}
}

func gestionHistorialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "historial [id]",
		Short: "Ver el historial de eventos de una gestión",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := sessionContext()
			if err != nil {
				return err
			}
			_, err = wire.GestionAdapter().Historial(ctx, args[0])
			return err
		},
	}
}

func gestionResumenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resumen",
		Short: "Contadores por estado",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := sessionContext()
			if err != nil {
				return err
			}
			_, err = wire.GestionAdapter().Resumen(ctx)
			return err
		},
	}
}
