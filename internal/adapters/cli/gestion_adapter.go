// Package cli contains thin adapters that translate CLI operations to service
// calls and format the results for the terminal.
package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/gestor/internal/ports/primary"
)

// GestionAdapter is a thin adapter that translates CLI operations to
// GestionService calls. It depends only on the GestionService interface,
// enabling easy testing with mocks.
type GestionAdapter struct {
	service primary.GestionService
	out     io.Writer
}

// NewGestionAdapter creates a new GestionAdapter with the given service.
func NewGestionAdapter(service primary.GestionService, out io.Writer) *GestionAdapter {
	return &GestionAdapter{
		service: service,
		out:     out,
	}
}

// List lists gestiones with an optional search term.
func (a *GestionAdapter) List(ctx context.Context, busqueda string) ([]*primary.Gestion, error) {
	gestiones, err := a.service.ListGestiones(ctx, primary.GestionFilters{
		Busqueda: busqueda,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list gestiones: %w", err)
	}

	if len(gestiones) == 0 {
		fmt.Fprintln(a.out, "No hay gestiones para mostrar.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Cargue la primera gestión:")
		fmt.Fprintln(a.out, "  gestor gestion crear --detalle 'Bacheo Av. Colón' --departamento Capital --localidad Córdoba --ministerio MIN_INFRA --categoria OBRA_VIAL")
		return gestiones, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tEXPEDIENTE\tESTADO\tURGENCIA\tDEPARTAMENTO\tDETALLE")
	fmt.Fprintln(w, "--\t----------\t------\t--------\t------------\t-------")

	for _, g := range gestiones {
		detalle := g.Detalle
		if len(detalle) > 48 {
			detalle = detalle[:45] + "..."
		}
		estado := g.Estado
		if g.IsDeleted {
			estado = "ELIMINADA"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			g.ID,
			g.NroExpediente,
			estado,
			g.Urgencia,
			g.Departamento,
			detalle,
		)
	}

	w.Flush()
	return gestiones, nil
}

// Show displays details for a single gestión.
func (a *GestionAdapter) Show(ctx context.Context, gestionID string) (*primary.Gestion, error) {
	g, err := a.service.GetGestion(ctx, gestionID)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "\nGestión: %s\n", g.ID)
	fmt.Fprintf(a.out, "Expediente:   %s\n", g.NroExpediente)
	fmt.Fprintf(a.out, "Estado:       %s\n", estadoBadge(g.Estado))
	fmt.Fprintf(a.out, "Urgencia:     %s\n", urgenciaBadge(g.Urgencia))
	fmt.Fprintf(a.out, "Ingreso:      %s\n", g.FechaIngreso)
	if g.FechaFinalizacion != "" {
		fmt.Fprintf(a.out, "Finalización: %s\n", g.FechaFinalizacion)
	}
	fmt.Fprintf(a.out, "Ministerio:   %s\n", g.MinisterioAgenciaID)
	fmt.Fprintf(a.out, "Categoría:    %s\n", g.CategoriaGeneralID)
	if g.SubtipoDetalle != "" {
		fmt.Fprintf(a.out, "Subtipo:      %s\n", g.SubtipoDetalle)
	}
	fmt.Fprintf(a.out, "Detalle:      %s\n", g.Detalle)
	fmt.Fprintf(a.out, "Ubicación:    %s, %s\n", g.Localidad, g.Departamento)
	if g.Direccion != "" {
		fmt.Fprintf(a.out, "Dirección:    %s\n", g.Direccion)
	}
	if g.GeoResuelta {
		fmt.Fprintf(a.out, "Coordenadas:  %.3f, %.3f\n", g.Lat, g.Lon)
	}
	fmt.Fprintf(a.out, "Costo:        %.2f %s\n", g.CostoEstimado, g.CostoMoneda)
	if g.Observaciones != "" {
		fmt.Fprintf(a.out, "Observaciones:\n%s\n", g.Observaciones)
	}
	if g.IsDeleted {
		fmt.Fprintln(a.out, color.New(color.FgRed).Sprint("ELIMINADA"))
	}
	fmt.Fprintln(a.out)

	return g, nil
}

// Create creates a gestión and prints its assigned ID.
func (a *GestionAdapter) Create(ctx context.Context, req primary.CreateGestionRequest) (*primary.CreateGestionResponse, error) {
	resp, err := a.service.CreateGestion(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "✓ Gestión %s creada\n", resp.GestionID)
	if resp.Gestion.GeoResuelta {
		fmt.Fprintf(a.out, "  Coordenadas: %.3f, %.3f\n", resp.Gestion.Lat, resp.Gestion.Lon)
	}

	return resp, nil
}

// Update edits a gestión.
func (a *GestionAdapter) Update(ctx context.Context, req primary.UpdateGestionRequest) error {
	if err := a.service.UpdateGestion(ctx, req); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Gestión %s actualizada\n", req.GestionID)
	return nil
}

// ChangeEstado applies a status transition.
func (a *GestionAdapter) ChangeEstado(ctx context.Context, req primary.ChangeEstadoRequest) error {
	if err := a.service.ChangeEstado(ctx, req); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Gestión %s → %s\n", req.GestionID, estadoBadge(req.NuevoEstado))
	return nil
}

// Delete soft-deletes a gestión.
func (a *GestionAdapter) Delete(ctx context.Context, gestionID string) error {
	if err := a.service.DeleteGestion(ctx, gestionID); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "✓ Gestión %s eliminada\n", gestionID)
	return nil
}

// Historial prints the audit eventos of a gestión, newest first.
func (a *GestionAdapter) Historial(ctx context.Context, gestionID string) ([]*primary.Evento, error) {
	eventos, err := a.service.GetHistorial(ctx, gestionID)
	if err != nil {
		return nil, err
	}

	if len(eventos) == 0 {
		fmt.Fprintf(a.out, "La gestión %s no tiene eventos.\n", gestionID)
		return eventos, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "FECHA\tTIPO\tACTOR\tDETALLE")
	fmt.Fprintln(w, "-----\t----\t-----\t-------")

	for _, e := range eventos {
		detalle := e.Comentario
		if e.EstadoAnterior != "" || e.EstadoNuevo != "" {
			detalle = fmt.Sprintf("%s → %s", e.EstadoAnterior, e.EstadoNuevo)
			if e.Comentario != "" {
				detalle += ": " + e.Comentario
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.TsEvento, e.TipoEvento, e.ActorEmail, detalle)
	}

	w.Flush()
	return eventos, nil
}

// Resumen prints the panel counters.
func (a *GestionAdapter) Resumen(ctx context.Context) (*primary.ResumenGestiones, error) {
	resumen, err := a.service.Resumen(ctx)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "Gestiones: %d (%d eliminadas)\n", resumen.Total, resumen.Eliminadas)

	estados := make([]string, 0, len(resumen.PorEstado))
	for estado := range resumen.PorEstado {
		estados = append(estados, estado)
	}
	sort.Strings(estados)
	for _, estado := range estados {
		fmt.Fprintf(a.out, "  %-22s %d\n", estado, resumen.PorEstado[estado])
	}

	return resumen, nil
}

func estadoBadge(estado string) string {
	switch estado {
	case "INGRESADO":
		return color.New(color.FgCyan).Sprint(estado)
	case "DERIVADO A SUAC":
		return color.New(color.FgBlue).Sprint(estado)
	case "LISTA PARA INAUGURAR":
		return color.New(color.FgYellow).Sprint(estado)
	case "FINALIZADA":
		return color.New(color.FgGreen).Sprint(estado)
	case "NO REMITE SUAC":
		return color.New(color.FgMagenta).Sprint(estado)
	case "ARCHIVADO":
		return color.New(color.FgHiBlack).Sprint(estado)
	}
	return estado
}

func urgenciaBadge(urgencia string) string {
	switch urgencia {
	case "Alta":
		return color.New(color.FgRed).Sprint(urgencia)
	case "Media":
		return color.New(color.FgYellow).Sprint(urgencia)
	case "Baja":
		return color.New(color.FgGreen).Sprint(urgencia)
	}
	return urgencia
}
