package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/gestor/internal/ports/primary"
)

// mockGestionService implements primary.GestionService for testing
type mockGestionService struct {
	createGestionFn func(ctx context.Context, req primary.CreateGestionRequest) (*primary.CreateGestionResponse, error)
	getGestionFn    func(ctx context.Context, gestionID string) (*primary.Gestion, error)
	listGestionesFn func(ctx context.Context, filters primary.GestionFilters) ([]*primary.Gestion, error)
	changeEstadoFn  func(ctx context.Context, req primary.ChangeEstadoRequest) error
	getHistorialFn  func(ctx context.Context, gestionID string) ([]*primary.Evento, error)

	// Track calls for verification
	lastUpdateReq primary.UpdateGestionRequest
	lastDeleteID  string
}

func (m *mockGestionService) CreateGestion(ctx context.Context, req primary.CreateGestionRequest) (*primary.CreateGestionResponse, error) {
	if m.createGestionFn != nil {
		return m.createGestionFn(ctx, req)
	}
	return &primary.CreateGestionResponse{
		GestionID: "G-001",
		Gestion:   &primary.Gestion{ID: "G-001", Estado: "INGRESADO", Detalle: req.Detalle},
	}, nil
}

func (m *mockGestionService) GetGestion(ctx context.Context, gestionID string) (*primary.Gestion, error) {
	if m.getGestionFn != nil {
		return m.getGestionFn(ctx, gestionID)
	}
	return &primary.Gestion{
		ID:                  gestionID,
		NroExpediente:       "2024-EXP-0101",
		Estado:              "INGRESADO",
		FechaIngreso:        "2024-03-04",
		Urgencia:            "Alta",
		MinisterioAgenciaID: "MIN_INFRA",
		CategoriaGeneralID:  "OBRA_VIAL",
		Detalle:             "Bacheo Av. Colón",
		Departamento:        "Capital",
		Localidad:           "Córdoba",
		CostoMoneda:         "ARS",
	}, nil
}

func (m *mockGestionService) ListGestiones(ctx context.Context, filters primary.GestionFilters) ([]*primary.Gestion, error) {
	if m.listGestionesFn != nil {
		return m.listGestionesFn(ctx, filters)
	}
	return []*primary.Gestion{}, nil
}

func (m *mockGestionService) UpdateGestion(ctx context.Context, req primary.UpdateGestionRequest) error {
	m.lastUpdateReq = req
	return nil
}

func (m *mockGestionService) ChangeEstado(ctx context.Context, req primary.ChangeEstadoRequest) error {
	if m.changeEstadoFn != nil {
		return m.changeEstadoFn(ctx, req)
	}
	return nil
}

func (m *mockGestionService) DeleteGestion(ctx context.Context, gestionID string) error {
	m.lastDeleteID = gestionID
	return nil
}

func (m *mockGestionService) GetHistorial(ctx context.Context, gestionID string) ([]*primary.Evento, error) {
	if m.getHistorialFn != nil {
		return m.getHistorialFn(ctx, gestionID)
	}
	return []*primary.Evento{}, nil
}

func (m *mockGestionService) Resumen(ctx context.Context) (*primary.ResumenGestiones, error) {
	return &primary.ResumenGestiones{
		Total:      3,
		Eliminadas: 1,
		PorEstado:  map[string]int{"INGRESADO": 1, "FINALIZADA": 1},
	}, nil
}

// ============================================================================
// List Tests
// ============================================================================

func TestGestionAdapterList_Empty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewGestionAdapter(&mockGestionService{}, &buf)

	_, err := adapter.List(context.Background(), "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "No hay gestiones") {
		t.Errorf("expected empty-state hint, got: %s", buf.String())
	}
}

func TestGestionAdapterList_Table(t *testing.T) {
	service := &mockGestionService{
		listGestionesFn: func(ctx context.Context, filters primary.GestionFilters) ([]*primary.Gestion, error) {
			return []*primary.Gestion{
				{ID: "G-001", NroExpediente: "2024-EXP-0101", Estado: "INGRESADO", Urgencia: "Alta", Departamento: "Capital", Detalle: "Bacheo"},
				{ID: "G-002", Estado: "ARCHIVADO", Urgencia: "Baja", Departamento: "Colon", Detalle: "Red cloacal", IsDeleted: true},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewGestionAdapter(service, &buf)

	gestiones, err := adapter.List(context.Background(), "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(gestiones) != 2 {
		t.Fatalf("expected 2 gestiones, got %d", len(gestiones))
	}

	out := buf.String()
	if !strings.Contains(out, "G-001") || !strings.Contains(out, "INGRESADO") {
		t.Errorf("table missing rows: %s", out)
	}
	// Deleted rows are flagged instead of hidden.
	if !strings.Contains(out, "ELIMINADA") {
		t.Errorf("deleted gestión should be flagged: %s", out)
	}
}

func TestGestionAdapterList_PassesBusqueda(t *testing.T) {
	var captured primary.GestionFilters
	service := &mockGestionService{
		listGestionesFn: func(ctx context.Context, filters primary.GestionFilters) ([]*primary.Gestion, error) {
			captured = filters
			return nil, nil
		},
	}
	adapter := NewGestionAdapter(service, &bytes.Buffer{})

	_, _ = adapter.List(context.Background(), "cloacal")
	if captured.Busqueda != "cloacal" {
		t.Errorf("Busqueda = %q", captured.Busqueda)
	}
}

// ============================================================================
// Show / Create / ChangeEstado Tests
// ============================================================================

func TestGestionAdapterShow(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewGestionAdapter(&mockGestionService{}, &buf)

	g, err := adapter.Show(context.Background(), "G-001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if g.ID != "G-001" {
		t.Errorf("ID = %s", g.ID)
	}

	out := buf.String()
	for _, want := range []string{"Gestión: G-001", "2024-EXP-0101", "Bacheo Av. Colón", "Córdoba, Capital"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestGestionAdapterCreate(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewGestionAdapter(&mockGestionService{}, &buf)

	resp, err := adapter.Create(context.Background(), primary.CreateGestionRequest{Detalle: "Bacheo"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resp.GestionID != "G-001" {
		t.Errorf("GestionID = %s", resp.GestionID)
	}
	if !strings.Contains(buf.String(), "✓ Gestión G-001 creada") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestGestionAdapterCreate_ErrorPassthrough(t *testing.T) {
	service := &mockGestionService{
		createGestionFn: func(ctx context.Context, req primary.CreateGestionRequest) (*primary.CreateGestionResponse, error) {
			return nil, errors.New("complete los campos obligatorios")
		},
	}
	var buf bytes.Buffer
	adapter := NewGestionAdapter(service, &buf)

	_, err := adapter.Create(context.Background(), primary.CreateGestionRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be printed on failure, got: %s", buf.String())
	}
}

func TestGestionAdapterChangeEstado(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewGestionAdapter(&mockGestionService{}, &buf)

	err := adapter.ChangeEstado(context.Background(), primary.ChangeEstadoRequest{
		GestionID:   "G-001",
		NuevoEstado: "FINALIZADA",
		Comentario:  "entregada",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "G-001") || !strings.Contains(buf.String(), "FINALIZADA") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestGestionAdapterDelete(t *testing.T) {
	service := &mockGestionService{}
	var buf bytes.Buffer
	adapter := NewGestionAdapter(service, &buf)

	if err := adapter.Delete(context.Background(), "G-002"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if service.lastDeleteID != "G-002" {
		t.Errorf("lastDeleteID = %s", service.lastDeleteID)
	}
	if !strings.Contains(buf.String(), "✓ Gestión G-002 eliminada") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

// ============================================================================
// Historial / Resumen Tests
// ============================================================================

func TestGestionAdapterHistorial(t *testing.T) {
	service := &mockGestionService{
		getHistorialFn: func(ctx context.Context, gestionID string) ([]*primary.Evento, error) {
			return []*primary.Evento{
				{TsEvento: "2024-03-05T10:00:00Z", TipoEvento: "CAMBIO_ESTADO", ActorEmail: "admin@gmail.com", EstadoAnterior: "INGRESADO", EstadoNuevo: "ARCHIVADO", Comentario: "duplicado"},
				{TsEvento: "2024-03-04T09:00:00Z", TipoEvento: "CREACION", ActorEmail: "operador@gmail.com"},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewGestionAdapter(service, &buf)

	eventos, err := adapter.Historial(context.Background(), "G-001")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(eventos) != 2 {
		t.Fatalf("expected 2 eventos, got %d", len(eventos))
	}

	out := buf.String()
	if !strings.Contains(out, "INGRESADO → ARCHIVADO: duplicado") {
		t.Errorf("transition line missing: %s", out)
	}
	if !strings.Contains(out, "CREACION") {
		t.Errorf("creation row missing: %s", out)
	}
}

func TestGestionAdapterResumen(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewGestionAdapter(&mockGestionService{}, &buf)

	resumen, err := adapter.Resumen(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if resumen.Total != 3 {
		t.Errorf("Total = %d", resumen.Total)
	}
	if !strings.Contains(buf.String(), "Gestiones: 3 (1 eliminadas)") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
