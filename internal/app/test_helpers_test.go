package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/example/gestor/internal/apperr"
	"github.com/example/gestor/internal/ctxutil"
	"github.com/example/gestor/internal/ports/secondary"
)

// Ensure the mocks implement the secondary ports
var (
	_ secondary.GestionRepository = (*mockGestionRepository)(nil)
	_ secondary.EventoRepository  = (*mockEventoRepository)(nil)
	_ secondary.UsuarioRepository = (*mockUsuarioRepository)(nil)
	_ secondary.SesionStore       = (*mockSesionStore)(nil)
)

// fixedNow is the deterministic clock used by service tests.
var fixedNow = time.Date(2024, 5, 20, 15, 30, 0, 0, time.UTC)

// mockGestionRepository implements secondary.GestionRepository for testing.
type mockGestionRepository struct {
	gestiones []*secondary.GestionRecord
	createErr error
	listErr   error
	updateErr error
	nextID    int
}

func newMockGestionRepository() *mockGestionRepository {
	return &mockGestionRepository{nextID: 1}
}

func (m *mockGestionRepository) Create(ctx context.Context, g *secondary.GestionRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	clone := *g
	m.gestiones = append(m.gestiones, &clone)
	return nil
}

func (m *mockGestionRepository) GetByID(ctx context.Context, id string) (*secondary.GestionRecord, error) {
	for _, g := range m.gestiones {
		if g.ID == id {
			clone := *g
			return &clone, nil
		}
	}
	return nil, apperr.NotFoundf("gestión %s no encontrada", id)
}

func (m *mockGestionRepository) List(ctx context.Context, filters secondary.GestionFilters) ([]*secondary.GestionRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.GestionRecord
	busqueda := strings.ToLower(filters.Busqueda)
	for _, g := range m.gestiones {
		if busqueda != "" &&
			!strings.Contains(strings.ToLower(g.Detalle), busqueda) &&
			!strings.Contains(strings.ToLower(g.NroExpediente), busqueda) &&
			!strings.Contains(strings.ToLower(g.Departamento), busqueda) {
			continue
		}
		clone := *g
		result = append(result, &clone)
	}
	return result, nil
}

func (m *mockGestionRepository) Update(ctx context.Context, g *secondary.GestionRecord) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	for i, existing := range m.gestiones {
		if existing.ID == g.ID {
			clone := *g
			m.gestiones[i] = &clone
			return nil
		}
	}
	return apperr.NotFoundf("gestión %s no encontrada", g.ID)
}

func (m *mockGestionRepository) SoftDelete(ctx context.Context, id string) error {
	for _, g := range m.gestiones {
		if g.ID == id {
			g.IsDeleted = true
			return nil
		}
	}
	return apperr.NotFoundf("gestión %s no encontrada", id)
}

func (m *mockGestionRepository) GetNextID(ctx context.Context) (string, error) {
	id := fmt.Sprintf("G-%03d", m.nextID)
	m.nextID++
	return id, nil
}

// mockEventoRepository implements secondary.EventoRepository for testing.
type mockEventoRepository struct {
	eventos   []*secondary.EventoRecord
	appendErr error
}

func newMockEventoRepository() *mockEventoRepository {
	return &mockEventoRepository{}
}

func (m *mockEventoRepository) Append(ctx context.Context, e *secondary.EventoRecord) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	clone := *e
	m.eventos = append(m.eventos, &clone)
	return nil
}

func (m *mockEventoRepository) ByGestion(ctx context.Context, gestionID string) ([]*secondary.EventoRecord, error) {
	type indexed struct {
		evento *secondary.EventoRecord
		seq    int
	}
	var matched []indexed
	for i, e := range m.eventos {
		if e.IDGestion == gestionID {
			clone := *e
			matched = append(matched, indexed{&clone, i})
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].evento.TsEvento != matched[j].evento.TsEvento {
			return matched[i].evento.TsEvento > matched[j].evento.TsEvento
		}
		return matched[i].seq > matched[j].seq
	})
	result := make([]*secondary.EventoRecord, len(matched))
	for i, m := range matched {
		result[i] = m.evento
	}
	return result, nil
}

// mockUsuarioRepository implements secondary.UsuarioRepository for testing.
type mockUsuarioRepository struct {
	usuarios []*secondary.UsuarioRecord
	addErr   error
	listErr  error
}

func newMockUsuarioRepository() *mockUsuarioRepository {
	return &mockUsuarioRepository{}
}

func (m *mockUsuarioRepository) Add(ctx context.Context, u *secondary.UsuarioRecord) error {
	if m.addErr != nil {
		return m.addErr
	}
	clone := *u
	m.usuarios = append(m.usuarios, &clone)
	return nil
}

func (m *mockUsuarioRepository) GetByEmail(ctx context.Context, email string) (*secondary.UsuarioRecord, error) {
	for _, u := range m.usuarios {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, apperr.NotFoundf("usuario %s no encontrado", email)
}

func (m *mockUsuarioRepository) List(ctx context.Context) ([]*secondary.UsuarioRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]*secondary.UsuarioRecord, len(m.usuarios))
	for i, u := range m.usuarios {
		clone := *u
		result[i] = &clone
	}
	return result, nil
}

func (m *mockUsuarioRepository) SetActivo(ctx context.Context, email string, activo bool) error {
	for _, u := range m.usuarios {
		if u.Email == email {
			u.Activo = activo
			return nil
		}
	}
	return apperr.NotFoundf("usuario %s no encontrado", email)
}

// mockSesionStore implements secondary.SesionStore for testing.
type mockSesionStore struct {
	usuario *secondary.UsuarioRecord
	saveErr error
}

func newMockSesionStore() *mockSesionStore {
	return &mockSesionStore{}
}

func (m *mockSesionStore) Save(ctx context.Context, u *secondary.UsuarioRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	clone := *u
	m.usuario = &clone
	return nil
}

func (m *mockSesionStore) Load(ctx context.Context) (*secondary.UsuarioRecord, error) {
	return m.usuario, nil
}

func (m *mockSesionStore) Clear(ctx context.Context) error {
	m.usuario = nil
	return nil
}

// Context helpers for each role.

func ctxConActor(email, rol string) context.Context {
	return ctxutil.WithActor(context.Background(), &ctxutil.Actor{Email: email, Rol: rol})
}

func ctxAdmin() context.Context {
	return ctxConActor("admin@gmail.com", "Admin")
}

func ctxSupervisor() context.Context {
	return ctxConActor("supervisor@gmail.com", "Supervisor")
}

func ctxOperador() context.Context {
	return ctxConActor("operador@gmail.com", "Operador")
}

func ctxConsulta() context.Context {
	return ctxConActor("consulta@gmail.com", "Consulta")
}

// newTestGestionService builds a service over fresh mocks with a fixed clock.
func newTestGestionService() (*GestionServiceImpl, *mockGestionRepository, *mockEventoRepository) {
	gestionRepo := newMockGestionRepository()
	eventoRepo := newMockEventoRepository()
	service := NewGestionService(gestionRepo, eventoRepo)
	service.now = func() time.Time { return fixedNow }
	return service, gestionRepo, eventoRepo
}
