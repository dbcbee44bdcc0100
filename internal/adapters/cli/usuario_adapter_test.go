package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/gestor/internal/ports/primary"
)

// mockUsuarioService implements primary.UsuarioService for testing
type mockUsuarioService struct {
	addUsuarioFn   func(ctx context.Context, req primary.AddUsuarioRequest) (*primary.Usuario, error)
	listUsuariosFn func(ctx context.Context) ([]*primary.Usuario, error)
	toggleActivoFn func(ctx context.Context, email string) (*primary.Usuario, error)
}

func (m *mockUsuarioService) AddUsuario(ctx context.Context, req primary.AddUsuarioRequest) (*primary.Usuario, error) {
	if m.addUsuarioFn != nil {
		return m.addUsuarioFn(ctx, req)
	}
	return &primary.Usuario{Email: req.Email, Nombre: req.Nombre, Rol: req.Rol, Activo: true}, nil
}

func (m *mockUsuarioService) ListUsuarios(ctx context.Context) ([]*primary.Usuario, error) {
	if m.listUsuariosFn != nil {
		return m.listUsuariosFn(ctx)
	}
	return []*primary.Usuario{}, nil
}

func (m *mockUsuarioService) ToggleActivo(ctx context.Context, email string) (*primary.Usuario, error) {
	if m.toggleActivoFn != nil {
		return m.toggleActivoFn(ctx, email)
	}
	return &primary.Usuario{Email: email, Rol: "Operador", Activo: false}, nil
}

func TestUsuarioAdapterList(t *testing.T) {
	service := &mockUsuarioService{
		listUsuariosFn: func(ctx context.Context) ([]*primary.Usuario, error) {
			return []*primary.Usuario{
				{Email: "admin@gmail.com", Nombre: "Administración", Rol: "Admin", Activo: true},
				{Email: "baja@gmail.com", Rol: "Consulta", Activo: false},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewUsuarioAdapter(service, &buf)

	usuarios, err := adapter.List(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(usuarios) != 2 {
		t.Fatalf("expected 2 usuarios, got %d", len(usuarios))
	}

	out := buf.String()
	if !strings.Contains(out, "admin@gmail.com") || !strings.Contains(out, "inactivo") {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestUsuarioAdapterAdd(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewUsuarioAdapter(&mockUsuarioService{}, &buf)

	u, err := adapter.Add(context.Background(), primary.AddUsuarioRequest{
		Email: "foo@gmail.com",
		Rol:   "Operador",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !u.Activo {
		t.Error("new usuario should be activo")
	}
	if !strings.Contains(buf.String(), "✓ Usuario foo@gmail.com autorizado con rol Operador") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestUsuarioAdapterAdd_ErrorPassthrough(t *testing.T) {
	service := &mockUsuarioService{
		addUsuarioFn: func(ctx context.Context, req primary.AddUsuarioRequest) (*primary.Usuario, error) {
			return nil, errors.New("solo se admiten correos @gmail.com")
		},
	}
	var buf bytes.Buffer
	adapter := NewUsuarioAdapter(service, &buf)

	if _, err := adapter.Add(context.Background(), primary.AddUsuarioRequest{Email: "foo@yahoo.com"}); err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be printed on failure, got: %s", buf.String())
	}
}

func TestUsuarioAdapterToggle(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewUsuarioAdapter(&mockUsuarioService{}, &buf)

	u, err := adapter.Toggle(context.Background(), "foo@gmail.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if u.Activo {
		t.Error("mock toggles to inactive")
	}
	if !strings.Contains(buf.String(), "desactivado") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
