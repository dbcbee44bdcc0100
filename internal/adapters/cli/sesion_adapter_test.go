package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/gestor/internal/ports/primary"
)

// mockSesionService implements primary.SesionService for testing
type mockSesionService struct {
	loginFn   func(ctx context.Context, email string) (*primary.Usuario, error)
	currentFn func(ctx context.Context) (*primary.Usuario, error)

	logoutCalled bool
}

func (m *mockSesionService) Login(ctx context.Context, email string) (*primary.Usuario, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email)
	}
	return &primary.Usuario{Email: email, Nombre: "Supervisora", Rol: "Supervisor", Activo: true}, nil
}

func (m *mockSesionService) Resolve(ctx context.Context, email string) (*primary.Usuario, error) {
	return m.Login(ctx, email)
}

func (m *mockSesionService) Current(ctx context.Context) (*primary.Usuario, error) {
	if m.currentFn != nil {
		return m.currentFn(ctx)
	}
	return nil, nil
}

func (m *mockSesionService) Logout(ctx context.Context) error {
	m.logoutCalled = true
	return nil
}

func TestSesionAdapterLogin(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSesionAdapter(&mockSesionService{}, &buf)

	u, err := adapter.Login(context.Background(), "super@gmail.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if u.Rol != "Supervisor" {
		t.Errorf("Rol = %s", u.Rol)
	}
	if !strings.Contains(buf.String(), "✓ Sesión iniciada como super@gmail.com (Supervisor)") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestSesionAdapterLogin_Denegado(t *testing.T) {
	service := &mockSesionService{
		loginFn: func(ctx context.Context, email string) (*primary.Usuario, error) {
			return nil, errors.New("el correo no está autorizado")
		},
	}
	var buf bytes.Buffer
	adapter := NewSesionAdapter(service, &buf)

	if _, err := adapter.Login(context.Background(), "x@gmail.com"); err == nil {
		t.Fatal("expected error")
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be printed on failure, got: %s", buf.String())
	}
}

func TestSesionAdapterLogout(t *testing.T) {
	service := &mockSesionService{}
	var buf bytes.Buffer
	adapter := NewSesionAdapter(service, &buf)

	if err := adapter.Logout(context.Background()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !service.logoutCalled {
		t.Error("logout should reach the service")
	}
	if !strings.Contains(buf.String(), "✓ Sesión cerrada") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestSesionAdapterWhoAmI(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewSesionAdapter(&mockSesionService{}, &buf)

	u, err := adapter.WhoAmI(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if u != nil {
		t.Errorf("expected nil without session, got %+v", u)
	}
	if !strings.Contains(buf.String(), "No hay sesión activa") {
		t.Errorf("unexpected output: %s", buf.String())
	}

	buf.Reset()
	adapter = NewSesionAdapter(&mockSesionService{
		currentFn: func(ctx context.Context) (*primary.Usuario, error) {
			return &primary.Usuario{Email: "admin@gmail.com", Nombre: "Administración", Rol: "Admin", Activo: true}, nil
		},
	}, &buf)

	u, err = adapter.WhoAmI(context.Background())
	if err != nil || u == nil {
		t.Fatalf("expected usuario, got %+v, %v", u, err)
	}
	if !strings.Contains(buf.String(), "admin@gmail.com (Administración, Admin)") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
