package app

import (
	"context"
	"strings"
	"testing"

	"github.com/example/gestor/internal/apperr"
	"github.com/example/gestor/internal/ports/secondary"
)

func newTestSesionService() (*SesionServiceImpl, *mockUsuarioRepository, *mockSesionStore) {
	usuarioRepo := newMockUsuarioRepository()
	usuarioRepo.usuarios = []*secondary.UsuarioRecord{
		{Email: "super@gmail.com", Nombre: "Supervisora", Rol: "Supervisor", Activo: true},
		{Email: "baja@gmail.com", Nombre: "De Baja", Rol: "Operador", Activo: false},
	}
	sesiones := newMockSesionStore()
	return NewSesionService(usuarioRepo, sesiones), usuarioRepo, sesiones
}

// ============================================================================
// Login / Resolve Tests
// ============================================================================

func TestLogin_RolDesdeDirectorio(t *testing.T) {
	service, _, sesiones := newTestSesionService()

	u, err := service.Login(context.Background(), "super@gmail.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	// The rol comes from the directory record, never from a default.
	if u.Rol != "Supervisor" {
		t.Errorf("Rol = %s, want Supervisor", u.Rol)
	}
	if sesiones.usuario == nil || sesiones.usuario.Email != "super@gmail.com" {
		t.Error("login should persist the session")
	}
}

func TestLogin_NoAutorizado(t *testing.T) {
	service, _, sesiones := newTestSesionService()

	_, err := service.Login(context.Background(), "desconocido@gmail.com")
	if !apperr.IsAuthorization(err) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
	if !strings.Contains(err.Error(), "no está autorizado") {
		t.Errorf("unexpected message: %v", err)
	}
	if sesiones.usuario != nil {
		t.Error("no session should be persisted on denial")
	}
}

func TestLogin_Inactivo(t *testing.T) {
	service, _, _ := newTestSesionService()

	_, err := service.Login(context.Background(), "baja@gmail.com")
	if !apperr.IsAuthorization(err) {
		t.Fatalf("expected AuthorizationError, got %v", err)
	}
	if !strings.Contains(err.Error(), "inactivo") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestResolve_NoPersiste(t *testing.T) {
	service, _, sesiones := newTestSesionService()

	u, err := service.Resolve(context.Background(), "super@gmail.com")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if u.Rol != "Supervisor" {
		t.Errorf("Rol = %s", u.Rol)
	}
	if sesiones.usuario != nil {
		t.Error("resolve must not persist a session")
	}
}

// ============================================================================
// Current / Logout Tests
// ============================================================================

func TestCurrent_SinSesion(t *testing.T) {
	service, _, _ := newTestSesionService()

	u, err := service.Current(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if u != nil {
		t.Errorf("expected nil usuario when logged out, got %+v", u)
	}
}

func TestLogout_Idempotente(t *testing.T) {
	service, _, sesiones := newTestSesionService()
	if _, err := service.Login(context.Background(), "super@gmail.com"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := service.Logout(context.Background()); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if sesiones.usuario != nil {
		t.Error("logout should clear the session")
	}
	if err := service.Logout(context.Background()); err != nil {
		t.Fatalf("second logout should be a no-op, got %v", err)
	}

	u, err := service.Current(context.Background())
	if err != nil || u != nil {
		t.Errorf("expected no session after logout, got %+v, %v", u, err)
	}
}
