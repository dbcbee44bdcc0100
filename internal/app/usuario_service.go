package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/gestor/internal/apperr"
	"github.com/example/gestor/internal/core/usuario"
	"github.com/example/gestor/internal/ctxutil"
	"github.com/example/gestor/internal/ports/primary"
	"github.com/example/gestor/internal/ports/secondary"
)

// UsuarioServiceImpl implements the UsuarioService interface.
type UsuarioServiceImpl struct {
	usuarioRepo secondary.UsuarioRepository
}

// NewUsuarioService creates a new UsuarioService with injected dependencies.
func NewUsuarioService(usuarioRepo secondary.UsuarioRepository) *UsuarioServiceImpl {
	return &UsuarioServiceImpl{
		usuarioRepo: usuarioRepo,
	}
}

// AddUsuario authorizes a new usuario in the whitelist.
func (s *UsuarioServiceImpl) AddUsuario(ctx context.Context, req primary.AddUsuarioRequest) (*primary.Usuario, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	email := strings.TrimSpace(req.Email)
	if !usuario.EmailPermitido(email) {
		return nil, apperr.Validationf("solo se admiten correos @gmail.com: %q", email)
	}

	rol, err := usuario.ParseRol(req.Rol)
	if err != nil {
		return nil, apperr.Validationf("%v", err)
	}

	if existing, err := s.usuarioRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperr.Validationf("el usuario %s ya existe", email)
	} else if err != nil && !apperr.IsNotFound(err) {
		return nil, fmt.Errorf("failed to check existing usuario: %w", err)
	}

	record := &secondary.UsuarioRecord{
		Email:  email,
		Nombre: req.Nombre,
		Rol:    string(rol),
		Activo: true,
	}
	if err := s.usuarioRepo.Add(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to add usuario: %w", err)
	}

	return recordToUsuario(record), nil
}

// ListUsuarios lists every usuario, active or not.
func (s *UsuarioServiceImpl) ListUsuarios(ctx context.Context) ([]*primary.Usuario, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	records, err := s.usuarioRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list usuarios: %w", err)
	}

	usuarios := make([]*primary.Usuario, len(records))
	for i, r := range records {
		usuarios[i] = recordToUsuario(r)
	}
	return usuarios, nil
}

// ToggleActivo flips the activo flag of a usuario.
func (s *UsuarioServiceImpl) ToggleActivo(ctx context.Context, email string) (*primary.Usuario, error) {
	if err := s.requireAdmin(ctx); err != nil {
		return nil, err
	}

	record, err := s.usuarioRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.usuarioRepo.SetActivo(ctx, email, !record.Activo); err != nil {
		return nil, fmt.Errorf("failed to toggle usuario: %w", err)
	}

	record.Activo = !record.Activo
	return recordToUsuario(record), nil
}

func (s *UsuarioServiceImpl) requireAdmin(ctx context.Context) error {
	actor := ctxutil.ActorFromContext(ctx)
	if actor == nil {
		return apperr.Authorizationf("se requiere una sesión activa")
	}
	rol, err := usuario.ParseRol(actor.Rol)
	if err != nil {
		return apperr.Authorizationf("%v", err)
	}
	if res := usuario.CanAdministrar(rol); !res.Allowed {
		return apperr.Authorizationf("%s", res.Reason)
	}
	return nil
}

func recordToUsuario(r *secondary.UsuarioRecord) *primary.Usuario {
	return &primary.Usuario{
		Email:  r.Email,
		Nombre: r.Nombre,
		Rol:    r.Rol,
		Activo: r.Activo,
	}
}

// Ensure UsuarioServiceImpl implements the interface
var _ primary.UsuarioService = (*UsuarioServiceImpl)(nil)
