package app

import (
	"context"
	"fmt"

	"github.com/example/gestor/internal/apperr"
	"github.com/example/gestor/internal/ports/primary"
	"github.com/example/gestor/internal/ports/secondary"
)

// SesionServiceImpl implements the SesionService interface.
// Role resolution always consults the whitelist: an email never receives a
// default role just for authenticating.
type SesionServiceImpl struct {
	usuarioRepo secondary.UsuarioRepository
	sesiones    secondary.SesionStore
}

// NewSesionService creates a new SesionService with injected dependencies.
func NewSesionService(usuarioRepo secondary.UsuarioRepository, sesiones secondary.SesionStore) *SesionServiceImpl {
	return &SesionServiceImpl{
		usuarioRepo: usuarioRepo,
		sesiones:    sesiones,
	}
}

// Login resolves the email against the whitelist and persists the session.
func (s *SesionServiceImpl) Login(ctx context.Context, email string) (*primary.Usuario, error) {
	record, err := s.resolve(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := s.sesiones.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist sesión: %w", err)
	}
	return recordToUsuario(record), nil
}

// Resolve maps an email to its whitelisted usuario without touching the
// persisted session.
func (s *SesionServiceImpl) Resolve(ctx context.Context, email string) (*primary.Usuario, error) {
	record, err := s.resolve(ctx, email)
	if err != nil {
		return nil, err
	}
	return recordToUsuario(record), nil
}

// Current returns the persisted session usuario, or nil when logged out.
func (s *SesionServiceImpl) Current(ctx context.Context) (*primary.Usuario, error) {
	record, err := s.sesiones.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load sesión: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	return recordToUsuario(record), nil
}

// Logout clears the persisted session. Idempotent.
func (s *SesionServiceImpl) Logout(ctx context.Context) error {
	if err := s.sesiones.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear sesión: %w", err)
	}
	return nil
}

func (s *SesionServiceImpl) resolve(ctx context.Context, email string) (*secondary.UsuarioRecord, error) {
	record, err := s.usuarioRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Authorizationf("el correo %s no está autorizado", email)
		}
		return nil, fmt.Errorf("failed to resolve usuario: %w", err)
	}
	if !record.Activo {
		return nil, apperr.Authorizationf("el usuario %s está inactivo", email)
	}
	return record, nil
}

// Ensure SesionServiceImpl implements the interface
var _ primary.SesionService = (*SesionServiceImpl)(nil)
