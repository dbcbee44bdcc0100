// Package config persists local state between runs: the logged-in usuario
// lives in a JSON file under the user's .gestor directory.
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/gestor/internal/ports/secondary"
)

type sesionFile struct {
	Email  string `json:"email"`
	Nombre string `json:"nombre,omitempty"`
	Rol    string `json:"rol"`
	Activo bool   `json:"activo"`
}

// FileSesionStore implements secondary.SesionStore over a JSON file.
type FileSesionStore struct {
	dir string
}

// NewFileSesionStore creates a session store rooted at dir. An empty dir
// resolves to ~/.gestor.
func NewFileSesionStore(dir string) (*FileSesionStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".gestor")
	}
	return &FileSesionStore{dir: dir}, nil
}

func (s *FileSesionStore) path() string {
	return filepath.Join(s.dir, "sesion.json")
}

// Save persists the usuario as the current session.
func (s *FileSesionStore) Save(ctx context.Context, usuario *secondary.UsuarioRecord) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create .gestor dir: %w", err)
	}

	data, err := json.MarshalIndent(sesionFile{
		Email:  usuario.Email,
		Nombre: usuario.Nombre,
		Rol:    usuario.Rol,
		Activo: usuario.Activo,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal sesión: %w", err)
	}

	if err := os.WriteFile(s.path(), data, 0600); err != nil {
		return fmt.Errorf("failed to write sesión: %w", err)
	}

	return nil
}

// Load returns the persisted usuario, or (nil, nil) when logged out.
func (s *FileSesionStore) Load(ctx context.Context) (*secondary.UsuarioRecord, error) {
	data, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read sesión: %w", err)
	}

	var f sesionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse sesión: %w", err)
	}

	return &secondary.UsuarioRecord{
		Email:  f.Email,
		Nombre: f.Nombre,
		Rol:    f.Rol,
		Activo: f.Activo,
	}, nil
}

// Clear removes the persisted session. Idempotent.
func (s *FileSesionStore) Clear(ctx context.Context) error {
	err := os.Remove(s.path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear sesión: %w", err)
	}
	return nil
}

// Ensure FileSesionStore implements the interface
var _ secondary.SesionStore = (*FileSesionStore)(nil)
