package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/gestor/internal/ports/secondary"
)

func TestFileSesionStore_RoundTrip(t *testing.T) {
	store, err := NewFileSesionStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	ctx := context.Background()

	u := &secondary.UsuarioRecord{
		Email:  "super@gmail.com",
		Nombre: "Supervisora",
		Rol:    "Supervisor",
		Activo: true,
	}
	if err := store.Save(ctx, u); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got == nil || *got != *u {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, u)
	}
}

func TestFileSesionStore_LoadSinSesion(t *testing.T) {
	store, _ := NewFileSesionStore(t.TempDir())

	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load of absent file should not error, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil usuario, got %+v", got)
	}
}

func TestFileSesionStore_Clear(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewFileSesionStore(dir)
	ctx := context.Background()

	// Clear with nothing persisted is a no-op.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear of absent file should not error, got %v", err)
	}

	_ = store.Save(ctx, &secondary.UsuarioRecord{Email: "a@gmail.com", Rol: "Admin", Activo: true})
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "sesion.json")); !os.IsNotExist(err) {
		t.Error("sesion.json should be removed")
	}

	got, _ := store.Load(ctx)
	if got != nil {
		t.Errorf("expected nil after clear, got %+v", got)
	}
}

func TestFileSesionStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewFileSesionStore(dir)

	if err := os.WriteFile(filepath.Join(dir, "sesion.json"), []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(context.Background()); err == nil {
		t.Error("corrupt file should surface an error")
	}
}
