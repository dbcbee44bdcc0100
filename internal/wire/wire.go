// Package wire provides dependency injection for the gestor application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/gestor/internal/adapters/cli"
	"github.com/example/gestor/internal/adapters/memory"
	"github.com/example/gestor/internal/adapters/sqlite"
	"github.com/example/gestor/internal/app"
	"github.com/example/gestor/internal/config"
	"github.com/example/gestor/internal/db"
	"github.com/example/gestor/internal/ports/primary"
	"github.com/example/gestor/internal/ports/secondary"
)

var (
	gestionService primary.GestionService
	usuarioService primary.UsuarioService
	sesionService  primary.SesionService
	once           sync.Once
)

// GestionService returns the singleton GestionService instance.
func GestionService() primary.GestionService {
	once.Do(initServices)
	return gestionService
}

// UsuarioService returns the singleton UsuarioService instance.
func UsuarioService() primary.UsuarioService {
	once.Do(initServices)
	return usuarioService
}

// SesionService returns the singleton SesionService instance.
func SesionService() primary.SesionService {
	once.Do(initServices)
	return sesionService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once. GESTION_DB=memoria selects the seeded
// in-memory adapters (demo mode); anything else uses the local SQLite file.
func initServices() {
	var (
		gestionRepo secondary.GestionRepository
		eventoRepo  secondary.EventoRepository
		usuarioRepo secondary.UsuarioRepository
	)

	if os.Getenv("GESTION_DB") == "memoria" {
		g := memory.NewGestionRepository()
		u := memory.NewUsuarioRepository()
		memory.Seed(g, u)
		gestionRepo = g
		eventoRepo = memory.NewEventoRepository()
		usuarioRepo = u
	} else {
		database, err := db.GetDB()
		if err != nil {
			log.Fatalf("failed to initialize database: %v", err)
		}
		gestionRepo = sqlite.NewGestionRepository(database)
		eventoRepo = sqlite.NewEventoRepository(database)
		usuarioRepo = sqlite.NewUsuarioRepository(database)
	}

	sesiones, err := config.NewFileSesionStore("")
	if err != nil {
		log.Fatalf("failed to initialize sesión store: %v", err)
	}

	gestionService = app.NewGestionService(gestionRepo, eventoRepo)
	usuarioService = app.NewUsuarioService(usuarioRepo)
	sesionService = app.NewSesionService(usuarioRepo, sesiones)
}

// GestionAdapter returns a new GestionAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func GestionAdapter() *cliadapter.GestionAdapter {
	return GestionAdapterWithOutput(os.Stdout)
}

// GestionAdapterWithOutput returns a new GestionAdapter writing to the given output.
func GestionAdapterWithOutput(out io.Writer) *cliadapter.GestionAdapter {
	once.Do(initServices)
	return cliadapter.NewGestionAdapter(gestionService, out)
}

// UsuarioAdapter returns a new UsuarioAdapter writing to stdout.
func UsuarioAdapter() *cliadapter.UsuarioAdapter {
	return UsuarioAdapterWithOutput(os.Stdout)
}

// UsuarioAdapterWithOutput returns a new UsuarioAdapter writing to the given output.
func UsuarioAdapterWithOutput(out io.Writer) *cliadapter.UsuarioAdapter {
	once.Do(initServices)
	return cliadapter.NewUsuarioAdapter(usuarioService, out)
}

// SesionAdapter returns a new SesionAdapter writing to stdout.
func SesionAdapter() *cliadapter.SesionAdapter {
	return SesionAdapterWithOutput(os.Stdout)
}

// SesionAdapterWithOutput returns a new SesionAdapter writing to the given output.
func SesionAdapterWithOutput(out io.Writer) *cliadapter.SesionAdapter {
	once.Do(initServices)
	return cliadapter.NewSesionAdapter(sesionService, out)
}
