package memory

import "github.com/example/gestor/internal/ports/secondary"

// Seed loads the demo fixtures into fresh in-memory repositories. Demo mode
// starts from the same gestiones and usuarios every run.
func Seed(gestiones *GestionRepository, usuarios *UsuarioRepository) {
	gestiones.mu.Lock()
	gestiones.gestiones = []*secondary.GestionRecord{
		{
			ID:                  "G-001",
			NroExpediente:       "2024-EXP-0101",
			Origen:              "Municipio",
			Estado:              "INGRESADO",
			FechaIngreso:        "2024-03-04",
			FechaEstado:         "2024-03-04T09:15:00Z",
			Urgencia:            "Alta",
			MinisterioAgenciaID: "MIN_INFRA",
			CategoriaGeneralID:  "OBRA_VIAL",
			SubtipoDetalle:      "Bacheo",
			Detalle:             "Bacheo y recapado de Av. Vélez Sarsfield entre calles 1 y 9",
			Departamento:        "Capital",
			Localidad:           "Córdoba",
			Direccion:           "Av. Vélez Sarsfield 400",
			GeoResuelta:         true,
			Lat:                 -31.416,
			Lon:                 -64.183,
			CostoEstimado:       12500000,
			CostoMoneda:         "ARS",
			CreatedAt:           "2024-03-04T09:15:00Z",
			CreatedBy:           "operador@gmail.com",
			UpdatedAt:           "2024-03-04T09:15:00Z",
			UpdatedBy:           "operador@gmail.com",
		},
		{
			ID:                  "G-002",
			NroExpediente:       "2024-EXP-0117",
			Origen:              "Ciudadano",
			Estado:              "DERIVADO A SUAC",
			FechaIngreso:        "2024-03-11",
			FechaEstado:         "2024-03-15T14:02:00Z",
			Urgencia:            "Media",
			MinisterioAgenciaID: "MIN_AGUA",
			CategoriaGeneralID:  "RED_CLOACAL",
			Detalle:             "Extensión de red cloacal en Barrio El Talar",
			Observaciones:       "[15/03/2024] Cambio a DERIVADO A SUAC: expediente remitido",
			Departamento:        "Colon",
			Localidad:           "Rio Ceballos",
			GeoResuelta:         true,
			Lat:                 -31.168,
			Lon:                 -64.323,
			CostoEstimado:       48000000,
			CostoMoneda:         "ARS",
			CreatedAt:           "2024-03-11T10:40:00Z",
			CreatedBy:           "supervisor@gmail.com",
			UpdatedAt:           "2024-03-15T14:02:00Z",
			UpdatedBy:           "supervisor@gmail.com",
		},
	}
	gestiones.nextID = 3
	gestiones.mu.Unlock()

	usuarios.mu.Lock()
	usuarios.usuarios = []*secondary.UsuarioRecord{
		{Email: "admin@gmail.com", Nombre: "Administración", Rol: "Admin", Activo: true},
		{Email: "supervisor@gmail.com", Nombre: "Mesa de Supervisión", Rol: "Supervisor", Activo: true},
		{Email: "operador@gmail.com", Nombre: "Mesa de Entradas", Rol: "Operador", Activo: true},
	}
	usuarios.mu.Unlock()
}
