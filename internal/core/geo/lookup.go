// Package geo provides the static (departamento, localidad) → (lat, lon)
// lookup used to auto-fill coordinates on gestiones. It mirrors the
// infra_gestion.geo_localidades reference table.
package geo

// Coordenadas is a resolved geographic point.
type Coordenadas struct {
	Lat float64
	Lon float64
}

type claveGeo struct {
	departamento string
	localidad    string
}

// localidades is the static reference table. A miss is not an error: the
// gestión simply carries no coordinates.
var localidades = map[claveGeo]Coordenadas{
	{"Capital", "Córdoba"}:          {Lat: -31.416, Lon: -64.183},
	{"Colon", "Salsipuedes"}:        {Lat: -31.137, Lon: -64.297},
	{"Colon", "Unquillo"}:           {Lat: -31.229, Lon: -64.316},
	{"Colon", "Rio Ceballos"}:       {Lat: -31.168, Lon: -64.323},
	{"Punilla", "Villa Carlos Paz"}: {Lat: -31.424, Lon: -64.498},
	{"Punilla", "Cosquín"}:          {Lat: -31.245, Lon: -64.465},
}

// Resolver looks up the coordinates for a (departamento, localidad) pair.
// The second return is false on a miss.
func Resolver(departamento, localidad string) (Coordenadas, bool) {
	c, ok := localidades[claveGeo{departamento, localidad}]
	return c, ok
}
