// Package catalogo holds the static reference catalogs the panel offers in
// its selection controls: ministerios/agencias, categorías generales and the
// geographic departamento → localidades tree.
package catalogo

// Item is one selectable catalog entry.
type Item struct {
	ID     string
	Nombre string
}

// Ministerios returns the ministerio/agencia catalog.
func Ministerios() []Item {
	return []Item{
		{ID: "MIN_INFRA", Nombre: "Ministerio de Infraestructura"},
		{ID: "MIN_AGUA", Nombre: "Ministerio de Agua y Energía"},
	}
}

// Categorias returns the categoría general catalog.
func Categorias() []Item {
	return []Item{
		{ID: "OBRA_VIAL", Nombre: "Obra Vial"},
		{ID: "RED_CLOACAL", Nombre: "Red Cloacal"},
	}
}

// Departamentos returns the departamentos offered by the panel.
func Departamentos() []string {
	return []string{"Capital", "Colon", "Punilla", "San Justo"}
}

// Localidades returns the localidades of a departamento. Departamentos
// without a loaded localidad list return nil; the UI then asks for free text.
func Localidades(departamento string) []string {
	switch departamento {
	case "Capital":
		return []string{"Córdoba"}
	case "Colon":
		return []string{"Salsipuedes", "Unquillo", "Rio Ceballos"}
	case "Punilla":
		return []string{"Villa Carlos Paz", "Cosquín"}
	}
	return nil
}
