package dto

// Límites de página de las búsquedas de lotes y bins. El límite por defecto
// cabe en una pantalla de terminal de escáner; el máximo acota el costo de una
// búsqueda con patrón vacío sobre todo el almacén.
const (
	DefaultSearchLimit = 25
	MaxSearchLimit     = 100
)

// PageRequest parámetros de paginación de los listados de búsqueda.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// Normalize lleva Limit/Offset a valores utilizables: completa los ausentes y
// recorta Limit a MaxSearchLimit.
func (p *PageRequest) Normalize() {
	if p.Limit <= 0 {
		p.Limit = DefaultSearchLimit
	}
	if p.Limit > MaxSearchLimit {
		p.Limit = MaxSearchLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse eco de la página servida más el total de coincidencias.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo uniforme de error de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
