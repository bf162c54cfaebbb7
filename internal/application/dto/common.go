package dto

// CatalogQuery parámetros de la vista de catálogo. La página llega como texto para que un
// valor inválido caiga en la página 1 en lugar de producir un 400.
type CatalogQuery struct {
	Q        string `query:"q"`
	Category string `query:"category"`
	Page     string `query:"page"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
