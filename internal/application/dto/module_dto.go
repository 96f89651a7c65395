package dto

// ModuleResponse entrada del catálogo global de módulos.
type ModuleResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Route        string `json:"route"`
	DisplayOrder int    `json:"display_order"`
}
