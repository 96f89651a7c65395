package dto

// PermissionRow una fila de la matriz: módulo + cuatro acciones independientes.
type PermissionRow struct {
	ModuleID  int64 `json:"module_id" validate:"required,gt=0"`
	CanView   bool  `json:"can_view"`
	CanCreate bool  `json:"can_create"`
	CanEdit   bool  `json:"can_edit"`
	CanDelete bool  `json:"can_delete"`
}

// ReplacePermissionsRequest entrada del reemplazo masivo de la matriz de un
// rol. Todo-o-nada: si una fila es inválida no se escribe ninguna.
type ReplacePermissionsRequest struct {
	Permissions []PermissionRow `json:"permissions" validate:"required,dive"`
}

// MatrixRow fila de la matriz resultante, enriquecida con el módulo del catálogo.
type MatrixRow struct {
	ModuleID   int64  `json:"module_id"`
	ModuleName string `json:"module_name"`
	Route      string `json:"route"`
	CanView    bool   `json:"can_view"`
	CanCreate  bool   `json:"can_create"`
	CanEdit    bool   `json:"can_edit"`
	CanDelete  bool   `json:"can_delete"`
}

// MatrixResponse matriz completa de un rol, en el orden del catálogo.
type MatrixResponse struct {
	RoleID      int64       `json:"role_id"`
	Permissions []MatrixRow `json:"permissions"`
}
