package entity

// Acciones de la matriz de permisos.
const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionEdit   = "edit"
	ActionDelete = "delete"
)

// Permission es una fila de la matriz de permisos: qué acciones puede hacer un
// rol de un tenant sobre un módulo. La clave (TenantID, RoleID, ModuleID) es
// única; las cuatro acciones son independientes entre sí.
type Permission struct {
	TenantID  int64
	RoleID    int64
	ModuleID  int64
	CanView   bool
	CanCreate bool
	CanEdit   bool
	CanDelete bool
}
