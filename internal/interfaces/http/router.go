package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/puntoventa/backpos-api/internal/application/auth"
	"github.com/puntoventa/backpos-api/internal/application/usecase"
	"github.com/puntoventa/backpos-api/internal/domain/entity"
	"github.com/puntoventa/backpos-api/pkg/rolecatalog"
	"github.com/puntoventa/backpos-api/pkg/token"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	RoleUC       *usecase.RoleUseCase
	PermissionUC *usecase.PermissionUseCase
	ModuleUC     *usecase.ModuleUseCase
	UserUC       *usecase.UserUseCase
	Tokens       *token.Service
}

// Router registra las rutas de la API.
//
// Pipeline de autorización: AuthMiddleware (token) → RequireTenant (scope) →
// RequireRole / RequirePermission (autorización fina) → handler. Solo login y
// bootstrap quedan fuera: son los que emiten la credencial.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público por diseño)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/bootstrap", authHandler.Bootstrap)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Tokens))

	// Catálogo global de módulos: autenticado pero sin scope de tenant.
	moduleHandler := NewModuleHandler(deps.ModuleUC)
	protected.Get("/modules", moduleHandler.List)

	// Todo lo demás vive bajo el tenant del token.
	tenants := protected.Group("/tenants/:tenantId", RequireTenant())

	// Roles: lectura para administración y gerencia, escritura solo admin.
	// RequireRole acepta nombres y ordinales indistintamente.
	roleHandler := NewRoleHandler(deps.RoleUC)
	tenants.Get("/roles", RequireRole("administrador", rolecatalog.Gerente), roleHandler.List)
	tenants.Post("/roles", RequireRole(rolecatalog.Admin), roleHandler.Create)

	// Matriz de permisos: lectura admin/gerente, reemplazo masivo solo admin.
	permHandler := NewPermissionHandler(deps.PermissionUC)
	tenants.Get("/roles/:roleId/permissions", RequireRole(rolecatalog.Admin, "gerente"), permHandler.GetMatrix)
	tenants.Put("/roles/:roleId/permissions", RequireRole(rolecatalog.Admin), permHandler.Replace)

	// Usuarios: gate por la matriz (módulo "usuarios", acción view).
	userHandler := NewUserHandler(deps.UserUC)
	tenants.Get("/users", RequirePermission("usuarios", entity.ActionView, deps.PermissionUC), userHandler.List)
}
