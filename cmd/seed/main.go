package main

import (
	"context"
	"flag"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/puntoventa/backpos-api/internal/domain/entity"
	"github.com/puntoventa/backpos-api/internal/infrastructure/postgres"
	"github.com/puntoventa/backpos-api/pkg/config"
	"github.com/puntoventa/backpos-api/pkg/logger"
)

// Catálogo global de módulos del back office. El display_order define el orden
// estable de la matriz de permisos.
var modules = []entity.Module{
	{Name: "Productos", Route: "productos", DisplayOrder: 1},
	{Name: "Ventas", Route: "ventas", DisplayOrder: 2},
	{Name: "Compras", Route: "compras", DisplayOrder: 3},
	{Name: "Inventario", Route: "inventario", DisplayOrder: 4},
	{Name: "Cajas", Route: "cajas", DisplayOrder: 5},
	{Name: "Usuarios", Route: "usuarios", DisplayOrder: 6},
	{Name: "Reportes", Route: "reportes", DisplayOrder: 7},
}

func main() {
	demo := flag.Bool("demo", false, "crear además un tenant de demostración con usuario admin")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Upsert del catálogo: idempotente, se puede re-ejecutar.
	for _, m := range modules {
		_, err := pool.Exec(ctx, `
			INSERT INTO modules (name, route, display_order)
			VALUES ($1, $2, $3)
			ON CONFLICT (route) DO UPDATE SET name = EXCLUDED.name, display_order = EXCLUDED.display_order`,
			m.Name, m.Route, m.DisplayOrder,
		)
		if err != nil {
			log.Fatal().Err(err).Str("module", m.Route).Msg("seed de módulo")
		}
		log.Info().Str("module", m.Route).Msg("módulo sembrado")
	}

	if !*demo {
		log.Info().Msg("catálogo de módulos sembrado")
		return
	}

	tenantRepo := postgres.NewTenantRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	moduleRepo := postgres.NewModuleRepository(pool)
	permRepo := postgres.NewPermissionRepository(pool)

	now := time.Now()
	tenant := &entity.Tenant{Name: "Empresa Demo", Active: true, CreatedAt: now, UpdatedAt: now}
	if err := tenantRepo.Create(ctx, tenant); err != nil {
		log.Fatal().Err(err).Msg("crear tenant demo")
	}

	adminRole := &entity.Role{TenantID: tenant.ID, Name: "Administrador", Description: "Acceso total", CreatedAt: now, UpdatedAt: now}
	cajeroRole := &entity.Role{TenantID: tenant.ID, Name: "Cajero", Description: "Ventas y cajas", CreatedAt: now, UpdatedAt: now}
	for _, r := range []*entity.Role{adminRole, cajeroRole} {
		if err := roleRepo.Create(ctx, r); err != nil {
			log.Fatal().Err(err).Str("role", r.Name).Msg("crear rol demo")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("cambiar-ya"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de password demo")
	}
	admin := &entity.User{
		TenantID: tenant.ID, RoleID: adminRole.ID,
		Email: "admin@demo.local", PasswordHash: string(hash), Name: "Admin Demo",
		Active: true, CreatedAt: now, UpdatedAt: now,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("crear usuario demo")
	}

	// Matriz inicial: admin todo; cajero solo ventas y cajas.
	catalog, err := moduleRepo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("leer catálogo")
	}
	var adminRows, cajeroRows []*entity.Permission
	for _, m := range catalog {
		adminRows = append(adminRows, &entity.Permission{
			TenantID: tenant.ID, RoleID: adminRole.ID, ModuleID: m.ID,
			CanView: true, CanCreate: true, CanEdit: true, CanDelete: true,
		})
		if m.Route == "ventas" || m.Route == "cajas" {
			cajeroRows = append(cajeroRows, &entity.Permission{
				TenantID: tenant.ID, RoleID: cajeroRole.ID, ModuleID: m.ID,
				CanView: true, CanCreate: true, CanEdit: false, CanDelete: false,
			})
		}
	}
	if err := permRepo.ReplaceAll(ctx, tenant.ID, adminRole.ID, adminRows); err != nil {
		log.Fatal().Err(err).Msg("matriz admin demo")
	}
	if err := permRepo.ReplaceAll(ctx, tenant.ID, cajeroRole.ID, cajeroRows); err != nil {
		log.Fatal().Err(err).Msg("matriz cajero demo")
	}

	log.Info().Int64("tenant_id", tenant.ID).Msg("tenant demo creado (admin@demo.local)")
}
