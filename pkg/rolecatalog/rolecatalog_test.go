package rolecatalog_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/puntoventa/backpos-api/pkg/rolecatalog"
)

// Cada alias de la tabla, con variantes de mayúsculas y tildes: todos deben
// caer en su ordinal documentado.
func TestCanonicalize_TablaDeAlias(t *testing.T) {
	cases := []struct {
		name string
		want rolecatalog.Ordinal
	}{
		{"superadmin", rolecatalog.SuperAdmin},
		{"SUPERADMIN", rolecatalog.SuperAdmin},
		{"Super Admin", rolecatalog.SuperAdmin},
		{"Súper Administrador", rolecatalog.SuperAdmin},
		{"superadministrador", rolecatalog.SuperAdmin},
		{"admin", rolecatalog.Admin},
		{"Admin", rolecatalog.Admin},
		{"ADMINISTRADOR", rolecatalog.Admin},
		{"Adminístrador", rolecatalog.Admin},
		{"administrator", rolecatalog.Admin},
		{"gerente", rolecatalog.Gerente},
		{"GERENTE", rolecatalog.Gerente},
		{"Gerenté", rolecatalog.Gerente},
		{"manager", rolecatalog.Gerente},
		{"Manager", rolecatalog.Gerente},
		{"supervisor", rolecatalog.Gerente},
		{"cajero", rolecatalog.Cajero},
		{"CAJERO", rolecatalog.Cajero},
		{"Cajéro", rolecatalog.Cajero},
		{"cashier", rolecatalog.Cajero},
		{"vendedor", rolecatalog.Cajero},
		{"empleado", rolecatalog.Empleado},
		{"EMPLEADO", rolecatalog.Empleado},
		{"Empleado General", rolecatalog.Empleado},
		{"employee", rolecatalog.Empleado},
		{"  gerente  ", rolecatalog.Gerente}, // espacios en los extremos
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rolecatalog.Canonicalize(tc.name),
				"el alias %q debe canonicalizar al ordinal %d", tc.name, tc.want)
		})
	}
}

// Un nombre fuera de la tabla cae al privilegio mínimo, nunca se rechaza.
func TestCanonicalize_NombreDesconocidoCaeAEmpleado(t *testing.T) {
	for _, name := range []string{"contador", "root", "jefe de bodega", "", "   ", "admin2", "administradores"} {
		assert.Equal(t, rolecatalog.Empleado, rolecatalog.Canonicalize(name),
			"el nombre desconocido %q debe caer al ordinal 5", name)
	}
}

func TestOrdinal_Valid(t *testing.T) {
	for o := rolecatalog.SuperAdmin; o <= rolecatalog.Empleado; o++ {
		assert.True(t, o.Valid())
	}
	assert.False(t, rolecatalog.Ordinal(0).Valid())
	assert.False(t, rolecatalog.Ordinal(6).Valid())
	assert.False(t, rolecatalog.Ordinal(-1).Valid())
}

// Nombres y ordinales en el conjunto de requisitos deben comportarse igual.
func TestAllows_NombresYOrdinalesEquivalentes(t *testing.T) {
	assert.True(t, rolecatalog.Allows(rolecatalog.Gerente, "gerente"))
	assert.True(t, rolecatalog.Allows(rolecatalog.Gerente, rolecatalog.Gerente))
	assert.True(t, rolecatalog.Allows(rolecatalog.Gerente, 3))
	assert.True(t, rolecatalog.Allows(rolecatalog.Gerente, "admin", "MANAGER"))
	assert.True(t, rolecatalog.Allows(rolecatalog.Admin, "administrador", 3))

	assert.False(t, rolecatalog.Allows(rolecatalog.Cajero, "admin", "gerente"))
	assert.False(t, rolecatalog.Allows(rolecatalog.SuperAdmin, "admin"))
}

func TestAllows_ConjuntoVacioNoPermiteNada(t *testing.T) {
	assert.False(t, rolecatalog.Allows(rolecatalog.Admin))
}

// Requisitos inválidos (ordinal fuera de rango, tipo no soportado) se ignoran.
func TestAllows_RequisitosInvalidosSeIgnoran(t *testing.T) {
	assert.False(t, rolecatalog.Allows(rolecatalog.Admin, 0, 99, 3.14, nil))
	assert.True(t, rolecatalog.Allows(rolecatalog.Admin, 99, "admin"))
}

func TestResolve(t *testing.T) {
	o, ok := rolecatalog.Resolve("Cajero")
	assert.True(t, ok)
	assert.Equal(t, rolecatalog.Cajero, o)

	o, ok = rolecatalog.Resolve(int64(2))
	assert.True(t, ok)
	assert.Equal(t, rolecatalog.Admin, o)

	_, ok = rolecatalog.Resolve(7)
	assert.False(t, ok)

	// Un string desconocido resuelve (fail-open a Empleado), no falla.
	o, ok = rolecatalog.Resolve("lo que sea")
	assert.True(t, ok)
	assert.Equal(t, rolecatalog.Empleado, o)
}

// Canonicalize es puro y debe soportar invocación concurrente sin estado
// compartido (se ejercita con -race).
func TestCanonicalize_Concurrente(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = rolecatalog.Canonicalize("Súper Administrador")
				_ = rolecatalog.Canonicalize("cajero")
				_ = rolecatalog.Canonicalize("desconocido")
			}
		}()
	}
	wg.Wait()
}
