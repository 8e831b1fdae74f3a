package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// RoutesFor
// ──────────────────────────────────────────────────────────────────────────────

// Para cada rol del enum cerrado la tabla debe ser no vacía y estable: dos
// llamadas devuelven exactamente el mismo slice.
func TestRoutesFor_RolesConocidos_TablaEstableYNoVacia(t *testing.T) {
	for _, role := range []string{entity.RoleSuperAdmin, entity.RoleManager, entity.RoleDriver} {
		first := RoutesFor(role)
		second := RoutesFor(role)

		require.NotEmpty(t, first, "rol %s debe tener rutas", role)
		assert.Equal(t, first, second, "rol %s: la tabla debe ser estable", role)
		// Misma identidad de slice, no solo mismo valor
		assert.Same(t, &first[0], &second[0], "rol %s: debe devolverse la misma tabla", role)
	}
}

// Rol desconocido o vacío → sin navegación (fail-closed).
func TestRoutesFor_RolDesconocido_SinRutas(t *testing.T) {
	assert.Empty(t, RoutesFor("admin"))
	assert.Empty(t, RoutesFor(""))
	assert.Empty(t, RoutesFor("SUPER_ADMIN"))
}

// Toda entrada collapse sin submenú debe llevar path.
func TestRoutesFor_CollapseSinSubmenuLlevaPath(t *testing.T) {
	for _, role := range []string{entity.RoleSuperAdmin, entity.RoleManager, entity.RoleDriver} {
		for _, r := range RoutesFor(role) {
			if r.Type == EntryCollapse && len(r.Submenu) == 0 {
				assert.NotEmpty(t, r.Path, "rol %s, entrada %s", role, r.Key)
			}
		}
	}
}

// Las keys son únicas dentro de la tabla de cada rol.
func TestRoutesFor_KeysUnicas(t *testing.T) {
	for _, role := range []string{entity.RoleSuperAdmin, entity.RoleManager, entity.RoleDriver} {
		seen := map[string]bool{}
		for _, r := range RoutesFor(role) {
			assert.False(t, seen[r.Key], "rol %s: key duplicada %s", role, r.Key)
			seen[r.Key] = true
		}
	}
}

// La primera entrada de cada rol es su dashboard por defecto.
func TestRoutesFor_PrimeraEntradaEsElDashboard(t *testing.T) {
	for _, role := range []string{entity.RoleSuperAdmin, entity.RoleManager, entity.RoleDriver} {
		routes := RoutesFor(role)
		require.NotEmpty(t, routes)
		assert.Equal(t, DefaultDashboard(role), routes[0].Path, "rol %s", role)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Guard
// ──────────────────────────────────────────────────────────────────────────────

// Sin sesión siempre se redirige al login, pida el rol que pida la página.
func TestGuard_SinSesion_RedirigeALogin(t *testing.T) {
	for _, required := range []string{"", entity.RoleSuperAdmin, entity.RoleManager, entity.RoleDriver} {
		d := Guard(false, "", required)
		assert.False(t, d.Allow)
		assert.Equal(t, PathLogin, d.RedirectTo, "requiredRole=%q", required)
	}
}

// Driver pidiendo una página de manager aterriza en su propio dashboard.
func TestGuard_RolDistinto_RedirigeASuDashboard(t *testing.T) {
	d := Guard(true, entity.RoleDriver, entity.RoleManager)
	assert.False(t, d.Allow)
	assert.Equal(t, "/dashboard/driver", d.RedirectTo)
}

// Con sesión y rol correcto (o página sin rol requerido) se renderiza.
func TestGuard_AccesoPermitido(t *testing.T) {
	assert.True(t, Guard(true, entity.RoleManager, entity.RoleManager).Allow)
	assert.True(t, Guard(true, entity.RoleDriver, "").Allow)
}

// Rol desconocido con sesión: el dashboard por defecto cae al login.
func TestGuard_RolDesconocido_CaeAlLogin(t *testing.T) {
	d := Guard(true, "ghost", entity.RoleManager)
	assert.False(t, d.Allow)
	assert.Equal(t, PathLogin, d.RedirectTo)
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolveUnknown
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveUnknown(t *testing.T) {
	assert.Equal(t, PathDashboard, ResolveUnknown(true))
	assert.Equal(t, PathLogin, ResolveUnknown(false))
}
