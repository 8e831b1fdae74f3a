package navigation

import "github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"

// Tipos de entrada del menú lateral.
const (
	EntryCollapse = "collapse"
	EntryTitle    = "title"
	EntryDivider  = "divider"
)

// Rutas fijas del shell.
const (
	PathLogin          = "/auth/login"
	PathRegister       = "/auth/register"
	PathForgotPassword = "/auth/forgot-password"
	PathResetPassword  = "/auth/reset-password"
	PathGoogleCallback = "/auth/google/callback"
	PathDashboard      = "/dashboard"
)

// RouteEntry entrada navegable del menú. El orden del slice es el orden de
// render. Toda entrada collapse sin submenú lleva Path.
type RouteEntry struct {
	Key          string
	Type         string
	NameKey      string
	Icon         string
	Path         string
	RequiredRole string
	Submenu      []RouteEntry
}

// Tablas estáticas por rol. RoutesFor devuelve siempre el mismo slice para
// un rol dado; los llamadores no deben mutarlo.
var (
	superAdminRoutes = []RouteEntry{
		{Key: "dashboard", Type: EntryCollapse, NameKey: "sidenav.dashboard", Icon: "dashboard", Path: "/dashboard/superadmin", RequiredRole: entity.RoleSuperAdmin},
		{Key: "fleet-title", Type: EntryTitle, NameKey: "sidenav.fleet"},
		{Key: "trips", Type: EntryCollapse, NameKey: "sidenav.trips", Icon: "route", Path: "/trips", RequiredRole: entity.RoleSuperAdmin},
		{Key: "drivers", Type: EntryCollapse, NameKey: "sidenav.drivers", Icon: "group", Path: "/drivers", RequiredRole: entity.RoleSuperAdmin},
		{Key: "admin-divider", Type: EntryDivider},
		{Key: "company", Type: EntryCollapse, NameKey: "sidenav.company", Icon: "business", Path: "/company-profile", RequiredRole: entity.RoleSuperAdmin},
		{Key: "profile", Type: EntryCollapse, NameKey: "sidenav.profile", Icon: "person", Path: "/profile"},
	}

	managerRoutes = []RouteEntry{
		{Key: "dashboard", Type: EntryCollapse, NameKey: "sidenav.dashboard", Icon: "dashboard", Path: "/dashboard/manager", RequiredRole: entity.RoleManager},
		{Key: "fleet-title", Type: EntryTitle, NameKey: "sidenav.fleet"},
		{Key: "trips", Type: EntryCollapse, NameKey: "sidenav.trips", Icon: "route", Path: "/trips", RequiredRole: entity.RoleManager},
		{Key: "drivers", Type: EntryCollapse, NameKey: "sidenav.drivers", Icon: "group", Path: "/drivers", RequiredRole: entity.RoleManager},
		{Key: "leaves", Type: EntryCollapse, NameKey: "sidenav.leaves", Icon: "event_busy", Path: "/leaves", RequiredRole: entity.RoleManager},
		{Key: "profile-divider", Type: EntryDivider},
		{Key: "profile", Type: EntryCollapse, NameKey: "sidenav.profile", Icon: "person", Path: "/profile"},
	}

	driverRoutes = []RouteEntry{
		{Key: "dashboard", Type: EntryCollapse, NameKey: "sidenav.dashboard", Icon: "dashboard", Path: "/dashboard/driver", RequiredRole: entity.RoleDriver},
		{Key: "my-trips", Type: EntryCollapse, NameKey: "sidenav.my_trips", Icon: "route", Path: "/my-trips", RequiredRole: entity.RoleDriver},
		{Key: "my-leaves", Type: EntryCollapse, NameKey: "sidenav.my_leaves", Icon: "event_busy", Path: "/my-leaves", RequiredRole: entity.RoleDriver},
		{Key: "profile-divider", Type: EntryDivider},
		{Key: "profile", Type: EntryCollapse, NameKey: "sidenav.profile", Icon: "person", Path: "/profile"},
	}
)

// RoutesFor mapea rol a su tabla de rutas. Función total sobre el enum
// cerrado de roles: un rol desconocido o vacío devuelve nil, sin navegación
// posible (política fail-closed, el usuario queda fuera de las páginas del
// panel aunque esté autenticado).
func RoutesFor(role string) []RouteEntry {
	switch role {
	case entity.RoleSuperAdmin:
		return superAdminRoutes
	case entity.RoleManager:
		return managerRoutes
	case entity.RoleDriver:
		return driverRoutes
	default:
		return nil
	}
}

// DefaultDashboard ruta de aterrizaje de cada rol. Rol desconocido cae al
// login, coherente con RoutesFor.
func DefaultDashboard(role string) string {
	switch role {
	case entity.RoleSuperAdmin:
		return "/dashboard/superadmin"
	case entity.RoleManager:
		return "/dashboard/manager"
	case entity.RoleDriver:
		return "/dashboard/driver"
	default:
		return PathLogin
	}
}

// ResolveUnknown destino para una ruta que no existe: al dashboard si hay
// sesión, al login si no.
func ResolveUnknown(authenticated bool) string {
	if authenticated {
		return PathDashboard
	}
	return PathLogin
}
