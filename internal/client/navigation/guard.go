package navigation

// Decision resultado del guard para una página protegida: renderizar o
// redirigir a RedirectTo.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Guard evalúa el acceso a una página protegida. Se reevalúa en cada
// navegación, nunca se cachea: la sesión y el rol pueden cambiar entre
// renders.
//
// Sin sesión siempre redirige al login (la ruta pedida no se conserva).
// Con sesión y requiredRole distinto del rol del usuario, redirige al
// dashboard propio del rol. En el resto de casos deja pasar.
func Guard(authenticated bool, role, requiredRole string) Decision {
	if !authenticated {
		return Decision{RedirectTo: PathLogin}
	}
	if requiredRole != "" && role != requiredRole {
		return Decision{RedirectTo: DefaultDashboard(role)}
	}
	return Decision{Allow: true}
}
