package session

import "sync"

// User usuario autenticado visto desde el cliente. Inmutable durante la
// sesión; se reemplaza entero en cada login.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Role      string
	ImageRef  string
}

// Store única fuente de verdad sobre quién está logueado. El invariante es
// que IsAuthenticated es verdadero si y solo si user y token son no vacíos;
// las únicas mutaciones permitidas son Login, Logout y RestoreFromStorage.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	user    *User
	token   string

	// onLogin/onLogout conectan y desconectan el canal de notificaciones.
	onLogin  func(userID string)
	onLogout func()
}

// NewStore construye el store sobre el storage dado. Los hooks son
// opcionales y se invocan fuera del lock.
func NewStore(storage Storage, onLogin func(userID string), onLogout func()) *Store {
	return &Store{storage: storage, onLogin: onLogin, onLogout: onLogout}
}

// Login fija el usuario y el token, persiste las tres claves y levanta el
// canal de notificaciones del usuario.
func (s *Store) Login(user User, token string) error {
	s.mu.Lock()
	u := user
	s.user = &u
	s.token = token
	err := s.storage.Save(token, user.ID, user.Role)
	s.mu.Unlock()

	if s.onLogin != nil {
		s.onLogin(user.ID)
	}
	return err
}

// Logout limpia la sesión y el storage y tira el canal. Idempotente: sobre
// una sesión ya cerrada no hace nada.
func (s *Store) Logout() error {
	s.mu.Lock()
	if s.user == nil && s.token == "" {
		s.mu.Unlock()
		return nil
	}
	s.user = nil
	s.token = ""
	err := s.storage.Clear()
	s.mu.Unlock()

	if s.onLogout != nil {
		s.onLogout()
	}
	return err
}

// RestoreFromStorage reconstruye una sesión mínima desde el storage sin
// consultar al servidor (restore optimista). Si falta cualquiera de las
// tres claves o el storage está corrupto, queda como no autenticado; nunca
// devuelve error por datos inválidos.
func (s *Store) RestoreFromStorage() bool {
	token, userID, role, err := s.storage.Load()
	if err != nil || token == "" || userID == "" || role == "" {
		return false
	}

	s.mu.Lock()
	s.user = &User{ID: userID, Role: role}
	s.token = token
	s.mu.Unlock()

	if s.onLogin != nil {
		s.onLogin(userID)
	}
	return true
}

// IsAuthenticated indica si hay sesión activa.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.token != ""
}

// User devuelve una copia del usuario actual, o nil sin sesión.
func (s *Store) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token devuelve el token de sesión, vacío sin sesión.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Role devuelve el rol actual, vacío sin sesión.
func (s *Store) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Role
}
