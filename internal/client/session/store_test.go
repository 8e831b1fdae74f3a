package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kossayboubaker/TruckNavi-nouveau/internal/domain/entity"
)

func newTestStorage(t *testing.T) (*FileStorage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewFileStorage(path), path
}

// Tras login y logout no queda sesión ni archivo con las claves.
func TestStore_LoginLuegoLogout_SinRastro(t *testing.T) {
	storage, path := newTestStorage(t)
	store := NewStore(storage, nil, nil)

	user := User{ID: "u1", Role: entity.RoleManager}
	require.NoError(t, store.Login(user, "tok-123"))
	require.True(t, store.IsAuthenticated())

	require.NoError(t, store.Logout())

	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())
	assert.Empty(t, store.Token())
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "el storage no debe conservar token/userId/role")
}

// Logout sobre sesión ya cerrada es un no-op.
func TestStore_LogoutIdempotente(t *testing.T) {
	storage, _ := newTestStorage(t)

	logouts := 0
	store := NewStore(storage, nil, func() { logouts++ })

	require.NoError(t, store.Logout())
	assert.Zero(t, logouts, "logout sin sesión no dispara el hook")

	require.NoError(t, store.Login(User{ID: "u1", Role: entity.RoleDriver}, "tok"))
	require.NoError(t, store.Logout())
	require.NoError(t, store.Logout())
	assert.Equal(t, 1, logouts, "el hook se dispara una sola vez")
}

// Login persiste las tres claves y el restore las recupera sin red.
func TestStore_RestoreFromStorage(t *testing.T) {
	storage, _ := newTestStorage(t)
	first := NewStore(storage, nil, nil)
	require.NoError(t, first.Login(User{ID: "u9", Role: entity.RoleSuperAdmin}, "tok-9"))

	connects := 0
	second := NewStore(storage, func(userID string) {
		connects++
		assert.Equal(t, "u9", userID)
	}, nil)

	require.True(t, second.RestoreFromStorage())
	assert.True(t, second.IsAuthenticated())
	assert.Equal(t, entity.RoleSuperAdmin, second.Role())
	assert.Equal(t, "tok-9", second.Token())
	assert.Equal(t, 1, connects, "el restore levanta el canal de notificaciones")
}

// Storage vacío, parcial o corrupto → queda como no autenticado, sin error.
func TestStore_RestoreFailOpen(t *testing.T) {
	t.Run("sin archivo", func(t *testing.T) {
		storage, _ := newTestStorage(t)
		store := NewStore(storage, nil, nil)
		assert.False(t, store.RestoreFromStorage())
		assert.False(t, store.IsAuthenticated())
	})

	t.Run("claves incompletas", func(t *testing.T) {
		storage, path := newTestStorage(t)
		require.NoError(t, os.WriteFile(path, []byte(`{"token":"tok","userId":""}`), 0o600))
		store := NewStore(storage, nil, nil)
		assert.False(t, store.RestoreFromStorage())
		assert.False(t, store.IsAuthenticated())
	})

	t.Run("json corrupto", func(t *testing.T) {
		storage, path := newTestStorage(t)
		require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o600))
		store := NewStore(storage, nil, nil)
		assert.False(t, store.RestoreFromStorage())
		assert.False(t, store.IsAuthenticated())
	})
}

// El invariante: autenticado si y solo si hay user y token.
func TestStore_InvarianteAutenticacion(t *testing.T) {
	storage, _ := newTestStorage(t)
	store := NewStore(storage, nil, nil)

	assert.False(t, store.IsAuthenticated())
	require.NoError(t, store.Login(User{ID: "u1", Role: entity.RoleDriver}, "tok"))
	assert.True(t, store.IsAuthenticated())
	assert.NotNil(t, store.User())
	assert.NotEmpty(t, store.Token())
}

// Un nuevo login reemplaza el usuario entero, no lo mezcla.
func TestStore_ReLoginReemplazaUsuario(t *testing.T) {
	storage, _ := newTestStorage(t)
	store := NewStore(storage, nil, nil)

	require.NoError(t, store.Login(User{ID: "u1", FirstName: "Ana", Role: entity.RoleManager}, "tok-1"))
	require.NoError(t, store.Login(User{ID: "u2", Role: entity.RoleDriver}, "tok-2"))

	u := store.User()
	require.NotNil(t, u)
	assert.Equal(t, "u2", u.ID)
	assert.Empty(t, u.FirstName, "el usuario anterior no debe filtrarse")
	assert.Equal(t, "tok-2", store.Token())
}
