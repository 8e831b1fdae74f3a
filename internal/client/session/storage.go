package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage persistencia durable de las credenciales de sesión. Las tres
// claves (token, userId, role) se guardan y se borran juntas.
type Storage interface {
	Save(token, userID, role string) error
	Load() (token, userID, role string, err error)
	Clear() error
}

// storedSession formato en disco. Las claves replican las del panel web.
type storedSession struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Role   string `json:"role"`
}

// FileStorage guarda la sesión en un archivo JSON con permisos 0600.
type FileStorage struct {
	path string
}

var _ Storage = (*FileStorage)(nil)

// NewFileStorage construye el storage sobre la ruta dada.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Save escribe las tres claves de la sesión.
func (s *FileStorage) Save(token, userID, role string) error {
	data, err := json.Marshal(storedSession{Token: token, UserID: userID, Role: role})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Load lee la sesión guardada. Un archivo ausente no es un error: devuelve
// los tres campos vacíos y el llamador decide.
func (s *FileStorage) Load() (string, string, string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", "", nil
		}
		return "", "", "", err
	}
	var st storedSession
	if err := json.Unmarshal(data, &st); err != nil {
		return "", "", "", err
	}
	return st.Token, st.UserID, st.Role, nil
}

// Clear elimina el archivo. Idempotente.
func (s *FileStorage) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
