// Package tokenstore persiste la credencial bearer del cliente en un archivo
// local, el único estado que sobrevive a un reinicio de la aplicación.
package tokenstore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jhoicas/Inventario-cli/internal/application/ports"
)

// Verificar en tiempo de compilación que FileStore implementa el puerto.
var _ ports.TokenStore = (*FileStore)(nil)

// FileStore guarda el token en un archivo con permisos 0600.
// Hay a lo sumo una credencial activa por contexto: Set reemplaza, Clear borra.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore construye el store sobre la ruta dada (no crea nada todavía).
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get devuelve el token almacenado y true, o ("", false) si no hay archivo
// o está vacío. Un archivo ilegible se trata como ausencia de token.
func (s *FileStore) Get() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", false
	}
	return token, true
}

// Set reemplaza el token almacenado, creando el directorio si hace falta.
func (s *FileStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear elimina el token. Idempotente: si no existe el archivo no es un error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
