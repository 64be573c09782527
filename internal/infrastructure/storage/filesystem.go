package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/jhoicas/bodega-api/internal/application/document"
	"github.com/jhoicas/bodega-api/internal/domain"
)

var _ document.BlobStore = (*FilesystemStore)(nil)

// FilesystemStore blob store sobre el sistema de archivos: cada documento se
// escribe una sola vez bajo un locator único (milisegundos + nombre saneado),
// así que subidas concurrentes nunca colisionan.
type FilesystemStore struct {
	baseDir string
}

// NewFilesystemStore crea el directorio base si no existe.
func NewFilesystemStore(baseDir string) (*FilesystemStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de documentos: %w", err)
	}
	return &FilesystemStore{baseDir: baseDir}, nil
}

// Store escribe los bytes y devuelve (locator, mime detectado, tamaño).
func (s *FilesystemStore) Store(content []byte, originalFilename string) (string, string, int64, error) {
	locator := fmt.Sprintf("%d__%s", time.Now().UnixMilli(), sanitizeFilename(originalFilename))
	path := filepath.Join(s.baseDir, locator)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", "", 0, fmt.Errorf("guardar blob: %w", err)
	}
	mime := mimetype.Detect(content).String()
	return locator, mime, int64(len(content)), nil
}

// Read devuelve los bytes del locator, o domain.ErrNotFound si el blob no existe.
func (s *FilesystemStore) Read(locator string) ([]byte, error) {
	// El locator es un nombre plano: cualquier intento de ruta se rechaza.
	if locator == "" || locator != filepath.Base(locator) {
		return nil, domain.ErrNotFound
	}
	content, err := os.ReadFile(filepath.Join(s.baseDir, locator))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("leer blob: %w", err)
	}
	return content, nil
}

// sanitizeFilename neutraliza separadores de ruta y secuencias ".." para que
// el nombre original no pueda escapar del directorio de documentos.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	name = strings.TrimSpace(name)
	if name == "" {
		name = "documento"
	}
	return name
}
