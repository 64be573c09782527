package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// DocumentRepository define el puerto de persistencia para los metadatos de
// documentos adjuntos a movimientos.
type DocumentRepository interface {
	Create(document *entity.Document) error
	GetByID(id string) (*entity.Document, error)
	ListByMovement(movementID string) ([]*entity.Document, error) // más recientes primero
}
