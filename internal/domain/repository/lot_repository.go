package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// LotRepository define el puerto de persistencia para lotes.
// Create es idempotente por (artículo, batch, vencimiento), con el vencimiento
// ausente coalescido a un único valor vacío.
type LotRepository interface {
	Create(lot *entity.Lot) error
	GetByID(id string) (*entity.Lot, error)
	List() ([]*entity.LotView, error) // unido con el artículo; ordenado por SKU y batch
}
