package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para artículos.
// Create es idempotente por SKU: un duplicado no inserta fila ni devuelve error.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	List() ([]*entity.Item, error) // ordenado por SKU
}
