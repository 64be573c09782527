package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// LocationRepository define el puerto de persistencia para ubicaciones.
// Create es idempotente por código: un duplicado no inserta fila ni devuelve error.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	List() ([]*entity.Location, error) // ordenado por código
}
