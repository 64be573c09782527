package repository

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// MovementRepository define el puerto del log de movimientos (append-only).
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	ListAll() ([]*entity.MovementView, error) // más recientes primero, unido para mostrar
}
