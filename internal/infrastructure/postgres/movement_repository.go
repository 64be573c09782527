package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del log de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: el log es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (id, direction, lot_id, location_id, pallets, cases, partner, reference, notes, move_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Direction, movement.LotID, movement.LocationID,
		movement.Pallets, movement.Cases, movement.Partner, movement.Reference,
		movement.Notes, movement.Date, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID; nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `
		SELECT id, direction, lot_id, location_id, pallets, cases, partner, reference, notes, move_date, created_at
		FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Direction, &m.LotID, &m.LocationID, &m.Pallets, &m.Cases,
		&m.Partner, &m.Reference, &m.Notes, &m.Date, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// ListAll devuelve todos los movimientos, más recientes primero, unidos con
// artículo, lote y ubicación para mostrar.
func (r *MovementRepo) ListAll() ([]*entity.MovementView, error) {
	query := `
		SELECT
			m.id,
			m.direction,
			m.lot_id,
			m.location_id,
			m.pallets,
			m.cases,
			m.partner,
			m.reference,
			m.notes,
			m.move_date,
			m.created_at,
			i.sku,
			i.name,
			l.batch,
			l.expiry,
			loc.code
		FROM movements m
		JOIN lots l ON l.id = m.lot_id
		JOIN items i ON i.id = l.item_id
		JOIN locations loc ON loc.id = m.location_id
		ORDER BY m.created_at DESC, m.id DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementView
	for rows.Next() {
		var v entity.MovementView
		if err := rows.Scan(
			&v.ID, &v.Direction, &v.LotID, &v.LocationID, &v.Pallets, &v.Cases,
			&v.Partner, &v.Reference, &v.Notes, &v.Date, &v.CreatedAt,
			&v.SKU, &v.ItemName, &v.Batch, &v.Expiry, &v.LocationCode,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
