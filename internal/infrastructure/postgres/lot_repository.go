package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.LotRepository = (*LotRepo)(nil)

// LotRepo implementación del puerto LotRepository sobre PostgreSQL.
type LotRepo struct {
	q Querier
}

// NewLotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLotRepository(q Querier) *LotRepo {
	return &LotRepo{q: q}
}

// Create inserta el lote. La unicidad la da el índice sobre
// (item_id, batch, COALESCE(expiry, '0001-01-01')): un duplicado, incluido el
// caso de dos lotes sin vencimiento, es un no-op silencioso.
func (r *LotRepo) Create(lot *entity.Lot) error {
	query := `
		INSERT INTO lots (id, item_id, batch, expiry, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		lot.ID, lot.ItemID, lot.Batch, lot.Expiry, lot.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("insert lot: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por ID; nil si no existe.
func (r *LotRepo) GetByID(id string) (*entity.Lot, error) {
	query := `
		SELECT id, item_id, batch, expiry, created_at
		FROM lots WHERE id = $1`
	var l entity.Lot
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.ItemID, &l.Batch, &l.Expiry, &l.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lot: %w", err)
	}
	return &l, nil
}

// List devuelve todos los lotes unidos con su artículo, ordenados por SKU y batch.
func (r *LotRepo) List() ([]*entity.LotView, error) {
	query := `
		SELECT l.id, l.item_id, i.sku, i.name, l.batch, l.expiry, l.created_at
		FROM lots l
		JOIN items i ON i.id = l.item_id
		ORDER BY i.sku, l.batch`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer rows.Close()
	var list []*entity.LotView
	for rows.Next() {
		var v entity.LotView
		if err := rows.Scan(&v.ID, &v.ItemID, &v.SKU, &v.ItemName, &v.Batch, &v.Expiry, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lot: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
