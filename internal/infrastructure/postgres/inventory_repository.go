package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// GetForUpdate obtiene la línea y bloquea la fila (SELECT FOR UPDATE), de modo
// que la secuencia verificar-y-aplicar del ledger quede serializada por
// (lote, ubicación). Si la línea no existe todavía, primero la materializa en
// cero con ON CONFLICT DO NOTHING y vuelve a seleccionar con bloqueo: dos
// transacciones que estrenan la misma línea deben serializarse sobre una misma
// fila, si no la segunda pisaría el delta de la primera con su total absoluto.
func (r *InventoryRepo) GetForUpdate(lotID, locationID string) (*entity.InventoryLine, error) {
	query := `
		SELECT lot_id, location_id, pallets, cases, updated_at
		FROM inventory WHERE lot_id = $1 AND location_id = $2
		FOR UPDATE`
	var line entity.InventoryLine
	err := r.q.QueryRow(context.Background(), query, lotID, locationID).Scan(
		&line.LotID, &line.LocationID, &line.Pallets, &line.Cases, &line.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		seed := `
			INSERT INTO inventory (lot_id, location_id, pallets, cases, updated_at)
			VALUES ($1, $2, 0, 0, now())
			ON CONFLICT (lot_id, location_id) DO NOTHING`
		if _, err := r.q.Exec(context.Background(), seed, lotID, locationID); err != nil {
			return nil, fmt.Errorf("seed inventory line: %w", err)
		}
		err = r.q.QueryRow(context.Background(), query, lotID, locationID).Scan(
			&line.LotID, &line.LocationID, &line.Pallets, &line.Cases, &line.UpdatedAt,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("get inventory line for update: %w", err)
	}
	return &line, nil
}

// Upsert inserta o actualiza las cantidades de la línea (por lote y ubicación).
func (r *InventoryRepo) Upsert(line *entity.InventoryLine) error {
	query := `
		INSERT INTO inventory (lot_id, location_id, pallets, cases, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (lot_id, location_id)
		DO UPDATE SET pallets = EXCLUDED.pallets, cases = EXCLUDED.cases, updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		line.LotID, line.LocationID, line.Pallets, line.Cases, line.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert inventory line: %w", err)
	}
	return nil
}

// ListCurrent devuelve las líneas con stock distinto de cero, unidas para
// mostrar. Una fila con ambas cantidades en cero puede persistir en la tabla
// pero no forma parte del stock actual.
func (r *InventoryRepo) ListCurrent() ([]*entity.InventoryView, error) {
	query := `
		SELECT
			inv.lot_id,
			inv.location_id,
			i.sku,
			i.name,
			l.batch,
			l.expiry,
			loc.code,
			inv.pallets,
			inv.cases,
			inv.updated_at
		FROM inventory inv
		JOIN lots l ON l.id = inv.lot_id
		JOIN items i ON i.id = l.item_id
		JOIN locations loc ON loc.id = inv.location_id
		WHERE (inv.pallets <> 0 OR inv.cases <> 0)
		ORDER BY i.sku, l.batch, loc.code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list current inventory: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryView
	for rows.Next() {
		var v entity.InventoryView
		if err := rows.Scan(
			&v.LotID, &v.LocationID, &v.SKU, &v.ItemName, &v.Batch, &v.Expiry,
			&v.LocationCode, &v.Pallets, &v.Cases, &v.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inventory line: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
