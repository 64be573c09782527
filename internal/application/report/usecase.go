package report

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// Row fila agregada de un reporte: totales de estibas y cajas por grupo.
// Group es el destinatario o el SKU según el reporte; el partner vacío forma
// su propio grupo.
type Row struct {
	Group   string `json:"group"`
	Pallets int    `json:"pallets"`
	Cases   int    `json:"cases"`
}

// UseCase agregaciones de solo lectura sobre el log de movimientos. Nunca
// muta el ledger y su salida no depende del orden de las filas en el storage.
type UseCase struct {
	movements repository.MovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(movements repository.MovementRepository) *UseCase {
	return &UseCase{movements: movements}
}

// ByPartner suma estibas y cajas de los movimientos OUT agrupados por
// destinatario, opcionalmente dentro de un rango de fechas inclusivo.
func (uc *UseCase) ByPartner(ctx context.Context, from, to *time.Time) ([]Row, error) {
	return uc.aggregate(from, to, func(m *entity.MovementView) string { return m.Partner })
}

// ByItem suma estibas y cajas de los movimientos OUT agrupados por SKU del artículo.
func (uc *UseCase) ByItem(ctx context.Context, from, to *time.Time) ([]Row, error) {
	return uc.aggregate(from, to, func(m *entity.MovementView) string { return m.SKU })
}

func (uc *UseCase) aggregate(from, to *time.Time, key func(*entity.MovementView) string) ([]Row, error) {
	all, err := uc.movements.ListAll()
	if err != nil {
		return nil, err
	}
	groups := make(map[string]*Row)
	for _, m := range all {
		if m.Direction != entity.DirectionOut {
			continue
		}
		if from != nil && m.Date.Before(*from) {
			continue
		}
		if to != nil && m.Date.After(*to) {
			continue
		}
		k := key(m)
		row, ok := groups[k]
		if !ok {
			row = &Row{Group: k}
			groups[k] = row
		}
		row.Pallets += m.Pallets
		row.Cases += m.Cases
	}
	rows := make([]Row, 0, len(groups))
	for _, row := range groups {
		rows = append(rows, *row)
	}
	// Orden estable por grupo para que la salida sea determinista.
	sort.Slice(rows, func(i, j int) bool { return rows[i].Group < rows[j].Group })
	return rows, nil
}
