package ledger

import "github.com/jhoicas/bodega-api/internal/domain/entity"

// LineKey identifica una línea de inventario: un lote en una ubicación.
type LineKey struct {
	LotID      string
	LocationID string
}

// Totals cantidades acumuladas de una línea.
type Totals struct {
	Pallets int
	Cases   int
}

// Replay recalcula la proyección de inventario desde cero a partir del log de
// movimientos: suma de entradas menos suma de salidas por (lote, ubicación).
// La proyección incremental que mantiene el ledger debe coincidir siempre con
// este resultado; las líneas ausentes del mapa equivalen a (0, 0).
func Replay(movements []*entity.Movement) map[LineKey]Totals {
	acc := make(map[LineKey]Totals)
	for _, m := range movements {
		key := LineKey{LotID: m.LotID, LocationID: m.LocationID}
		t := acc[key]
		switch m.Direction {
		case entity.DirectionIn:
			t.Pallets += m.Pallets
			t.Cases += m.Cases
		case entity.DirectionOut:
			t.Pallets -= m.Pallets
			t.Cases -= m.Cases
		}
		acc[key] = t
	}
	return acc
}
