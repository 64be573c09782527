package report_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/report"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/infrastructure/memory"
)

func seed(t *testing.T, store *memory.Store, direction, partner, sku string, pallets, cases int, date time.Time) {
	t.Helper()
	lotID := "lote-" + sku
	require.NoError(t, store.Items().Create(&entity.Item{ID: "item-" + sku, SKU: sku, Name: sku}))
	require.NoError(t, store.Lots().Create(&entity.Lot{ID: lotID, ItemID: "item-" + sku, Batch: "L1"}))
	require.NoError(t, store.Movements().Create(&entity.Movement{
		ID:         partner + sku + date.Format("20060102") + direction,
		Direction:  direction,
		LotID:      lotID,
		LocationID: "ub-1",
		Pallets:    pallets,
		Cases:      cases,
		Partner:    partner,
		Date:       date,
	}))
}

var agosto = time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

// Dos salidas al mismo destinatario se agregan en una sola fila; las entradas
// no cuentan.
func TestByPartner_Agregacion(t *testing.T) {
	store := memory.NewStore()
	seed(t, store, entity.DirectionOut, "Bob", "SKU-1", 3, 2, agosto)
	seed(t, store, entity.DirectionOut, "Bob", "SKU-2", 4, 1, agosto)
	seed(t, store, entity.DirectionOut, "Alice", "SKU-1", 1, 0, agosto)
	seed(t, store, entity.DirectionIn, "Bob", "SKU-1", 50, 50, agosto)

	uc := report.NewUseCase(store.Movements())
	rows, err := uc.ByPartner(context.Background(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []report.Row{
		{Group: "Alice", Pallets: 1, Cases: 0},
		{Group: "Bob", Pallets: 7, Cases: 3},
	}, rows, "filas ordenadas por grupo")
}

// El partner vacío forma su propio grupo en lugar de perderse.
func TestByPartner_PartnerVacio(t *testing.T) {
	store := memory.NewStore()
	seed(t, store, entity.DirectionOut, "", "SKU-1", 2, 0, agosto)

	uc := report.NewUseCase(store.Movements())
	rows, err := uc.ByPartner(context.Background(), nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Group)
	assert.Equal(t, 2, rows[0].Pallets)
}

// Agrupación por SKU con rango de fechas inclusivo.
func TestByItem_RangoDeFechas(t *testing.T) {
	store := memory.NewStore()
	seed(t, store, entity.DirectionOut, "Bob", "SKU-1", 1, 0, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	seed(t, store, entity.DirectionOut, "Bob", "SKU-1", 2, 0, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))
	seed(t, store, entity.DirectionOut, "Bob", "SKU-1", 4, 0, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))

	from := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	uc := report.NewUseCase(store.Movements())
	rows, err := uc.ByItem(context.Background(), &from, &to)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 6, rows[0].Pallets, "ambos extremos del rango son inclusivos")
}

// El CSV lleva encabezado y una fila por grupo.
func TestWriteCSV(t *testing.T) {
	rows := []report.Row{
		{Group: "Alice", Pallets: 1, Cases: 0},
		{Group: "Bob", Pallets: 7, Cases: 3},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, "partner", rows))

	assert.Equal(t, "partner,pallets,cases\nAlice,1,0\nBob,7,3\n", buf.String())
}
