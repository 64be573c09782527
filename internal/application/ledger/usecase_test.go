package ledger_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appledger "github.com/jhoicas/bodega-api/internal/application/ledger"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	domledger "github.com/jhoicas/bodega-api/internal/domain/ledger"
	"github.com/jhoicas/bodega-api/internal/infrastructure/memory"
)

const (
	testLotID      = "00000000-0000-0000-0000-00000000000a"
	testLocationID = "00000000-0000-0000-0000-00000000000b"
)

// newLedger arma un ledger sobre el store en memoria con un artículo, un lote
// y una ubicación ya registrados.
func newLedger(t *testing.T) (*appledger.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	now := time.Now().UTC()
	require.NoError(t, store.Items().Create(&entity.Item{ID: "item-1", SKU: "SKU-1", Name: "Harina", CreatedAt: now}))
	require.NoError(t, store.Lots().Create(&entity.Lot{ID: testLotID, ItemID: "item-1", Batch: "L-2024-01", CreatedAt: now}))
	require.NoError(t, store.Locations().Create(&entity.Location{ID: testLocationID, Code: "A-01", CreatedAt: now}))

	uc := appledger.NewUseCase(store, store.Lots(), store.Locations(), store.Movements(), store.Inventory())
	return uc, store
}

func book(t *testing.T, uc *appledger.UseCase, direction string, pallets, cases int) (string, error) {
	t.Helper()
	return uc.BookMovement(context.Background(), appledger.BookMovementInput{
		Direction:  direction,
		LotID:      testLotID,
		LocationID: testLocationID,
		Pallets:    pallets,
		Cases:      cases,
		Partner:    "Depósito Central",
	})
}

// Entrada seguida de salida parcial: el stock neto queda en (7, 3).
func TestBookMovement_EntradaYSalida(t *testing.T) {
	uc, _ := newLedger(t)

	_, err := book(t, uc, entity.DirectionIn, 10, 5)
	require.NoError(t, err)
	_, err = book(t, uc, entity.DirectionOut, 3, 2)
	require.NoError(t, err)

	lines, err := uc.CurrentInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Pallets)
	assert.Equal(t, 3, lines[0].Cases)
	assert.Equal(t, "SKU-1", lines[0].SKU)
	assert.Equal(t, "A-01", lines[0].LocationCode)
}

// Una salida que excede el stock falla con ErrInsufficientStock y no deja
// rastro: ni movimiento en el log ni cambio en la proyección.
func TestBookMovement_SalidaExcedida(t *testing.T) {
	uc, _ := newLedger(t)

	_, err := book(t, uc, entity.DirectionIn, 10, 5)
	require.NoError(t, err)

	_, err = book(t, uc, entity.DirectionOut, 100, 0)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	movements, err := uc.ListMovements(context.Background(), appledger.MovementFilter{})
	require.NoError(t, err)
	assert.Len(t, movements, 1, "la salida rechazada no debe quedar en el log")

	lines, err := uc.CurrentInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 10, lines[0].Pallets)
	assert.Equal(t, 5, lines[0].Cases)
}

// Estibas y cajas se verifican por separado: con (10, 0) en stock, sacar
// (1, 1) falla aunque sobren estibas.
func TestBookMovement_UnidadesIndependientes(t *testing.T) {
	uc, _ := newLedger(t)

	_, err := book(t, uc, entity.DirectionIn, 10, 0)
	require.NoError(t, err)

	_, err = book(t, uc, entity.DirectionOut, 1, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Sacar exactamente el stock disponible es válido y deja la línea en cero,
// que desaparece de la vista de stock actual.
func TestBookMovement_SalidaExacta(t *testing.T) {
	uc, _ := newLedger(t)

	_, err := book(t, uc, entity.DirectionIn, 4, 2)
	require.NoError(t, err)
	_, err = book(t, uc, entity.DirectionOut, 4, 2)
	require.NoError(t, err)

	lines, err := uc.CurrentInventory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lines, "la línea en cero no forma parte del stock actual")
}

// Cantidades inválidas: negativas o ambas en cero.
func TestBookMovement_CantidadesInvalidas(t *testing.T) {
	uc, _ := newLedger(t)

	_, err := book(t, uc, entity.DirectionIn, 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = book(t, uc, entity.DirectionIn, -1, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = book(t, uc, "TRANSFER", 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Lote o ubicación inexistentes: ErrNotFound.
func TestBookMovement_ReferenciasInexistentes(t *testing.T) {
	uc, _ := newLedger(t)

	_, err := uc.BookMovement(context.Background(), appledger.BookMovementInput{
		Direction:  entity.DirectionIn,
		LotID:      "no-existe",
		LocationID: testLocationID,
		Pallets:    1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.BookMovement(context.Background(), appledger.BookMovementInput{
		Direction:  entity.DirectionIn,
		LotID:      testLotID,
		LocationID: "no-existe",
		Pallets:    1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La proyección incremental debe coincidir con reproducir el log completo.
func TestBookMovement_ProyeccionCoincideConReplay(t *testing.T) {
	uc, _ := newLedger(t)

	_, err := book(t, uc, entity.DirectionIn, 10, 5)
	require.NoError(t, err)
	_, err = book(t, uc, entity.DirectionOut, 3, 2)
	require.NoError(t, err)
	_, err = book(t, uc, entity.DirectionIn, 0, 4)
	require.NoError(t, err)
	_, err = book(t, uc, entity.DirectionOut, 100, 0) // rechazada
	require.Error(t, err)

	views, err := uc.ListMovements(context.Background(), appledger.MovementFilter{})
	require.NoError(t, err)
	log := make([]*entity.Movement, 0, len(views))
	for _, v := range views {
		m := v.Movement
		log = append(log, &m)
	}
	replayed := domledger.Replay(log)

	lines, err := uc.CurrentInventory(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	got := replayed[domledger.LineKey{LotID: testLotID, LocationID: testLocationID}]
	assert.Equal(t, got.Pallets, lines[0].Pallets)
	assert.Equal(t, got.Cases, lines[0].Cases)
}

// Los movimientos se listan más recientes primero y los filtros de dirección,
// partner (subcadena, sin mayúsculas) y rango de fechas se combinan.
func TestListMovements_Filtros(t *testing.T) {
	uc, _ := newLedger(t)
	ctx := context.Background()

	_, err := uc.BookMovement(ctx, appledger.BookMovementInput{
		Direction: entity.DirectionIn, LotID: testLotID, LocationID: testLocationID,
		Pallets: 10, Partner: "Proveedor Sur",
		Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = uc.BookMovement(ctx, appledger.BookMovementInput{
		Direction: entity.DirectionOut, LotID: testLotID, LocationID: testLocationID,
		Pallets: 2, Partner: "Cliente Norte",
		Date: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	all, err := uc.ListMovements(ctx, appledger.MovementFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, entity.DirectionOut, all[0].Direction, "el más reciente primero")

	outs, err := uc.ListMovements(ctx, appledger.MovementFilter{Direction: entity.DirectionOut})
	require.NoError(t, err)
	require.Len(t, outs, 1)

	byPartner, err := uc.ListMovements(ctx, appledger.MovementFilter{Partner: "norte"})
	require.NoError(t, err)
	require.Len(t, byPartner, 1)
	assert.Equal(t, "Cliente Norte", byPartner[0].Partner)

	from := time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	inRange, err := uc.ListMovements(ctx, appledger.MovementFilter{DateFrom: &from, DateTo: &to})
	require.NoError(t, err)
	require.Len(t, inRange, 1, "el rango de fechas es inclusivo en ambos extremos")
}

// Dos salidas concurrentes contra stock para una sola: exactamente una gana.
func TestBookMovement_SalidasConcurrentes(t *testing.T) {
	uc, _ := newLedger(t)

	_, err := book(t, uc, entity.DirectionIn, 1, 0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = book(t, uc, entity.DirectionOut, 1, 0)
		}(i)
	}
	wg.Wait()

	okCount := 0
	for _, err := range errs {
		if err == nil {
			okCount++
		} else {
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 1, okCount, "solo una de las dos salidas debe concretarse")

	lines, err := uc.CurrentInventory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lines)
}
