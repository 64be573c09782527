package masterdata_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/masterdata"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/infrastructure/memory"
)

func newUseCase(t *testing.T) (*masterdata.UseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return masterdata.NewUseCase(store.Items(), store.Locations(), store.Lots()), store
}

// SKU o nombre vacíos (también solo espacios): ErrInvalidInput.
func TestCreateItem_Validacion(t *testing.T) {
	uc, _ := newUseCase(t)

	assert.ErrorIs(t, uc.CreateItem("", "Harina"), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.CreateItem("SKU-1", "   "), domain.ErrInvalidInput)
}

// Alta duplicada por SKU: no-op silencioso, la lista no crece.
func TestCreateItem_DuplicadoEsNoOp(t *testing.T) {
	uc, _ := newUseCase(t)

	require.NoError(t, uc.CreateItem("SKU-1", "Harina"))
	require.NoError(t, uc.CreateItem("SKU-1", "Harina integral"))

	items, err := uc.ListItems()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Harina", items[0].Name, "la primera alta debe prevalecer")
}

// Los listados salen ordenados por SKU, no por orden de alta.
func TestListItems_OrdenPorSKU(t *testing.T) {
	uc, _ := newUseCase(t)

	require.NoError(t, uc.CreateItem("SKU-9", "Azúcar"))
	require.NoError(t, uc.CreateItem("SKU-1", "Harina"))

	items, err := uc.ListItems()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "SKU-1", items[0].SKU)
	assert.Equal(t, "SKU-9", items[1].SKU)
}

// Alta duplicada por código de ubicación: no-op silencioso.
func TestCreateLocation_DuplicadoEsNoOp(t *testing.T) {
	uc, _ := newUseCase(t)

	require.NoError(t, uc.CreateLocation("A-01", "Pasillo A"))
	require.NoError(t, uc.CreateLocation("A-01", "otro texto"))

	locations, err := uc.ListLocations()
	require.NoError(t, err)
	assert.Len(t, locations, 1)
}

// Un lote requiere un artículo existente.
func TestCreateLot_ArticuloInexistente(t *testing.T) {
	uc, _ := newUseCase(t)

	err := uc.CreateLot("no-existe", "L-2024-01", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La unicidad del lote es (artículo, batch, vencimiento), con el vencimiento
// ausente normalizado a un único valor vacío: dos altas sin vencimiento
// colisionan, pero un vencimiento distinto crea otro lote.
func TestCreateLot_UnicidadConVencimientoAusente(t *testing.T) {
	uc, _ := newUseCase(t)
	require.NoError(t, uc.CreateItem("SKU-1", "Harina"))
	items, err := uc.ListItems()
	require.NoError(t, err)
	itemID := items[0].ID

	require.NoError(t, uc.CreateLot(itemID, "L-2024-01", nil))
	require.NoError(t, uc.CreateLot(itemID, "L-2024-01", nil)) // duplicado: no-op

	expiry := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	require.NoError(t, uc.CreateLot(itemID, "L-2024-01", &expiry)) // otro lote

	lots, err := uc.ListLots()
	require.NoError(t, err)
	require.Len(t, lots, 2)
	assert.Equal(t, "SKU-1", lots[0].SKU, "el listado une el lote con su artículo")
}
