package masterdata

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// UseCase altas y listados de datos maestros: artículos, ubicaciones y lotes.
// Las altas con clave única duplicada son no-ops silenciosos (insert
// idempotente, no upsert): el repositorio no inserta y no se devuelve error.
type UseCase struct {
	items     repository.ItemRepository
	locations repository.LocationRepository
	lots      repository.LotRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	items repository.ItemRepository,
	locations repository.LocationRepository,
	lots repository.LotRepository,
) *UseCase {
	return &UseCase{items: items, locations: locations, lots: lots}
}

// CreateItem valida y registra un artículo. SKU o nombre vacíos: ErrInvalidInput.
func (uc *UseCase) CreateItem(sku, name string) error {
	sku = strings.TrimSpace(sku)
	name = strings.TrimSpace(name)
	if sku == "" || name == "" {
		return domain.ErrInvalidInput
	}
	return uc.items.Create(&entity.Item{
		ID:        uuid.New().String(),
		SKU:       sku,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	})
}

// ListItems devuelve todos los artículos ordenados por SKU.
func (uc *UseCase) ListItems() ([]*entity.Item, error) {
	return uc.items.List()
}

// CreateLocation valida y registra una ubicación. Código vacío: ErrInvalidInput.
func (uc *UseCase) CreateLocation(code, description string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return domain.ErrInvalidInput
	}
	return uc.locations.Create(&entity.Location{
		ID:          uuid.New().String(),
		Code:        code,
		Description: strings.TrimSpace(description),
		CreatedAt:   time.Now().UTC(),
	})
}

// ListLocations devuelve todas las ubicaciones ordenadas por código.
func (uc *UseCase) ListLocations() ([]*entity.Location, error) {
	return uc.locations.List()
}

// CreateLot valida y registra un lote de un artículo existente.
// Batch vacío: ErrInvalidInput. Artículo inexistente: ErrNotFound.
func (uc *UseCase) CreateLot(itemID, batch string, expiry *time.Time) error {
	batch = strings.TrimSpace(batch)
	if itemID == "" || batch == "" {
		return domain.ErrInvalidInput
	}
	item, err := uc.items.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.lots.Create(&entity.Lot{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Batch:     batch,
		Expiry:    expiry,
		CreatedAt: time.Now().UTC(),
	})
}

// ListLots devuelve todos los lotes unidos con su artículo, ordenados por SKU y batch.
func (uc *UseCase) ListLots() ([]*entity.LotView, error) {
	return uc.lots.List()
}
