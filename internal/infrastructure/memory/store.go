package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/bodega-api/internal/application/ledger"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*Store)(nil)

// Store persistencia en memoria para todos los puertos del dominio, pensada
// para los tests y el modo demo (STORAGE_DRIVER=memory). Un único mutex
// serializa todas las operaciones, así que la secuencia verificar-y-aplicar
// del ledger queda dentro de una sola sección crítica.
type Store struct {
	mu        sync.Mutex
	items     []*entity.Item
	locations []*entity.Location
	lots      []*entity.Lot
	inventory map[lineKey]*entity.InventoryLine
	movements []*entity.Movement
	documents []*entity.Document
}

type lineKey struct {
	lotID      string
	locationID string
}

// NewStore crea el store vacío.
func NewStore() *Store {
	return &Store{inventory: make(map[lineKey]*entity.InventoryLine)}
}

// Items devuelve el adaptador del puerto ItemRepository.
func (s *Store) Items() repository.ItemRepository { return &itemRepo{s: s} }

// Locations devuelve el adaptador del puerto LocationRepository.
func (s *Store) Locations() repository.LocationRepository { return &locationRepo{s: s} }

// Lots devuelve el adaptador del puerto LotRepository.
func (s *Store) Lots() repository.LotRepository { return &lotRepo{s: s} }

// Inventory devuelve el adaptador del puerto InventoryRepository.
func (s *Store) Inventory() repository.InventoryRepository { return &inventoryRepo{s: s} }

// Movements devuelve el adaptador del puerto MovementRepository.
func (s *Store) Movements() repository.MovementRepository { return &movementRepo{s: s} }

// Documents devuelve el adaptador del puerto DocumentRepository.
func (s *Store) Documents() repository.DocumentRepository { return &documentRepo{s: s} }

// Run ejecuta fn bajo el mutex del store con repos que no vuelven a tomarlo.
// Si fn falla se restaura el estado previo de inventario y movimientos, de
// modo que el booking sea todo-o-nada igual que en la transacción SQL.
func (s *Store) Run(ctx context.Context, fn func(
	movements repository.MovementRepository,
	inventory repository.InventoryRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	invSnapshot := make(map[lineKey]*entity.InventoryLine, len(s.inventory))
	for k, line := range s.inventory {
		copied := *line
		invSnapshot[k] = &copied
	}
	movCount := len(s.movements)

	err := fn(&movementRepo{s: s, inTx: true}, &inventoryRepo{s: s, inTx: true})
	if err != nil {
		s.inventory = invSnapshot
		s.movements = s.movements[:movCount]
		return err
	}
	return nil
}

// lock toma el mutex salvo que ya se sostenga dentro de Run.
func (s *Store) lock(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// coalesceExpiry normaliza el vencimiento ausente a un único valor vacío para
// la unicidad del lote.
func coalesceExpiry(expiry *time.Time) time.Time {
	if expiry == nil {
		return time.Time{}
	}
	return expiry.Truncate(24 * time.Hour)
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos maestros
// ──────────────────────────────────────────────────────────────────────────────

type itemRepo struct{ s *Store }

func (r *itemRepo) Create(item *entity.Item) error {
	defer r.s.lock(false)()
	for _, existing := range r.s.items {
		if existing.SKU == item.SKU {
			return nil // duplicado: no-op silencioso
		}
	}
	copied := *item
	r.s.items = append(r.s.items, &copied)
	return nil
}

func (r *itemRepo) GetByID(id string) (*entity.Item, error) {
	defer r.s.lock(false)()
	for _, item := range r.s.items {
		if item.ID == id {
			copied := *item
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *itemRepo) List() ([]*entity.Item, error) {
	defer r.s.lock(false)()
	list := make([]*entity.Item, 0, len(r.s.items))
	for _, item := range r.s.items {
		copied := *item
		list = append(list, &copied)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SKU < list[j].SKU })
	return list, nil
}

type locationRepo struct{ s *Store }

func (r *locationRepo) Create(location *entity.Location) error {
	defer r.s.lock(false)()
	for _, existing := range r.s.locations {
		if existing.Code == location.Code {
			return nil
		}
	}
	copied := *location
	r.s.locations = append(r.s.locations, &copied)
	return nil
}

func (r *locationRepo) GetByID(id string) (*entity.Location, error) {
	defer r.s.lock(false)()
	for _, location := range r.s.locations {
		if location.ID == id {
			copied := *location
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *locationRepo) List() ([]*entity.Location, error) {
	defer r.s.lock(false)()
	list := make([]*entity.Location, 0, len(r.s.locations))
	for _, location := range r.s.locations {
		copied := *location
		list = append(list, &copied)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return list, nil
}

type lotRepo struct{ s *Store }

func (r *lotRepo) Create(lot *entity.Lot) error {
	defer r.s.lock(false)()
	expiry := coalesceExpiry(lot.Expiry)
	for _, existing := range r.s.lots {
		if existing.ItemID == lot.ItemID && existing.Batch == lot.Batch &&
			coalesceExpiry(existing.Expiry).Equal(expiry) {
			return nil
		}
	}
	copied := *lot
	r.s.lots = append(r.s.lots, &copied)
	return nil
}

func (r *lotRepo) GetByID(id string) (*entity.Lot, error) {
	defer r.s.lock(false)()
	for _, lot := range r.s.lots {
		if lot.ID == id {
			copied := *lot
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *lotRepo) List() ([]*entity.LotView, error) {
	defer r.s.lock(false)()
	list := make([]*entity.LotView, 0, len(r.s.lots))
	for _, lot := range r.s.lots {
		view := entity.LotView{Lot: *lot}
		if item := r.s.findItem(lot.ItemID); item != nil {
			view.SKU = item.SKU
			view.ItemName = item.Name
		}
		list = append(list, &view)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].SKU != list[j].SKU {
			return list[i].SKU < list[j].SKU
		}
		return list[i].Batch < list[j].Batch
	})
	return list, nil
}

func (s *Store) findItem(id string) *entity.Item {
	for _, item := range s.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}

func (s *Store) findLot(id string) *entity.Lot {
	for _, lot := range s.lots {
		if lot.ID == id {
			return lot
		}
	}
	return nil
}

func (s *Store) findLocation(id string) *entity.Location {
	for _, location := range s.locations {
		if location.ID == id {
			return location
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Proyección de inventario
// ──────────────────────────────────────────────────────────────────────────────

type inventoryRepo struct {
	s    *Store
	inTx bool
}

func (r *inventoryRepo) GetForUpdate(lotID, locationID string) (*entity.InventoryLine, error) {
	defer r.s.lock(r.inTx)()
	if line, ok := r.s.inventory[lineKey{lotID, locationID}]; ok {
		copied := *line
		return &copied, nil
	}
	return &entity.InventoryLine{LotID: lotID, LocationID: locationID}, nil
}

func (r *inventoryRepo) Upsert(line *entity.InventoryLine) error {
	defer r.s.lock(r.inTx)()
	copied := *line
	r.s.inventory[lineKey{line.LotID, line.LocationID}] = &copied
	return nil
}

func (r *inventoryRepo) ListCurrent() ([]*entity.InventoryView, error) {
	defer r.s.lock(r.inTx)()
	list := make([]*entity.InventoryView, 0, len(r.s.inventory))
	for _, line := range r.s.inventory {
		if line.Pallets == 0 && line.Cases == 0 {
			continue
		}
		view := entity.InventoryView{
			LotID:      line.LotID,
			LocationID: line.LocationID,
			Pallets:    line.Pallets,
			Cases:      line.Cases,
			UpdatedAt:  line.UpdatedAt,
		}
		if lot := r.s.findLot(line.LotID); lot != nil {
			view.Batch = lot.Batch
			view.Expiry = lot.Expiry
			if item := r.s.findItem(lot.ItemID); item != nil {
				view.SKU = item.SKU
				view.ItemName = item.Name
			}
		}
		if location := r.s.findLocation(line.LocationID); location != nil {
			view.LocationCode = location.Code
		}
		list = append(list, &view)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].SKU != list[j].SKU {
			return list[i].SKU < list[j].SKU
		}
		if list[i].Batch != list[j].Batch {
			return list[i].Batch < list[j].Batch
		}
		return list[i].LocationCode < list[j].LocationCode
	})
	return list, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Log de movimientos y documentos
// ──────────────────────────────────────────────────────────────────────────────

type movementRepo struct {
	s    *Store
	inTx bool
}

func (r *movementRepo) Create(movement *entity.Movement) error {
	defer r.s.lock(r.inTx)()
	copied := *movement
	r.s.movements = append(r.s.movements, &copied)
	return nil
}

func (r *movementRepo) GetByID(id string) (*entity.Movement, error) {
	defer r.s.lock(r.inTx)()
	for _, movement := range r.s.movements {
		if movement.ID == id {
			copied := *movement
			return &copied, nil
		}
	}
	return nil, nil
}

// ListAll recorre el log en orden inverso de inserción: más recientes primero,
// sin depender de timestamps que pueden empatar dentro del mismo segundo.
func (r *movementRepo) ListAll() ([]*entity.MovementView, error) {
	defer r.s.lock(r.inTx)()
	list := make([]*entity.MovementView, 0, len(r.s.movements))
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		movement := r.s.movements[i]
		view := entity.MovementView{Movement: *movement}
		if lot := r.s.findLot(movement.LotID); lot != nil {
			view.Batch = lot.Batch
			view.Expiry = lot.Expiry
			if item := r.s.findItem(lot.ItemID); item != nil {
				view.SKU = item.SKU
				view.ItemName = item.Name
			}
		}
		if location := r.s.findLocation(movement.LocationID); location != nil {
			view.LocationCode = location.Code
		}
		list = append(list, &view)
	}
	return list, nil
}

type documentRepo struct{ s *Store }

func (r *documentRepo) Create(document *entity.Document) error {
	defer r.s.lock(false)()
	copied := *document
	r.s.documents = append(r.s.documents, &copied)
	return nil
}

func (r *documentRepo) GetByID(id string) (*entity.Document, error) {
	defer r.s.lock(false)()
	for _, document := range r.s.documents {
		if document.ID == id {
			copied := *document
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *documentRepo) ListByMovement(movementID string) ([]*entity.Document, error) {
	defer r.s.lock(false)()
	var list []*entity.Document
	for i := len(r.s.documents) - 1; i >= 0; i-- {
		if r.s.documents[i].MovementID == movementID {
			copied := *r.s.documents[i]
			list = append(list, &copied)
		}
	}
	return list, nil
}
