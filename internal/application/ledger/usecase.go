package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/domain/repository"
)

// UseCase el ledger de movimientos: registra entradas y salidas de stock y es
// el único escritor de la proyección de inventario.
type UseCase struct {
	txRunner  TxRunner
	lots      repository.LotRepository
	locations repository.LocationRepository
	movements repository.MovementRepository
	inventory repository.InventoryRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	lots repository.LotRepository,
	locations repository.LocationRepository,
	movements repository.MovementRepository,
	inventory repository.InventoryRepository,
) *UseCase {
	return &UseCase{
		txRunner:  txRunner,
		lots:      lots,
		locations: locations,
		movements: movements,
		inventory: inventory,
	}
}

// BookMovementInput entrada para registrar un movimiento.
// Pallets y Cases son magnitudes (>= 0, no ambas cero); Date es la fecha de
// negocio y si viene en cero se usa la fecha actual.
type BookMovementInput struct {
	Direction  string
	LotID      string
	LocationID string
	Pallets    int
	Cases      int
	Partner    string
	Reference  string
	Notes      string
	Date       time.Time
}

// BookMovement registra un movimiento IN/OUT y aplica el delta a la línea de
// inventario (lote, ubicación) en una sola transacción. Para OUT, la
// verificación de stock lee la cantidad previa con bloqueo de fila y comprueba
// cada unidad por separado: alcanza con que falten estibas O cajas para
// rechazar con ErrInsufficientStock. Devuelve el ID del movimiento creado.
func (uc *UseCase) BookMovement(ctx context.Context, in BookMovementInput) (string, error) {
	if in.Direction != entity.DirectionIn && in.Direction != entity.DirectionOut {
		return "", domain.ErrInvalidInput
	}
	if in.LotID == "" || in.LocationID == "" {
		return "", domain.ErrInvalidInput
	}
	if in.Pallets < 0 || in.Cases < 0 || (in.Pallets == 0 && in.Cases == 0) {
		return "", domain.ErrInvalidInput
	}

	lot, err := uc.lots.GetByID(in.LotID)
	if err != nil {
		return "", err
	}
	location, err := uc.locations.GetByID(in.LocationID)
	if err != nil {
		return "", err
	}
	if lot == nil || location == nil {
		return "", domain.ErrNotFound
	}

	now := time.Now().UTC()
	date := in.Date
	if date.IsZero() {
		date = now.Truncate(24 * time.Hour)
	}
	movementID := uuid.New().String()

	// Transacción: verificar-y-aplicar serializado por línea mediante el
	// bloqueo de fila de GetForUpdate; Commit o Rollback los hace el TxRunner.
	err = uc.txRunner.Run(ctx, func(
		movements repository.MovementRepository,
		inventory repository.InventoryRepository,
	) error {
		line, err := inventory.GetForUpdate(in.LotID, in.LocationID)
		if err != nil {
			return err
		}

		if in.Direction == entity.DirectionOut {
			if line.Pallets < in.Pallets || line.Cases < in.Cases {
				return domain.ErrInsufficientStock
			}
			line.Pallets -= in.Pallets
			line.Cases -= in.Cases
		} else {
			line.Pallets += in.Pallets
			line.Cases += in.Cases
		}
		line.UpdatedAt = now
		if err := inventory.Upsert(line); err != nil {
			return err
		}

		return movements.Create(&entity.Movement{
			ID:         movementID,
			Direction:  in.Direction,
			LotID:      in.LotID,
			LocationID: in.LocationID,
			Pallets:    in.Pallets,
			Cases:      in.Cases,
			Partner:    strings.TrimSpace(in.Partner),
			Reference:  strings.TrimSpace(in.Reference),
			Notes:      strings.TrimSpace(in.Notes),
			Date:       date,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return "", err
	}
	return movementID, nil
}

// CurrentInventory devuelve las líneas con stock distinto de cero, unidas con
// artículo, lote y ubicación; ordenadas por SKU, batch y código de ubicación.
func (uc *UseCase) CurrentInventory(ctx context.Context) ([]*entity.InventoryView, error) {
	return uc.inventory.ListCurrent()
}

// MovementFilter filtros opcionales de ListMovements. Se aplican como
// post-filtro puro sobre el conjunto completo, sin paginación.
type MovementFilter struct {
	Direction string     // "" = todas; IN u OUT
	Partner   string     // subcadena del partner, sin distinguir mayúsculas
	DateFrom  *time.Time // inclusive, sobre la fecha de negocio
	DateTo    *time.Time // inclusive
}

// ListMovements devuelve los movimientos más recientes primero, unidos para
// mostrar, con los filtros aplicados en memoria.
func (uc *UseCase) ListMovements(ctx context.Context, f MovementFilter) ([]*entity.MovementView, error) {
	all, err := uc.movements.ListAll()
	if err != nil {
		return nil, err
	}
	partner := strings.ToLower(strings.TrimSpace(f.Partner))
	filtered := make([]*entity.MovementView, 0, len(all))
	for _, m := range all {
		if f.Direction != "" && m.Direction != f.Direction {
			continue
		}
		if partner != "" && !strings.Contains(strings.ToLower(m.Partner), partner) {
			continue
		}
		if f.DateFrom != nil && m.Date.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && m.Date.After(*f.DateTo) {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered, nil
}
