package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/ledger"
	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// InventoryHandler maneja el registro de movimientos y las consultas de stock (protegido).
type InventoryHandler struct {
	uc *ledger.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *ledger.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// BookMovement godoc
// @Summary      Registrar movimiento de entrada o salida
// @Description  Aplica el delta a la línea de inventario (lote, ubicación) en la
//
//	misma transacción. Las salidas exigen destinatario y stock
//	suficiente en estibas y en cajas por separado.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BookMovementRequest  true  "direction (IN|OUT), lot_id, location_id, pallets, cases, partner, reference, notes, date (YYYY-MM-DD)"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) BookMovement(c *fiber.Ctx) error {
	var in dto.BookMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// Regla de la API, no del núcleo: una salida sin destinatario no se acepta.
	if in.Direction == entity.DirectionOut && strings.TrimSpace(in.Partner) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "partner es obligatorio en salidas"})
	}
	var date time.Time
	if in.Date != "" {
		parsed, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
		}
		date = parsed
	}
	id, err := h.uc.BookMovement(c.Context(), ledger.BookMovementInput{
		Direction:  in.Direction,
		LotID:      in.LotID,
		LocationID: in.LocationID,
		Pallets:    in.Pallets,
		Cases:      in.Cases,
		Partner:    in.Partner,
		Reference:  in.Reference,
		Notes:      in.Notes,
		Date:       date,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lote o ubicación no encontrados"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id, "message": "movimiento registrado"})
}

// GetInventory godoc
// @Summary      Stock actual por lote y ubicación
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.InventoryRowResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	lines, err := h.uc.CurrentInventory(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.InventoryRowResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, dto.InventoryRowResponse{
			LotID:        line.LotID,
			LocationID:   line.LocationID,
			SKU:          line.SKU,
			ItemName:     line.ItemName,
			Batch:        line.Batch,
			Expiry:       formatExpiry(line.Expiry),
			LocationCode: line.LocationCode,
			Pallets:      line.Pallets,
			Cases:        line.Cases,
			UpdatedAt:    line.UpdatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Historial de movimientos
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        direction  query  string  false  "IN u OUT"
// @Param        partner    query  string  false  "subcadena del destinatario/proveedor"
// @Param        from       query  string  false  "fecha desde (YYYY-MM-DD, inclusive)"
// @Param        to         query  string  false  "fecha hasta (YYYY-MM-DD, inclusive)"
// @Success      200  {array}   dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	filter := ledger.MovementFilter{
		Direction: strings.ToUpper(strings.TrimSpace(c.Query("direction"))),
		Partner:   c.Query("partner"),
	}
	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to deben ser YYYY-MM-DD"})
	}
	filter.DateFrom = from
	filter.DateTo = to

	movements, err := h.uc.ListMovements(c.Context(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.MovementResponse{
			ID:           m.ID,
			Direction:    m.Direction,
			Date:         m.Date.Format("2006-01-02"),
			SKU:          m.SKU,
			ItemName:     m.ItemName,
			Batch:        m.Batch,
			Expiry:       formatExpiry(m.Expiry),
			LocationCode: m.LocationCode,
			Pallets:      m.Pallets,
			Cases:        m.Cases,
			Partner:      m.Partner,
			Reference:    m.Reference,
			Notes:        m.Notes,
			CreatedAt:    m.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(out)
}

// parseDateRange interpreta los parámetros from/to (YYYY-MM-DD); nil = sin límite.
func parseDateRange(fromStr, toStr string) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if fromStr != "" {
		parsed, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return nil, nil, err
		}
		from = &parsed
	}
	if toStr != "" {
		parsed, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return nil, nil, err
		}
		to = &parsed
	}
	return from, to, nil
}
