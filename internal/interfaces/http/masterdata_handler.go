package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/masterdata"
	"github.com/jhoicas/bodega-api/internal/domain"
)

// MasterDataHandler maneja altas y listados de artículos, ubicaciones y lotes (protegido).
type MasterDataHandler struct {
	uc *masterdata.UseCase
}

// NewMasterDataHandler construye el handler.
func NewMasterDataHandler(uc *masterdata.UseCase) *MasterDataHandler {
	return &MasterDataHandler{uc: uc}
}

// CreateItem godoc
// @Summary      Registrar artículo
// @Tags         masterdata
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "sku, name"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *MasterDataHandler) CreateItem(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.CreateItem(in.SKU, in.Name); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sku y name son obligatorios"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "artículo registrado"})
}

// ListItems godoc
// @Summary      Listar artículos
// @Tags         masterdata
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ItemResponse
// @Router       /api/items [get]
func (h *MasterDataHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.uc.ListItems()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.ItemResponse{
			ID:        item.ID,
			SKU:       item.SKU,
			Name:      item.Name,
			CreatedAt: item.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(out)
}

// CreateLocation godoc
// @Summary      Registrar ubicación
// @Tags         masterdata
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLocationRequest  true  "code, description"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/locations [post]
func (h *MasterDataHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.CreateLocation(in.Code, in.Description); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es obligatorio"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "ubicación registrada"})
}

// ListLocations godoc
// @Summary      Listar ubicaciones
// @Tags         masterdata
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.LocationResponse
// @Router       /api/locations [get]
func (h *MasterDataHandler) ListLocations(c *fiber.Ctx) error {
	locations, err := h.uc.ListLocations()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.LocationResponse, 0, len(locations))
	for _, location := range locations {
		out = append(out, dto.LocationResponse{
			ID:          location.ID,
			Code:        location.Code,
			Description: location.Description,
			CreatedAt:   location.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(out)
}

// CreateLot godoc
// @Summary      Registrar lote de un artículo
// @Tags         masterdata
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateLotRequest  true  "item_id, batch, expiry (YYYY-MM-DD, opcional)"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/lots [post]
func (h *MasterDataHandler) CreateLot(c *fiber.Ctx) error {
	var in dto.CreateLotRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	var expiry *time.Time
	if in.Expiry != "" {
		parsed, err := time.Parse("2006-01-02", in.Expiry)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "expiry debe ser YYYY-MM-DD"})
		}
		expiry = &parsed
	}
	if err := h.uc.CreateLot(in.ItemID, in.Batch, expiry); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "item_id y batch son obligatorios"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "lote registrado"})
}

// ListLots godoc
// @Summary      Listar lotes
// @Tags         masterdata
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.LotResponse
// @Router       /api/lots [get]
func (h *MasterDataHandler) ListLots(c *fiber.Ctx) error {
	lots, err := h.uc.ListLots()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.LotResponse, 0, len(lots))
	for _, lot := range lots {
		out = append(out, dto.LotResponse{
			ID:        lot.ID,
			ItemID:    lot.ItemID,
			SKU:       lot.SKU,
			ItemName:  lot.ItemName,
			Batch:     lot.Batch,
			Expiry:    formatExpiry(lot.Expiry),
			CreatedAt: lot.CreatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(out)
}

// formatExpiry fecha de vencimiento como YYYY-MM-DD; vacío si no hay.
func formatExpiry(expiry *time.Time) string {
	if expiry == nil {
		return ""
	}
	return expiry.Format("2006-01-02")
}
