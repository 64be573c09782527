package http

import (
	"bytes"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/report"
)

type reportQuery func(ctx context.Context, from, to *time.Time) ([]report.Row, error)

// ReportHandler maneja los reportes agregados de salidas (protegido).
// Con format=csv la respuesta es el archivo en lugar de JSON.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ByPartner godoc
// @Summary      Salidas agrupadas por destinatario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "fecha desde (YYYY-MM-DD, inclusive)"
// @Param        to      query  string  false  "fecha hasta (YYYY-MM-DD, inclusive)"
// @Param        format  query  string  false  "csv para descarga"
// @Success      200  {array}   report.Row
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/by-partner [get]
func (h *ReportHandler) ByPartner(c *fiber.Ctx) error {
	return h.serve(c, "partner", h.uc.ByPartner)
}

// ByItem godoc
// @Summary      Salidas agrupadas por artículo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "fecha desde (YYYY-MM-DD, inclusive)"
// @Param        to      query  string  false  "fecha hasta (YYYY-MM-DD, inclusive)"
// @Param        format  query  string  false  "csv para descarga"
// @Success      200  {array}   report.Row
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/by-item [get]
func (h *ReportHandler) ByItem(c *fiber.Ctx) error {
	return h.serve(c, "sku", h.uc.ByItem)
}

func (h *ReportHandler) serve(c *fiber.Ctx, groupHeader string, query reportQuery) error {
	from, to, err := parseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to deben ser YYYY-MM-DD"})
	}
	rows, err := query(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if c.Query("format") == "csv" {
		var buf bytes.Buffer
		if err := report.WriteCSV(&buf, groupHeader, rows); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte_`+groupHeader+`.csv"`)
		return c.Send(buf.Bytes())
	}
	return c.JSON(rows)
}
