package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV escribe el reporte como CSV UTF-8 separado por comas, con fila de
// encabezado. groupHeader nombra la columna de agrupación ("partner" o "sku").
func WriteCSV(w io.Writer, groupHeader string, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{groupHeader, "pallets", "cases"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Group, strconv.Itoa(r.Pallets), strconv.Itoa(r.Cases)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
