// Package excel exporta el libro de movimientos a XLSX con excelize.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/estoquepro/estoque-api/internal/application/report"
)

// Asegura que LedgerExporter implementa report.LedgerExporter.
var _ report.LedgerExporter = (*LedgerExporter)(nil)

// LedgerExporter serializa filas del libro a una planilla de una hoja.
type LedgerExporter struct{}

// NewLedgerExporter construye el exportador.
func NewLedgerExporter() *LedgerExporter { return &LedgerExporter{} }

// ExportLedger escribe una fila de encabezado más una por asiento y
// devuelve los bytes del archivo.
func (e *LedgerExporter) ExportLedger(rows []report.LedgerRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{
		"fecha",
		"producto",
		"empresa",
		"tipo",
		"cantidad",
		"precio_unitario",
		"icms",
		"precio_venta",
		"ganancia",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: encabezado: %w", err)
	}

	rowN := 2
	for _, r := range rows {
		salePrice := ""
		profit := ""
		if r.SalePrice != nil {
			salePrice = r.SalePrice.StringFixed(2)
		}
		if r.Profit != nil {
			profit = r.Profit.StringFixed(2)
		}
		excelRow := []interface{}{
			r.Date.Format("02/01/2006 15:04"),
			r.ProductName,
			r.CompanyName,
			r.Type,
			r.Quantity,
			r.UnitPrice.StringFixed(2),
			r.ICMSRate.String(),
			salePrice,
			profit,
		}
		cell, err := excelize.CoordinatesToCellName(1, rowN)
		if err != nil {
			return nil, fmt.Errorf("excel: celda: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", rowN, err)
		}
		rowN++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
