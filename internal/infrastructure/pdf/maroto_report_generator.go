// Package pdf implementa la generación del reporte de posición de
// inventario por empresa.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + CNPJ  │  Fecha de generación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cant | P.Unit | ICMS | P.c/ICMS | Total  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Items / Unidades / VALOR TOTAL DEL STOCK          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/estoquepro/estoque-api/internal/application/report"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Asegura que MarotoReportGenerator implementa report.InventoryPDFGenerator.
var _ report.InventoryPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryPDF(
	_ context.Context,
	company *entity.Company,
	rows []report.InventoryRow,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(company, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: Razón social + CNPJ (izq) y fecha de generación (der).
func headerRow(company *entity.Company, generatedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CNPJ: "+company.CNPJ, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Posición de inventario", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	headerR := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Align: align.Right}
	return row.New(7).Add(
		col.New(4).Add(text.New("Producto", header)),
		col.New(1).Add(text.New("Cant.", headerR)),
		col.New(2).Add(text.New("P. Unit", headerR)),
		col.New(1).Add(text.New("ICMS", headerR)),
		col.New(2).Add(text.New("P. c/ICMS", headerR)),
		col.New(2).Add(text.New("Total", headerR)),
	)
}

func tableDetailRow(r report.InventoryRow) core.Row {
	cell := props.Text{Size: 8}
	cellR := props.Text{Size: 8, Align: align.Right}
	icms := r.ICMSRate.Mul(decimal.NewFromInt(100)).StringFixed(0) + "%"
	return row.New(5).Add(
		col.New(4).Add(text.New(r.ProductName, cell)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", r.Quantity), cellR)),
		col.New(2).Add(text.New(r.UnitPrice.StringFixed(2), cellR)),
		col.New(1).Add(text.New(icms, cellR)),
		col.New(2).Add(text.New(r.PriceWithICMS.StringFixed(2), cellR)),
		col.New(2).Add(text.New(r.TotalValue.StringFixed(2), cellR)),
	)
}

func totalsRow(rows []report.InventoryRow) core.Row {
	var units int64
	total := decimal.Zero
	for _, r := range rows {
		units += r.Quantity
		total = total.Add(r.TotalValue)
	}
	label := props.Text{Style: fontstyle.Bold, Size: 9}
	value := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary}
	return row.New(8).Add(
		col.New(4).Add(text.New(fmt.Sprintf("Items: %d", len(rows)), label)),
		col.New(3).Add(text.New(fmt.Sprintf("Unidades: %d", units), label)),
		col.New(5).Add(text.New("VALOR TOTAL: "+total.StringFixed(2), value)),
	)
}
