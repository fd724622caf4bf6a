package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/estoquepro/estoque-api/internal/domain/entity"
)

// InventoryRow fila del reporte de posición de inventario de una empresa.
// Valores derivados ya calculados: el renderer no conoce reglas de negocio.
type InventoryRow struct {
	ProductName   string // vacío si la referencia está colgante
	Quantity      int64
	UnitPrice     decimal.Decimal
	ICMSRate      decimal.Decimal
	PriceWithICMS decimal.Decimal
	TotalValue    decimal.Decimal // PriceWithICMS * Quantity
}

// InventoryPDFGenerator renderiza el reporte de inventario de una empresa.
// La implementación vive en infrastructure (Maroto).
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, company *entity.Company, rows []InventoryRow, generatedAt time.Time) ([]byte, error)
}

// LedgerRow fila de la exportación del libro de movimientos.
type LedgerRow struct {
	Date        time.Time
	ProductName string
	CompanyName string
	Type        string // in, out
	Quantity    int64
	UnitPrice   decimal.Decimal
	ICMSRate    decimal.Decimal
	SalePrice   *decimal.Decimal // solo salidas
	Profit      *decimal.Decimal // solo salidas
}

// LedgerExporter serializa el libro a una planilla. La implementación vive
// en infrastructure (excelize).
type LedgerExporter interface {
	ExportLedger(rows []LedgerRow) ([]byte, error)
}
