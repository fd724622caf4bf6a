package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	TransactionIn  = "in"  // entrada
	TransactionOut = "out" // salida
)

// Transaction es un asiento del libro de movimientos. Se crea únicamente a
// través del procesador de transacciones y es inmutable: UnitPrice e
// ICMSRate son una copia del item al momento del movimiento, de modo que
// editar el item después no reescribe la historia.
type Transaction struct {
	ID        string
	ItemID    string
	Type      string // in, out
	Quantity  int64  // siempre positiva; el tipo indica la dirección
	UnitPrice decimal.Decimal
	ICMSRate  decimal.Decimal
	SalePrice *decimal.Decimal // solo salidas
	Profit    *decimal.Decimal // solo salidas: (SalePrice - UnitPrice) * Quantity
	CreatedBy string           // UserID
	Date      time.Time
}
