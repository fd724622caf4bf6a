package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa el stock de un producto en una empresa.
// Quantity nunca queda negativa: las salidas se validan contra el stock
// actual antes de aplicarse. UnitPrice es sin impuesto; ICMSRate es la
// fracción de ICMS en [0,1] que se aplica sobre UnitPrice.
type InventoryItem struct {
	ID        string
	ProductID string
	CompanyID string
	Quantity  int64
	UnitPrice decimal.Decimal
	ICMSRate  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
