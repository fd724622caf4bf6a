package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordTransactionRequest entrada para registrar un movimiento de stock.
// SalePrice es obligatorio para salidas (type=out) y se ignora en entradas.
type RecordTransactionRequest struct {
	ItemID    string           `json:"item_id" validate:"required,uuid"`
	Type      string           `json:"type" validate:"required,oneof=in out"`
	Quantity  int64            `json:"quantity" validate:"required,gt=0"`
	SalePrice *decimal.Decimal `json:"sale_price"`
}

// TransactionResponse salida de un asiento del libro. ProductName y
// CompanyName se resuelven vía el item; quedan vacíos si la referencia
// está colgante (producto o empresa eliminados).
type TransactionResponse struct {
	ID          string           `json:"id"`
	ItemID      string           `json:"item_id"`
	ProductName string           `json:"product_name"`
	CompanyName string           `json:"company_name"`
	Type        string           `json:"type"`
	Quantity    int64            `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	ICMSRate    decimal.Decimal  `json:"icms_rate"`
	SalePrice   *decimal.Decimal `json:"sale_price,omitempty"`
	Profit      *decimal.Decimal `json:"profit,omitempty"`
	TotalSale   *decimal.Decimal `json:"total_sale,omitempty"`
	Margin      *decimal.Decimal `json:"margin,omitempty"`
	CreatedBy   string           `json:"created_by"`
	Date        time.Time        `json:"date"`
}

// TransactionListResponse lista paginada de asientos.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
