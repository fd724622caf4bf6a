package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest entrada para crear un item de inventario
// (stock de un producto en una empresa).
type CreateInventoryItemRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	CompanyID string          `json:"company_id" validate:"required,uuid"`
	Quantity  int64           `json:"quantity" validate:"min=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ICMSRate  decimal.Decimal `json:"icms_rate"`
}

// UpdateInventoryItemRequest entrada para actualizar un item (campos opcionales).
// Quantity se edita solo por esta vía administrativa; los movimientos de
// stock pasan por el procesador de transacciones.
type UpdateInventoryItemRequest struct {
	ProductID *string          `json:"product_id" validate:"omitempty,uuid"`
	CompanyID *string          `json:"company_id" validate:"omitempty,uuid"`
	Quantity  *int64           `json:"quantity" validate:"omitempty,min=0"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
	ICMSRate  *decimal.Decimal `json:"icms_rate"`
}

// InventoryItemResponse salida de un item. PriceWithICMS es derivado, nunca
// almacenado.
type InventoryItemResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	CompanyID     string          `json:"company_id"`
	ProductName   string          `json:"product_name"`
	CompanyName   string          `json:"company_name"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	ICMSRate      decimal.Decimal `json:"icms_rate"`
	PriceWithICMS decimal.Decimal `json:"price_with_icms"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// InventoryItemListResponse lista paginada de items.
type InventoryItemListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
