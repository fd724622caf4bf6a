package entity

import "time"

// Product representa un producto del catálogo. El stock y los precios se
// manejan por empresa en InventoryItem.
type Product struct {
	ID          string
	Name        string
	Description string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
