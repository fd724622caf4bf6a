package repository

import "github.com/estoquepro/estoque-api/internal/domain/entity"

// InventoryItemRepository define el puerto de persistencia para InventoryItem (DIP).
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	// UpdateQuantity fija el stock del item. La atomicidad frente a otros
	// escritores la garantiza el TxRunner, no este método.
	UpdateQuantity(id string, quantity int64) error
	List(limit, offset int) ([]*entity.InventoryItem, error)
	Delete(id string) error
}
