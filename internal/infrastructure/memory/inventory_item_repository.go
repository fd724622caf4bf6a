package memory

import (
	"sync"
	"time"

	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// Asegura que InventoryItemRepo implementa repository.InventoryItemRepository.
var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación en memoria del puerto InventoryItemRepository.
type InventoryItemRepo struct {
	mu    sync.RWMutex
	items []entity.InventoryItem
	index map[string]int
}

// NewInventoryItemRepository construye el adaptador en memoria para items de inventario.
func NewInventoryItemRepository() *InventoryItemRepo {
	return &InventoryItemRepo{index: make(map[string]int)}
}

// Create agrega un item al final de la colección.
func (r *InventoryItemRepo) Create(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[item.ID]; ok {
		return domain.ErrDuplicate
	}
	r.index[item.ID] = len(r.items)
	r.items = append(r.items, *item)
	return nil
}

// GetByID devuelve una copia del item, o nil si no existe.
func (r *InventoryItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	it := r.items[i]
	return &it, nil
}

// Update reemplaza el item almacenado. ErrNotFound si el ID no existe.
func (r *InventoryItemRepo) Update(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[item.ID]
	if !ok {
		return domain.ErrNotFound
	}
	r.items[i] = *item
	return nil
}

// UpdateQuantity fija el stock del item. La exclusión frente a otros
// escritores del mismo item la garantiza el TxRunner.
func (r *InventoryItemRepo) UpdateQuantity(id string, quantity int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.items[i].Quantity = quantity
	r.items[i].UpdatedAt = time.Now()
	return nil
}

// List devuelve copias en orden de inserción. limit <= 0 = todos.
func (r *InventoryItemRepo) List(limit, offset int) ([]*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return pageOf(r.items, limit, offset), nil
}

// Delete elimina el item. No-op si el ID no existe.
func (r *InventoryItemRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return nil
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	delete(r.index, id)
	for j := i; j < len(r.items); j++ {
		r.index[r.items[j].ID] = j
	}
	return nil
}

// snapshot y restore permiten al TxRunner deshacer mutaciones si el callback
// falla después de escribir.
func (r *InventoryItemRepo) snapshot() []entity.InventoryItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.InventoryItem(nil), r.items...)
}

func (r *InventoryItemRepo) restore(items []entity.InventoryItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = items
	r.index = make(map[string]int, len(items))
	for i := range items {
		r.index[items[i].ID] = i
	}
}
