package memory

import (
	"sync"

	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// Asegura que ProductRepo implementa repository.ProductRepository.
var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria del puerto ProductRepository.
type ProductRepo struct {
	mu    sync.RWMutex
	items []entity.Product
	index map[string]int
}

// NewProductRepository construye el adaptador en memoria para productos.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{index: make(map[string]int)}
}

// Create agrega un producto al final de la colección.
func (r *ProductRepo) Create(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[product.ID]; ok {
		return domain.ErrDuplicate
	}
	r.index[product.ID] = len(r.items)
	r.items = append(r.items, *product)
	return nil
}

// GetByID devuelve una copia del producto, o nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	p := r.items[i]
	return &p, nil
}

// Update reemplaza el producto almacenado. ErrNotFound si el ID no existe.
func (r *ProductRepo) Update(product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	r.items[i] = *product
	return nil
}

// List devuelve copias en orden de inserción. limit <= 0 = todos.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return pageOf(r.items, limit, offset), nil
}

// Delete elimina el producto. No-op si el ID no existe. No cascada: los
// items de inventario que lo referencian quedan con referencia colgante y
// los listados la resuelven a nombre vacío.
func (r *ProductRepo) Delete(id string) error {
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
