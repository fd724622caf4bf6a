package memory

import (
	"sync"

	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// Asegura que TransactionRepo implementa repository.TransactionRepository.
var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo libro de movimientos en memoria, append-only. No expone
// Update ni Delete: un asiento creado es definitivo.
type TransactionRepo struct {
	mu    sync.RWMutex
	items []entity.Transaction
	index map[string]int
}

// NewTransactionRepository construye el libro de movimientos en memoria.
func NewTransactionRepository() *TransactionRepo {
	return &TransactionRepo{index: make(map[string]int)}
}

// Create agrega un asiento al final del libro.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[tx.ID]; ok {
		return domain.ErrDuplicate
	}
	r.index[tx.ID] = len(r.items)
	r.items = append(r.items, copyTransaction(*tx))
	return nil
}

// GetByID devuelve una copia del asiento, o nil si no existe.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, nil
	}
	t := copyTransaction(r.items[i])
	return &t, nil
}

// List devuelve copias en orden de inserción. limit <= 0 = todos.
func (r *TransactionRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	page := pageOf(r.items, limit, offset)
	for i, t := range page {
		c := copyTransaction(*t)
		page[i] = &c
	}
	return page, nil
}

// ListByItem devuelve los asientos de un item en orden de inserción.
func (r *TransactionRepo) ListByItem(itemID string) ([]*entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Transaction, 0)
	for i := range r.items {
		if r.items[i].ItemID == itemID {
			t := copyTransaction(r.items[i])
			out = append(out, &t)
		}
	}
	return out, nil
}

// copyTransaction copia profunda: SalePrice y Profit son punteros y no deben
// compartirse entre el libro y los callers.
func copyTransaction(t entity.Transaction) entity.Transaction {
	if t.SalePrice != nil {
		v := *t.SalePrice
		t.SalePrice = &v
	}
	if t.Profit != nil {
		v := *t.Profit
		t.Profit = &v
	}
	return t
}

func (r *TransactionRepo) snapshot() []entity.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.Transaction(nil), r.items...)
}

func (r *TransactionRepo) restore(items []entity.Transaction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = items
	r.index = make(map[string]int, len(items))
	for i := range items {
		r.index[items[i].ID] = i
	}
}
