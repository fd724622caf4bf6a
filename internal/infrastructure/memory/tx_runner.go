package memory

import (
	"context"
	"sync"

	appinventory "github.com/estoquepro/estoque-api/internal/application/inventory"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// Asegura que TxRunner implementa inventory.TxRunner.
var _ appinventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks de inventario de forma atómica sobre los
// repositorios en memoria. Serializa todas las transacciones con un mutex
// y, si el callback falla después de haber escrito, restaura el snapshot
// previo para que no quede efecto parcial.
type TxRunner struct {
	mu       sync.Mutex
	itemRepo *InventoryItemRepo
	txRepo   *TransactionRepo
}

// NewTxRunner construye el runner con los repositorios vivos.
func NewTxRunner(itemRepo *InventoryItemRepo, txRepo *TransactionRepo) *TxRunner {
	return &TxRunner{itemRepo: itemRepo, txRepo: txRepo}
}

// Run ejecuta fn bajo exclusión total. Commit es implícito; ante error se
// restauran items y libro al estado previo (rollback).
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.InventoryItemRepository,
	txRepo repository.TransactionRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	items := r.itemRepo.snapshot()
	txs := r.txRepo.snapshot()

	if err := fn(r.itemRepo, r.txRepo); err != nil {
		r.itemRepo.restore(items)
		r.txRepo.restore(txs)
		return err
	}
	return nil
}
