package inventory

import (
	"context"

	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta una función de forma atómica sobre el stock y el libro de
// movimientos: o se aplican todas las escrituras del callback o ninguna.
// Garantiza que el read-modify-write sobre la cantidad de un item no se
// intercale con otro escritor del mismo item.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
