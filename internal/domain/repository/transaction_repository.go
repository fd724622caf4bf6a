package repository

import "github.com/estoquepro/estoque-api/internal/domain/entity"

// TransactionRepository define el puerto del libro de movimientos.
// Solo escritura por append: el libro nunca se edita ni se borra.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	List(limit, offset int) ([]*entity.Transaction, error)
	ListByItem(itemID string) ([]*entity.Transaction, error)
}
