package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	domaininv "github.com/estoquepro/estoque-api/internal/domain/inventory"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// RecordTransactionUseCase registra movimientos de stock (in/out) de forma
// transaccional: valida contra el stock actual, muta la cantidad del item y
// agrega un asiento inmutable al libro, todo dentro del TxRunner.
type RecordTransactionUseCase struct {
	txRunner TxRunner
}

// NewRecordTransactionUseCase construye el caso de uso.
func NewRecordTransactionUseCase(txRunner TxRunner) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{txRunner: txRunner}
}

// TransactionInput entrada para registrar un movimiento.
// SalePrice es obligatorio para salidas y se ignora en entradas.
type TransactionInput struct {
	UserID    string
	ItemID    string
	Type      string
	Quantity  int64
	SalePrice *decimal.Decimal
}

// Record valida y aplica el movimiento. Ante cualquier error no queda efecto
// parcial: ni cambio de cantidad ni asiento en el libro.
//
// Reglas:
//   - Type ∈ {in, out}; Quantity > 0.
//   - out: SalePrice presente y >= 0; Quantity <= stock actual, si no
//     domain.ErrInsufficientStock.
//   - El asiento copia UnitPrice e ICMSRate del item al momento de la
//     llamada; ediciones posteriores del item no alteran la historia.
//   - Profit solo en salidas: (SalePrice - UnitPrice) * Quantity.
func (uc *RecordTransactionUseCase) Record(ctx context.Context, input TransactionInput) (*entity.Transaction, error) {
	switch input.Type {
	case entity.TransactionIn, entity.TransactionOut:
	default:
		return nil, domain.ErrInvalidInput
	}
	if input.ItemID == "" || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Type == entity.TransactionOut {
		if input.SalePrice == nil || input.SalePrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	}

	var created *entity.Transaction
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		txRepo repository.TransactionRepository,
	) error {
		item, err := itemRepo.GetByID(input.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		var newQty int64
		var salePrice, profit *decimal.Decimal
		switch input.Type {
		case entity.TransactionIn:
			newQty = item.Quantity + input.Quantity
		case entity.TransactionOut:
			if input.Quantity > item.Quantity {
				return domain.ErrInsufficientStock
			}
			newQty = item.Quantity - input.Quantity
			sp := *input.SalePrice
			p := domaininv.Profit(sp, item.UnitPrice, input.Quantity)
			salePrice = &sp
			profit = &p
		}

		if err := itemRepo.UpdateQuantity(item.ID, newQty); err != nil {
			return err
		}

		tx := &entity.Transaction{
			ID:        uuid.New().String(),
			ItemID:    item.ID,
			Type:      input.Type,
			Quantity:  input.Quantity,
			UnitPrice: item.UnitPrice,
			ICMSRate:  item.ICMSRate,
			SalePrice: salePrice,
			Profit:    profit,
			CreatedBy: input.UserID,
			Date:      time.Now(),
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}
		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
