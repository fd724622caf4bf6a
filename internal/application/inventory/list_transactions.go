package inventory

import (
	"github.com/estoquepro/estoque-api/internal/application/access"
	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	domaininv "github.com/estoquepro/estoque-api/internal/domain/inventory"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// ListTransactionsUseCase arma el listado del libro de movimientos con
// nombres de producto y empresa resueltos vía el item. Referencias colgantes
// (item, producto o empresa eliminados) se resuelven a nombre vacío.
type ListTransactionsUseCase struct {
	txRepo      repository.TransactionRepository
	itemRepo    repository.InventoryItemRepository
	productRepo repository.ProductRepository
	companyRepo repository.CompanyRepository
}

// NewListTransactionsUseCase construye el caso de uso.
func NewListTransactionsUseCase(
	txRepo repository.TransactionRepository,
	itemRepo repository.InventoryItemRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		txRepo:      txRepo,
		itemRepo:    itemRepo,
		productRepo: productRepo,
		companyRepo: companyRepo,
	}
}

// ListForUser devuelve los asientos visibles para el usuario: los de items
// cuya empresa pasa el filtro de acceso. Asientos de items ya eliminados
// solo los ve admin (no hay empresa contra la cual filtrar).
func (uc *ListTransactionsUseCase) ListForUser(user *entity.User, limit, offset int) (*dto.TransactionListResponse, error) {
	all, err := uc.txRepo.List(0, 0)
	if err != nil {
		return nil, err
	}

	visible := make([]*entity.Transaction, 0, len(all))
	for _, tx := range all {
		item, _ := uc.itemRepo.GetByID(tx.ItemID)
		if item == nil {
			if user.Role.CanSeeAllCompanies() {
				visible = append(visible, tx)
			}
			continue
		}
		if access.CanAccessCompany(user, item.CompanyID) {
			visible = append(visible, tx)
		}
	}

	// Paginar después de filtrar, para que la ventana sea estable por usuario.
	if offset < 0 {
		offset = 0
	}
	if offset > len(visible) {
		offset = len(visible)
	}
	end := len(visible)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	items := make([]dto.TransactionResponse, 0, end-offset)
	for _, tx := range visible[offset:end] {
		items = append(items, *uc.toResponse(tx))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: len(visible)},
	}, nil
}

func (uc *ListTransactionsUseCase) toResponse(tx *entity.Transaction) *dto.TransactionResponse {
	productName := ""
	companyName := ""
	if item, _ := uc.itemRepo.GetByID(tx.ItemID); item != nil {
		if p, _ := uc.productRepo.GetByID(item.ProductID); p != nil {
			productName = p.Name
		}
		if c, _ := uc.companyRepo.GetByID(item.CompanyID); c != nil {
			companyName = c.Name
		}
	}
	out := &dto.TransactionResponse{
		ID:          tx.ID,
		ItemID:      tx.ItemID,
		ProductName: productName,
		CompanyName: companyName,
		Type:        tx.Type,
		Quantity:    tx.Quantity,
		UnitPrice:   tx.UnitPrice,
		ICMSRate:    tx.ICMSRate,
		SalePrice:   tx.SalePrice,
		Profit:      tx.Profit,
		CreatedBy:   tx.CreatedBy,
		Date:        tx.Date,
	}
	// Derivados de venta, solo cuando hubo venta.
	if tx.SalePrice != nil {
		total := domaininv.TotalSale(*tx.SalePrice, tx.Quantity)
		margin := domaininv.Margin(*tx.SalePrice, tx.UnitPrice)
		out.TotalSale = &total
		out.Margin = &margin
	}
	return out
}
