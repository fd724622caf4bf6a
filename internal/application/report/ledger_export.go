package report

import (
	"github.com/estoquepro/estoque-api/internal/application/access"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// LedgerExportUseCase exporta el libro de movimientos visible para el
// usuario a una planilla XLSX.
type LedgerExportUseCase struct {
	txRepo      repository.TransactionRepository
	itemRepo    repository.InventoryItemRepository
	productRepo repository.ProductRepository
	companyRepo repository.CompanyRepository
	exporter    LedgerExporter
}

// NewLedgerExportUseCase construye el caso de uso.
func NewLedgerExportUseCase(
	txRepo repository.TransactionRepository,
	itemRepo repository.InventoryItemRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
	exporter LedgerExporter,
) *LedgerExportUseCase {
	return &LedgerExportUseCase{
		txRepo:      txRepo,
		itemRepo:    itemRepo,
		productRepo: productRepo,
		companyRepo: companyRepo,
		exporter:    exporter,
	}
}

// ExportForUser arma una fila por asiento visible, con la misma regla de
// visibilidad del listado: mismos asientos, mismos nombres resueltos.
func (uc *LedgerExportUseCase) ExportForUser(user *entity.User) ([]byte, error) {
	all, err := uc.txRepo.List(0, 0)
	if err != nil {
		return nil, err
	}

	rows := make([]LedgerRow, 0, len(all))
	for _, tx := range all {
		item, _ := uc.itemRepo.GetByID(tx.ItemID)
		if item == nil {
			if !user.Role.CanSeeAllCompanies() {
				continue
			}
		} else if !access.CanAccessCompany(user, item.CompanyID) {
			continue
		}

		productName := ""
		companyName := ""
		if item != nil {
			if p, _ := uc.productRepo.GetByID(item.ProductID); p != nil {
				productName = p.Name
			}
			if c, _ := uc.companyRepo.GetByID(item.CompanyID); c != nil {
				companyName = c.Name
			}
		}
		rows = append(rows, LedgerRow{
			Date:        tx.Date,
			ProductName: productName,
			CompanyName: companyName,
			Type:        tx.Type,
			Quantity:    tx.Quantity,
			UnitPrice:   tx.UnitPrice,
			ICMSRate:    tx.ICMSRate,
			SalePrice:   tx.SalePrice,
			Profit:      tx.Profit,
		})
	}

	return uc.exporter.ExportLedger(rows)
}
