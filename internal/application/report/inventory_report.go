package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/estoquepro/estoque-api/internal/application/access"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	domaininv "github.com/estoquepro/estoque-api/internal/domain/inventory"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// InventoryReportUseCase genera el PDF de posición de inventario de una
// empresa visible para el usuario.
type InventoryReportUseCase struct {
	companyRepo repository.CompanyRepository
	itemRepo    repository.InventoryItemRepository
	productRepo repository.ProductRepository
	pdf         InventoryPDFGenerator
}

// NewInventoryReportUseCase construye el caso de uso.
func NewInventoryReportUseCase(
	companyRepo repository.CompanyRepository,
	itemRepo repository.InventoryItemRepository,
	productRepo repository.ProductRepository,
	pdf InventoryPDFGenerator,
) *InventoryReportUseCase {
	return &InventoryReportUseCase{
		companyRepo: companyRepo,
		itemRepo:    itemRepo,
		productRepo: productRepo,
		pdf:         pdf,
	}
}

// GenerateForCompany arma las filas del stock de la empresa y delega el
// render. ErrForbidden si la empresa no es visible para el usuario;
// ErrNotFound si no existe.
func (uc *InventoryReportUseCase) GenerateForCompany(ctx context.Context, user *entity.User, companyID string) ([]byte, error) {
	if !access.CanAccessCompany(user, companyID) {
		return nil, domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	items, err := uc.itemRepo.List(0, 0)
	if err != nil {
		return nil, err
	}
	rows := make([]InventoryRow, 0, len(items))
	for _, it := range items {
		if it.CompanyID != companyID {
			continue
		}
		productName := ""
		if p, _ := uc.productRepo.GetByID(it.ProductID); p != nil {
			productName = p.Name
		}
		priceWithICMS := domaininv.PriceWithICMS(it.UnitPrice, it.ICMSRate)
		rows = append(rows, InventoryRow{
			ProductName:   productName,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice,
			ICMSRate:      it.ICMSRate,
			PriceWithICMS: priceWithICMS,
			TotalValue:    priceWithICMS.Mul(decimal.NewFromInt(it.Quantity)),
		})
	}

	return uc.pdf.GenerateInventoryPDF(ctx, company, rows, time.Now())
}
