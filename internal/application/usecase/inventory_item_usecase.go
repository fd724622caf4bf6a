package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	domaininv "github.com/estoquepro/estoque-api/internal/domain/inventory"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// InventoryItemUseCase casos de uso CRUD para items de inventario (stock de
// un producto en una empresa). Los movimientos de stock no pasan por aquí:
// van al procesador de transacciones.
type InventoryItemUseCase struct {
	itemRepo    repository.InventoryItemRepository
	productRepo repository.ProductRepository
	companyRepo repository.CompanyRepository
}

// NewInventoryItemUseCase construye el caso de uso.
func NewInventoryItemUseCase(
	itemRepo repository.InventoryItemRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
) *InventoryItemUseCase {
	return &InventoryItemUseCase{itemRepo: itemRepo, productRepo: productRepo, companyRepo: companyRepo}
}

// Create crea un item. Producto y empresa deben existir al momento del alta;
// después pueden borrarse y la referencia queda colgante (tolerado).
func (uc *InventoryItemUseCase) Create(in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if err := validateItemFields(in.Quantity, in.UnitPrice, in.ICMSRate); err != nil {
		return nil, err
	}
	product, _ := uc.productRepo.GetByID(in.ProductID)
	if product == nil {
		return nil, domain.ErrNotFound
	}
	company, _ := uc.companyRepo.GetByID(in.CompanyID)
	if company == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		CompanyID: in.CompanyID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		ICMSRate:  in.ICMSRate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return uc.toResponse(item), nil
}

// GetByID obtiene un item por ID con nombres resueltos. nil si no existe.
func (uc *InventoryItemUseCase) GetByID(id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return uc.toResponse(item), nil
}

// Update actualiza los campos presentes. Editar UnitPrice o ICMSRate no
// reescribe transacciones pasadas: el libro guarda su propio snapshot.
func (uc *InventoryItemUseCase) Update(id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if in.ProductID != nil {
		item.ProductID = *in.ProductID
	}
	if in.CompanyID != nil {
		item.CompanyID = *in.CompanyID
	}
	if in.Quantity != nil {
		item.Quantity = *in.Quantity
	}
	if in.UnitPrice != nil {
		item.UnitPrice = *in.UnitPrice
	}
	if in.ICMSRate != nil {
		item.ICMSRate = *in.ICMSRate
	}
	if err := validateItemFields(item.Quantity, item.UnitPrice, item.ICMSRate); err != nil {
		return nil, err
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return uc.toResponse(item), nil
}

// List lista items en orden de inserción, con paginación y nombres resueltos.
func (uc *InventoryItemUseCase) List(limit, offset int) (*dto.InventoryItemListResponse, error) {
	list, err := uc.itemRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.BuildList(list, limit, offset), nil
}

// BuildList arma la respuesta enriquecida a partir de items ya filtrados
// (el handler aplica primero el filtro de visibilidad).
func (uc *InventoryItemUseCase) BuildList(list []*entity.InventoryItem, limit, offset int) *dto.InventoryItemListResponse {
	items := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *uc.toResponse(it))
	}
	return &dto.InventoryItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
}

// ListAll devuelve las entidades sin paginar, para el filtro de visibilidad.
func (uc *InventoryItemUseCase) ListAll() ([]*entity.InventoryItem, error) {
	return uc.itemRepo.List(0, 0)
}

// Delete elimina un item. No-op si el ID no existe.
func (uc *InventoryItemUseCase) Delete(id string) error {
	return uc.itemRepo.Delete(id)
}

// Entity obtiene la entidad cruda, para chequeos de acceso en handlers.
func (uc *InventoryItemUseCase) Entity(id string) (*entity.InventoryItem, error) {
	return uc.itemRepo.GetByID(id)
}

func validateItemFields(quantity int64, unitPrice, icmsRate decimal.Decimal) error {
	if quantity < 0 {
		return domain.ErrInvalidInput
	}
	if unitPrice.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if icmsRate.LessThan(decimal.Zero) || icmsRate.GreaterThan(decimal.NewFromInt(1)) {
		return domain.ErrInvalidInput
	}
	return nil
}

// toResponse resuelve nombres de producto y empresa; referencia colgante =
// nombre vacío (el front muestra blanco, nunca falla).
func (uc *InventoryItemUseCase) toResponse(it *entity.InventoryItem) *dto.InventoryItemResponse {
	productName := ""
	if p, _ := uc.productRepo.GetByID(it.ProductID); p != nil {
		productName = p.Name
	}
	companyName := ""
	if c, _ := uc.companyRepo.GetByID(it.CompanyID); c != nil {
		companyName = c.Name
	}
	return &dto.InventoryItemResponse{
		ID:            it.ID,
		ProductID:     it.ProductID,
		CompanyID:     it.CompanyID,
		ProductName:   productName,
		CompanyName:   companyName,
		Quantity:      it.Quantity,
		UnitPrice:     it.UnitPrice,
		ICMSRate:      it.ICMSRate,
		PriceWithICMS: domaininv.PriceWithICMS(it.UnitPrice, it.ICMSRate),
		CreatedAt:     it.CreatedAt,
		UpdatedAt:     it.UpdatedAt,
	}
}
