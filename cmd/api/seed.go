package main

import (
	"github.com/shopspring/decimal"

	"github.com/estoquepro/estoque-api/internal/application/auth"
	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/application/usecase"
	"github.com/estoquepro/estoque-api/pkg/config"
	"github.com/estoquepro/estoque-api/pkg/logger"
)

// seed crea el usuario admin inicial y, si Demo está activo, un conjunto
// mínimo de empresas, productos y stock para probar la API recién levantada.
// Los repos arrancan vacíos en cada proceso, así que el seed corre siempre.
func seed(
	cfg config.SeedConfig,
	authUC *auth.AuthUseCase,
	companyUC *usecase.CompanyUseCase,
	productUC *usecase.ProductUseCase,
	inventoryUC *usecase.InventoryItemUseCase,
	log *logger.Logger,
) error {
	admin, err := authUC.Register(dto.CreateUserRequest{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Name:     "Admin",
		Role:     "admin",
	})
	if err != nil {
		return err
	}
	log.Info().Str("email", admin.Email).Msg("usuario admin creado")

	if !cfg.Demo {
		return nil
	}

	techCorp, err := companyUC.Create(dto.CreateCompanyRequest{Name: "Tech Corp", CNPJ: "12.345.678/0001-90"})
	if err != nil {
		return err
	}
	if _, err := companyUC.Create(dto.CreateCompanyRequest{Name: "Global Industries", CNPJ: "98.765.432/0001-10"}); err != nil {
		return err
	}

	laptop, err := productUC.Create(dto.CreateProductRequest{
		Name:        "Laptop",
		Description: "High-performance laptop",
		Category:    "Electronics",
	})
	if err != nil {
		return err
	}
	if _, err := productUC.Create(dto.CreateProductRequest{
		Name:        "Office Chair",
		Description: "Ergonomic office chair",
		Category:    "Furniture",
	}); err != nil {
		return err
	}

	if _, err := inventoryUC.Create(dto.CreateInventoryItemRequest{
		ProductID: laptop.ID,
		CompanyID: techCorp.ID,
		Quantity:  10,
		UnitPrice: decimal.NewFromInt(1200),
		ICMSRate:  decimal.NewFromFloat(0.18),
	}); err != nil {
		return err
	}

	// Operador de demo con membresía sobre la primera empresa.
	operator, err := authUC.Register(dto.CreateUserRequest{
		Email:      "operator@example.com",
		Password:   "operator123",
		Name:       "Company Operator",
		Role:       "company_operator",
		CompanyIDs: []string{techCorp.ID},
	})
	if err != nil {
		return err
	}
	log.Info().Str("email", operator.Email).Msg("datos de demostración cargados")
	return nil
}
