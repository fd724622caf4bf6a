package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquepro/estoque-api/internal/application/inventory"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: dos empresas con un item cada una y un movimiento por item
// ──────────────────────────────────────────────────────────────────────────────

type ledgerFixture struct {
	itemRepo    *memory.InventoryItemRepo
	txRepo      *memory.TransactionRepo
	productRepo *memory.ProductRepo
	companyRepo *memory.CompanyRepo
	record      *inventory.RecordTransactionUseCase
	list        *inventory.ListTransactionsUseCase
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	now := time.Now()

	companyRepo := memory.NewCompanyRepository()
	require.NoError(t, companyRepo.Create(&entity.Company{ID: "c1", Name: "Tech Corp", CNPJ: "1", CreatedAt: now, UpdatedAt: now}))
	require.NoError(t, companyRepo.Create(&entity.Company{ID: "c2", Name: "Global Industries", CNPJ: "2", CreatedAt: now, UpdatedAt: now}))

	productRepo := memory.NewProductRepository()
	require.NoError(t, productRepo.Create(&entity.Product{ID: "p1", Name: "Laptop", CreatedAt: now, UpdatedAt: now}))

	itemRepo := memory.NewInventoryItemRepository()
	for _, it := range []struct{ id, company string }{{"i1", "c1"}, {"i2", "c2"}} {
		require.NoError(t, itemRepo.Create(&entity.InventoryItem{
			ID:        it.id,
			ProductID: "p1",
			CompanyID: it.company,
			Quantity:  10,
			UnitPrice: decimal.NewFromInt(100),
			ICMSRate:  decimal.NewFromFloat(0.18),
			CreatedAt: now,
			UpdatedAt: now,
		}))
	}

	txRepo := memory.NewTransactionRepository()
	f := &ledgerFixture{
		itemRepo:    itemRepo,
		txRepo:      txRepo,
		productRepo: productRepo,
		companyRepo: companyRepo,
		record:      inventory.NewRecordTransactionUseCase(memory.NewTxRunner(itemRepo, txRepo)),
		list:        inventory.NewListTransactionsUseCase(txRepo, itemRepo, productRepo, companyRepo),
	}

	sale := decimal.NewFromInt(150)
	for _, itemID := range []string{"i1", "i2"} {
		_, err := f.record.Record(context.Background(), inventory.TransactionInput{
			UserID:    "u1",
			ItemID:    itemID,
			Type:      entity.TransactionOut,
			Quantity:  3,
			SalePrice: &sale,
		})
		require.NoError(t, err)
	}
	return f
}

func adminUser() *entity.User {
	return &entity.User{ID: "admin", Role: entity.RoleAdmin}
}

func operatorUser(companies ...string) *entity.User {
	return &entity.User{ID: "op", Role: entity.RoleCompanyOperator, CompanyIDs: companies}
}

// ──────────────────────────────────────────────────────────────────────────────
// Visibilidad
// ──────────────────────────────────────────────────────────────────────────────

func TestListForUser_AdminVeTodo(t *testing.T) {
	f := newLedgerFixture(t)

	out, err := f.list.ListForUser(adminUser(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Page.Total)
}

func TestListForUser_OperadorSoloSuEmpresa(t *testing.T) {
	f := newLedgerFixture(t)

	out, err := f.list.ListForUser(operatorUser("c1"), 0, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "i1", out.Items[0].ItemID)
	assert.Equal(t, "Tech Corp", out.Items[0].CompanyName)
	assert.Equal(t, "Laptop", out.Items[0].ProductName)
}

func TestListForUser_DerivadosDeVenta(t *testing.T) {
	f := newLedgerFixture(t)

	out, err := f.list.ListForUser(adminUser(), 0, 0)
	require.NoError(t, err)
	tx := out.Items[0]

	require.NotNil(t, tx.TotalSale)
	assert.True(t, tx.TotalSale.Equal(decimal.NewFromInt(450)), "150*3 = 450")
	require.NotNil(t, tx.Margin)
	assert.True(t, tx.Margin.Equal(decimal.NewFromFloat(0.5)), "(150-100)/100 = 0.5")
	require.NotNil(t, tx.Profit)
	assert.True(t, tx.Profit.Equal(decimal.NewFromInt(150)))
}

// Borrar el producto deja el nombre vacío en el listado: la referencia
// colgante se tolera, no rompe el libro.
func TestListForUser_ProductoBorrado_NombreVacio(t *testing.T) {
	f := newLedgerFixture(t)
	require.NoError(t, f.productRepo.Delete("p1"))

	out, err := f.list.ListForUser(adminUser(), 0, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Empty(t, out.Items[0].ProductName)
	assert.Equal(t, "Tech Corp", out.Items[0].CompanyName, "la empresa sigue resolviéndose")
}

// Asientos de items ya eliminados: solo los ve admin, un operador no tiene
// empresa contra la cual filtrarlos.
func TestListForUser_ItemBorrado_SoloAdmin(t *testing.T) {
	f := newLedgerFixture(t)
	require.NoError(t, f.itemRepo.Delete("i1"))

	adminOut, err := f.list.ListForUser(adminUser(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, adminOut.Items, 2, "admin sigue viendo el asiento huérfano")

	opOut, err := f.list.ListForUser(operatorUser("c1"), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, opOut.Items, "el operador pierde el asiento del item borrado")
}

func TestListForUser_PaginacionTrasFiltrar(t *testing.T) {
	f := newLedgerFixture(t)

	out, err := f.list.ListForUser(adminUser(), 1, 1)
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Equal(t, 2, out.Page.Total, "el total cuenta lo visible, no la página")
}
