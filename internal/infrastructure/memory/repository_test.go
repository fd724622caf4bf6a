package memory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newCompany(id, name string) *entity.Company {
	now := time.Now()
	return &entity.Company{ID: id, Name: name, CNPJ: "12.345.678/0001-90", CreatedAt: now, UpdatedAt: now}
}

func newItem(id string, qty int64) *entity.InventoryItem {
	now := time.Now()
	return &entity.InventoryItem{
		ID:        id,
		ProductID: "p1",
		CompanyID: "c1",
		Quantity:  qty,
		UnitPrice: decimal.NewFromInt(100),
		ICMSRate:  decimal.NewFromFloat(0.18),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Semántica CRUD común de los stores en memoria
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyRepo_CreateYGet(t *testing.T) {
	repo := memory.NewCompanyRepository()

	require.NoError(t, repo.Create(newCompany("c1", "Tech Corp")))

	got, err := repo.GetByID("c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Tech Corp", got.Name)
}

// ID inexistente devuelve (nil, nil): ausencia no es error.
func TestCompanyRepo_GetInexistente_NilSinError(t *testing.T) {
	repo := memory.NewCompanyRepository()

	got, err := repo.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCompanyRepo_CreateDuplicado_Falla(t *testing.T) {
	repo := memory.NewCompanyRepository()
	require.NoError(t, repo.Create(newCompany("c1", "Tech Corp")))

	err := repo.Create(newCompany("c1", "Otra"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCompanyRepo_UpdateInexistente_ErrNotFound(t *testing.T) {
	repo := memory.NewCompanyRepository()

	err := repo.Update(newCompany("fantasma", "Nadie"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Delete de un ID inexistente es no-op, sin error.
func TestCompanyRepo_DeleteInexistente_NoOp(t *testing.T) {
	repo := memory.NewCompanyRepository()
	require.NoError(t, repo.Create(newCompany("c1", "Tech Corp")))

	require.NoError(t, repo.Delete("fantasma"))

	list, err := repo.List(0, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

// El listado conserva el orden de inserción incluso después de borrar en el medio.
func TestCompanyRepo_List_OrdenDeInsercionTrasDelete(t *testing.T) {
	repo := memory.NewCompanyRepository()
	require.NoError(t, repo.Create(newCompany("c1", "Primera")))
	require.NoError(t, repo.Create(newCompany("c2", "Segunda")))
	require.NoError(t, repo.Create(newCompany("c3", "Tercera")))

	require.NoError(t, repo.Delete("c2"))

	list, err := repo.List(0, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "c1", list[0].ID)
	assert.Equal(t, "c3", list[1].ID)

	// El índice se reconstruye: c3 sigue siendo alcanzable por ID.
	got, err := repo.GetByID("c3")
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestCompanyRepo_List_Paginacion(t *testing.T) {
	repo := memory.NewCompanyRepository()
	for _, id := range []string{"c1", "c2", "c3", "c4", "c5"} {
		require.NoError(t, repo.Create(newCompany(id, "Empresa "+id)))
	}

	page, err := repo.List(2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "c2", page[0].ID)
	assert.Equal(t, "c3", page[1].ID)

	// Offset más allá del final: página vacía, sin error.
	empty, err := repo.List(10, 99)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// Los stores devuelven copias: mutar el resultado no toca el estado interno.
func TestCompanyRepo_GetDevuelveCopia(t *testing.T) {
	repo := memory.NewCompanyRepository()
	require.NoError(t, repo.Create(newCompany("c1", "Tech Corp")))

	got, err := repo.GetByID("c1")
	require.NoError(t, err)
	got.Name = "Mutada"

	again, err := repo.GetByID("c1")
	require.NoError(t, err)
	assert.Equal(t, "Tech Corp", again.Name)
}

func TestCompanyRepo_GetByCNPJ(t *testing.T) {
	repo := memory.NewCompanyRepository()
	require.NoError(t, repo.Create(newCompany("c1", "Tech Corp")))

	got, err := repo.GetByCNPJ("12.345.678/0001-90")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "c1", got.ID)

	none, err := repo.GetByCNPJ("00.000.000/0000-00")
	require.NoError(t, err)
	assert.Nil(t, none)
}

// ──────────────────────────────────────────────────────────────────────────────
// UserRepo — email único y copia profunda de la membresía
// ──────────────────────────────────────────────────────────────────────────────

func TestUserRepo_FindByEmail(t *testing.T) {
	repo := memory.NewUserRepository()
	now := time.Now()
	require.NoError(t, repo.Create(&entity.User{
		ID:         "u1",
		Name:       "Operadora",
		Email:      "operator@example.com",
		Role:       entity.RoleCompanyOperator,
		CompanyIDs: []string{"c1"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}))

	got, err := repo.FindByEmail("operator@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.ID)

	none, err := repo.FindByEmail("nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestUserRepo_CompanyIDsEsCopia(t *testing.T) {
	repo := memory.NewUserRepository()
	now := time.Now()
	require.NoError(t, repo.Create(&entity.User{
		ID:         "u1",
		Email:      "op@example.com",
		Role:       entity.RoleCompanyOperator,
		CompanyIDs: []string{"c1"},
		CreatedAt:  now,
		UpdatedAt:  now,
	}))

	got, err := repo.GetByID("u1")
	require.NoError(t, err)
	got.CompanyIDs[0] = "hackeada"

	again, err := repo.GetByID("u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, again.CompanyIDs)
}

// ──────────────────────────────────────────────────────────────────────────────
// InventoryItemRepo — UpdateQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryItemRepo_UpdateQuantity(t *testing.T) {
	repo := memory.NewInventoryItemRepository()
	require.NoError(t, repo.Create(newItem("i1", 10)))

	require.NoError(t, repo.UpdateQuantity("i1", 7))

	got, err := repo.GetByID("i1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.Quantity)
	// Solo cambia la cantidad; el precio queda intacto.
	assert.True(t, got.UnitPrice.Equal(decimal.NewFromInt(100)))
}

func TestInventoryItemRepo_UpdateQuantityInexistente_ErrNotFound(t *testing.T) {
	repo := memory.NewInventoryItemRepository()

	err := repo.UpdateQuantity("fantasma", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// TransactionRepo — libro inmutable, copia profunda de punteros de venta
// ──────────────────────────────────────────────────────────────────────────────

func TestTransactionRepo_CopiaProfundaDeVenta(t *testing.T) {
	repo := memory.NewTransactionRepository()
	sale := decimal.NewFromInt(150)
	profit := decimal.NewFromInt(150)
	require.NoError(t, repo.Create(&entity.Transaction{
		ID:        "t1",
		ItemID:    "i1",
		Type:      entity.TransactionOut,
		Quantity:  3,
		UnitPrice: decimal.NewFromInt(100),
		ICMSRate:  decimal.NewFromFloat(0.18),
		SalePrice: &sale,
		Profit:    &profit,
		CreatedBy: "u1",
		Date:      time.Now(),
	}))

	got, err := repo.GetByID("t1")
	require.NoError(t, err)
	require.NotNil(t, got.SalePrice)
	*got.SalePrice = decimal.NewFromInt(999)

	again, err := repo.GetByID("t1")
	require.NoError(t, err)
	assert.True(t, again.SalePrice.Equal(decimal.NewFromInt(150)),
		"mutar la copia no debe tocar el asiento guardado")
}

func TestTransactionRepo_ListByItem(t *testing.T) {
	repo := memory.NewTransactionRepository()
	for i, itemID := range []string{"i1", "i2", "i1"} {
		require.NoError(t, repo.Create(&entity.Transaction{
			ID:        string(rune('a' + i)),
			ItemID:    itemID,
			Type:      entity.TransactionIn,
			Quantity:  1,
			UnitPrice: decimal.NewFromInt(10),
			Date:      time.Now(),
		}))
	}

	got, err := repo.ListByItem("i1")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
