package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquepro/estoque-api/internal/application/access"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
)

func companiesFixture() []*entity.Company {
	return []*entity.Company{
		{ID: "1", Name: "Acme Distribuidora", CNPJ: "12.345.678/0001-90"},
		{ID: "2", Name: "Beta Comercio", CNPJ: "98.765.432/0001-10"},
		{ID: "3", Name: "Gamma Logística", CNPJ: "11.222.333/0001-44"},
	}
}

func itemsFixture() []*entity.InventoryItem {
	return []*entity.InventoryItem{
		{ID: "i1", ProductID: "p1", CompanyID: "1"},
		{ID: "i2", ProductID: "p2", CompanyID: "2"},
		{ID: "i3", ProductID: "p1", CompanyID: "1"},
	}
}

// Admin ve la colección completa, sin copia ni reordenamiento.
func TestVisibleCompanies_AdminVeTodo(t *testing.T) {
	admin := &entity.User{ID: "u1", Role: entity.RoleAdmin}
	all := companiesFixture()

	got := access.VisibleCompanies(admin, all)
	assert.Equal(t, all, got, "admin debe ver todas las empresas")
}

// Operador con membresía {"1"} ve solo la empresa 1.
func TestVisibleCompanies_OperadorFiltraPorMembresia(t *testing.T) {
	op := &entity.User{ID: "u2", Role: entity.RoleCompanyOperator, CompanyIDs: []string{"1"}}

	got := access.VisibleCompanies(op, companiesFixture())
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

// Usuario sin membresía ve un conjunto vacío, no nil-panic ni todo.
func TestVisibleCompanies_SinMembresiaVeVacio(t *testing.T) {
	u := &entity.User{ID: "u3", Role: entity.RoleRegularUser}

	got := access.VisibleCompanies(u, companiesFixture())
	assert.Empty(t, got)
}

func TestVisibleItems_AdminVeTodo(t *testing.T) {
	admin := &entity.User{ID: "u1", Role: entity.RoleAdmin}
	all := itemsFixture()

	got := access.VisibleItems(admin, all)
	assert.Equal(t, all, got)
}

func TestVisibleItems_OperadorFiltraPorEmpresaDelItem(t *testing.T) {
	op := &entity.User{ID: "u2", Role: entity.RoleCompanyOperator, CompanyIDs: []string{"1"}}

	got := access.VisibleItems(op, itemsFixture())
	require.Len(t, got, 2)
	for _, it := range got {
		assert.Equal(t, "1", it.CompanyID)
	}
}

func TestCanAccessCompany(t *testing.T) {
	admin := &entity.User{Role: entity.RoleAdmin}
	op := &entity.User{Role: entity.RoleCompanyOperator, CompanyIDs: []string{"1"}}

	assert.True(t, access.CanAccessCompany(admin, "99"), "admin accede a cualquier empresa")
	assert.True(t, access.CanAccessCompany(op, "1"))
	assert.False(t, access.CanAccessCompany(op, "2"))
}

// El filtro es puro: la misma entrada produce la misma salida y no muta nada.
func TestVisibleCompanies_EsPuro(t *testing.T) {
	op := &entity.User{Role: entity.RoleCompanyOperator, CompanyIDs: []string{"2"}}
	all := companiesFixture()

	first := access.VisibleCompanies(op, all)
	second := access.VisibleCompanies(op, all)
	assert.Equal(t, first, second)
	assert.Len(t, all, 3, "la colección de entrada no debe mutar")
}
