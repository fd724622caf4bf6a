// Package access implementa el filtro de visibilidad por rol y membresía.
// Es puro y sin estado: se recalcula en cada lectura sobre las colecciones
// vivas, nunca se cachea un resultado.
package access

import "github.com/estoquepro/estoque-api/internal/domain/entity"

// VisibleCompanies devuelve las empresas que el usuario puede ver.
// Admin ve todas; cualquier otro rol ve solo su conjunto de membresía.
// Sin membresía, el resultado es vacío.
func VisibleCompanies(user *entity.User, companies []*entity.Company) []*entity.Company {
	if user.Role.CanSeeAllCompanies() {
		return companies
	}
	member := membershipSet(user)
	out := make([]*entity.Company, 0, len(companies))
	for _, c := range companies {
		if _, ok := member[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out
}

// VisibleItems devuelve los items de inventario cuya empresa es visible
// para el usuario, con la misma regla que VisibleCompanies.
func VisibleItems(user *entity.User, items []*entity.InventoryItem) []*entity.InventoryItem {
	if user.Role.CanSeeAllCompanies() {
		return items
	}
	member := membershipSet(user)
	out := make([]*entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if _, ok := member[it.CompanyID]; ok {
			out = append(out, it)
		}
	}
	return out
}

// CanAccessCompany reporta si el usuario puede operar sobre la empresa.
func CanAccessCompany(user *entity.User, companyID string) bool {
	if user.Role.CanSeeAllCompanies() {
		return true
	}
	return user.HasCompany(companyID)
}

func membershipSet(user *entity.User) map[string]struct{} {
	m := make(map[string]struct{}, len(user.CompanyIDs))
	for _, id := range user.CompanyIDs {
		m[id] = struct{}{}
	}
	return m
}
