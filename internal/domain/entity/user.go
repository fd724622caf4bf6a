package entity

import "time"

// Role es el conjunto cerrado de roles del sistema. Agregar un rol exige
// actualizar Valid() y las funciones de capacidad, no comparaciones sueltas.
type Role string

const (
	RoleAdmin           Role = "admin"
	RoleCompanyOperator Role = "company_operator"
	RoleRegularUser     Role = "regular_user"
)

// Valid reporta si el rol pertenece al conjunto conocido.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCompanyOperator, RoleRegularUser:
		return true
	}
	return false
}

// CanSeeAllCompanies: solo admin ve todas las empresas sin filtro de membresía.
func (r Role) CanSeeAllCompanies() bool { return r == RoleAdmin }

// CanManageUsers: solo admin crea/edita/elimina usuarios.
func (r Role) CanManageUsers() bool { return r == RoleAdmin }

// CanManageCatalog: admin y company_operator mantienen productos e inventario.
func (r Role) CanManageCatalog() bool {
	return r == RoleAdmin || r == RoleCompanyOperator
}

// User representa un usuario del sistema. CompanyIDs es el conjunto de
// membresía: vacío para admin (ve todo) y obligatorio para company_operator.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	CompanyIDs   []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCompany reporta si la empresa pertenece al conjunto de membresía del usuario.
// No considera el rol; esa decisión vive en el filtro de acceso.
func (u *User) HasCompany(companyID string) bool {
	for _, id := range u.CompanyIDs {
		if id == companyID {
			return true
		}
	}
	return false
}
