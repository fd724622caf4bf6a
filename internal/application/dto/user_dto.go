package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
// CompanyIDs es el conjunto de membresía; requerido para company_operator.
type CreateUserRequest struct {
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"required,min=8"`
	Name       string   `json:"name" validate:"required,min=1,max=200"`
	Role       string   `json:"role" validate:"required,oneof=admin company_operator regular_user"`
	CompanyIDs []string `json:"company_ids"`
}

// UpdateUserRequest entrada para actualizar un usuario (campos opcionales).
type UpdateUserRequest struct {
	Name       *string   `json:"name" validate:"omitempty,min=1,max=200"`
	Email      *string   `json:"email" validate:"omitempty,email"`
	Role       *string   `json:"role" validate:"omitempty,oneof=admin company_operator regular_user"`
	CompanyIDs *[]string `json:"company_ids"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	CompanyIDs []string  `json:"company_ids,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
