package usecase

import (
	"time"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
)

// UserUseCase casos de uso de administración de usuarios (solo admin).
// La creación con password vive en auth.AuthUseCase.Register; aquí solo
// lectura, edición de perfil/rol/membresía y eliminación.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID. nil si no existe.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return ToUserResponse(user), nil
}

// Update actualiza los campos presentes. El rol debe pertenecer al conjunto
// cerrado; company_operator exige membresía no vacía.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Role != nil {
		role := entity.Role(*in.Role)
		if !role.Valid() {
			return nil, domain.ErrInvalidInput
		}
		user.Role = role
	}
	if in.CompanyIDs != nil {
		user.CompanyIDs = append([]string(nil), (*in.CompanyIDs)...)
	}
	if user.Role == entity.RoleCompanyOperator && len(user.CompanyIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// List lista usuarios en orden de inserción, con paginación.
func (uc *UserUseCase) List(limit, offset int) (*dto.UserListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un usuario. No-op si el ID no existe.
func (uc *UserUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ToUserResponse convierte la entidad a DTO sin exponer el hash de password.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		CompanyIDs: u.CompanyIDs,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
