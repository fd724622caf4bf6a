package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/domain/entity"
	"github.com/estoquepro/estoque-api/internal/domain/repository"
	"github.com/estoquepro/estoque-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login, logout y registro.
// Los tokens son stateless (JWT); logout agrega el jti a la lista de
// revocación para que el middleware lo rechace hasta su expiración.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	revoker  *Revoker
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, revoker *Revoker) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, revoker: revoker}
}

// Login verifica email/password contra el hash bcrypt del usuario y genera
// el JWT. Email desconocido y password incorrecto devuelven el mismo
// domain.ErrUnauthorized: la respuesta no revela cuál de los dos falló.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Logout revoca el token actual. Operaciones posteriores con ese jti fallan
// en el middleware con 401.
func (uc *AuthUseCase) Logout(jti string, expiresAt time.Time) {
	uc.revoker.Revoke(jti, expiresAt)
}

// Register crea un usuario: valida rol y membresía, hashea el password con
// bcrypt y persiste. Devuelve ErrEmailAlreadyExists si el email ya existe.
func (uc *AuthUseCase) Register(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := entity.Role(in.Role)
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if role == entity.RoleCompanyOperator && len(in.CompanyIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CompanyIDs:   append([]string(nil), in.CompanyIDs...),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
