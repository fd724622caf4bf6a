package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquepro/estoque-api/internal/application/auth"
	"github.com/estoquepro/estoque-api/internal/application/dto"
	"github.com/estoquepro/estoque-api/internal/domain"
	"github.com/estoquepro/estoque-api/internal/infrastructure/memory"
	pkgjwt "github.com/estoquepro/estoque-api/pkg/jwt"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testIssuer   = "estoque-pro-test"
	testPassword = "contraseña-segura"
)

// newAuthFixture arma el caso de uso con un store en memoria, un revoker y
// un usuario admin ya registrado.
func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *auth.Revoker) {
	t.Helper()
	userRepo := memory.NewUserRepository()
	revoker := auth.NewRevoker()
	uc := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     testIssuer,
	}, revoker)

	_, err := uc.Register(dto.CreateUserRequest{
		Email:    "admin@example.com",
		Password: testPassword,
		Name:     "Admin",
		Role:     "admin",
	})
	require.NoError(t, err)
	return uc, revoker
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_EmiteToken(t *testing.T) {
	uc, _ := newAuthFixture(t)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@example.com", Password: testPassword})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "admin", out.User.Role)

	tok, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, tok.UserID)
	assert.Equal(t, "admin", tok.Role)
	assert.NotEmpty(t, tok.JTI, "el token debe llevar jti para poder revocarlo")
}

// Email desconocido y password incorrecto fallan con el mismo error: la
// respuesta no revela cuál de los dos fue.
func TestLogin_FallaGenericaSinDistincion(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, errEmail := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: testPassword})
	_, errPass := uc.Login(dto.LoginRequest{Email: "admin@example.com", Password: "incorrecta"})

	assert.ErrorIs(t, errEmail, domain.ErrUnauthorized)
	assert.ErrorIs(t, errPass, domain.ErrUnauthorized)
	assert.Equal(t, errEmail, errPass)
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout / revocación
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_RevocaElJTI(t *testing.T) {
	uc, revoker := newAuthFixture(t)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@example.com", Password: testPassword})
	require.NoError(t, err)
	tok, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)

	assert.False(t, revoker.IsRevoked(tok.JTI))
	uc.Logout(tok.JTI, tok.ExpiresAt)
	assert.True(t, revoker.IsRevoked(tok.JTI))
}

// Un jti revocado deja de estarlo cuando el token ya expiró: no hace falta
// recordarlo más allá de su vida útil.
func TestRevoker_PurgaEntradasExpiradas(t *testing.T) {
	revoker := auth.NewRevoker()

	revoker.Revoke("jti-viejo", time.Now().Add(-time.Minute))
	assert.False(t, revoker.IsRevoked("jti-viejo"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Register(dto.CreateUserRequest{
		Email:    "admin@example.com",
		Password: "otra-clave-123",
		Name:     "Impostor",
		Role:     "regular_user",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolInvalido(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Register(dto.CreateUserRequest{
		Email:    "x@example.com",
		Password: "clave-123456",
		Name:     "X",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un operador de empresa sin membresía no tendría nada visible: se rechaza.
func TestRegister_OperadorSinMembresia(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Register(dto.CreateUserRequest{
		Email:    "op@example.com",
		Password: "clave-123456",
		Name:     "Operadora",
		Role:     "company_operator",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El hash nunca viaja en la respuesta y el password no se guarda en claro.
func TestRegister_NoExponeElPassword(t *testing.T) {
	uc, _ := newAuthFixture(t)

	out, err := uc.Register(dto.CreateUserRequest{
		Email:    "nueva@example.com",
		Password: "clave-123456",
		Name:     "Nueva",
		Role:     "regular_user",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)

	// Login con el password original funciona: el hash es verificable.
	_, err = uc.Login(dto.LoginRequest{Email: "nueva@example.com", Password: "clave-123456"})
	assert.NoError(t, err)
}
