package auth_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bodega-api/internal/application/auth"
	"github.com/jhoicas/bodega-api/internal/domain"
	pkgjwt "github.com/jhoicas/bodega-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func newUseCase(t *testing.T, sharedPassword string) *auth.UseCase {
	t.Helper()
	return auth.NewUseCase(auth.Config{
		SharedPassword: sharedPassword,
		JWTSecret:      testSecret,
		JWTIssuer:      "bodega-test",
		JWTExpMinutes:  60,
	})
}

// Contraseña configurada en texto plano: login correcto emite un token válido.
func TestLogin_TextoPlano(t *testing.T) {
	uc := newUseCase(t, "almacen123")

	token, err := uc.Login("almacen123")
	require.NoError(t, err)

	sessionID, err := pkgjwt.Parse(testSecret, token)
	require.NoError(t, err, "el token emitido debe ser verificable")
	assert.NotEmpty(t, sessionID)
}

// Contraseña configurada como digest SHA-256 en hex.
func TestLogin_HashSHA256(t *testing.T) {
	sum := sha256.Sum256([]byte("almacen123"))
	uc := newUseCase(t, hex.EncodeToString(sum[:]))

	_, err := uc.Login("almacen123")
	assert.NoError(t, err)

	_, err = uc.Login("otra")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Contraseña configurada como hash bcrypt.
func TestLogin_HashBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("almacen123"), bcrypt.MinCost)
	require.NoError(t, err)
	uc := newUseCase(t, string(hash))

	_, err = uc.Login("almacen123")
	assert.NoError(t, err)

	_, err = uc.Login("otra")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Contraseña incorrecta o vacía: ErrUnauthorized, sin token.
func TestLogin_Rechazos(t *testing.T) {
	uc := newUseCase(t, "almacen123")

	_, err := uc.Login("incorrecta")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// Credencial sin configurar: nadie entra, ni siquiera con contraseña vacía.
func TestLogin_SinCredencialConfigurada(t *testing.T) {
	uc := newUseCase(t, "")

	_, err := uc.Login("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
