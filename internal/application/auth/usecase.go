package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/bodega-api/internal/domain"
	"github.com/jhoicas/bodega-api/pkg/jwt"
)

// Config credencial compartida y parámetros del token de sesión.
// SharedPassword admite tres formatos: texto plano, hash SHA-256 en hex
// (64 caracteres) o hash bcrypt ($2a$/$2b$/$2y$).
type Config struct {
	SharedPassword string
	JWTSecret      string
	JWTIssuer      string
	JWTExpMinutes  int
}

// UseCase puerta de autenticación del almacén: una única contraseña
// compartida. El núcleo no conoce usuarios ni roles; un login correcto emite
// un token de sesión que el resto de la API exige.
type UseCase struct {
	cfg Config
}

// NewUseCase construye el caso de uso.
func NewUseCase(cfg Config) *UseCase {
	return &UseCase{cfg: cfg}
}

// Login verifica la contraseña compartida y devuelve un token de sesión JWT.
// Contraseña incorrecta o credencial sin configurar: domain.ErrUnauthorized.
func (uc *UseCase) Login(password string) (string, error) {
	if uc.cfg.SharedPassword == "" || password == "" {
		return "", domain.ErrUnauthorized
	}
	if !uc.verify(password) {
		return "", domain.ErrUnauthorized
	}
	return jwt.Generate(uc.cfg.JWTSecret, uc.cfg.JWTIssuer, uuid.New().String(), uc.cfg.JWTExpMinutes)
}

func (uc *UseCase) verify(password string) bool {
	stored := strings.TrimSpace(uc.cfg.SharedPassword)
	switch {
	case strings.HasPrefix(stored, "$2a$"), strings.HasPrefix(stored, "$2b$"), strings.HasPrefix(stored, "$2y$"):
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	case isHexSHA256(stored):
		sum := sha256.Sum256([]byte(password))
		digest := hex.EncodeToString(sum[:])
		return subtle.ConstantTimeCompare([]byte(digest), []byte(strings.ToLower(stored))) == 1
	default:
		// Texto plano: comparar los SHA-256 de ambos lados en tiempo constante.
		a := sha256.Sum256([]byte(password))
		b := sha256.Sum256([]byte(stored))
		return subtle.ConstantTimeCompare(a[:], b[:]) == 1
	}
}

// isHexSHA256 detecta un digest SHA-256 en hex: exactamente 64 caracteres hex.
func isHexSHA256(s string) bool {
	if len(s) != 64 {
		return false
	}
	for _, c := range strings.ToLower(s) {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
