package dto

// LoginRequest body para POST /api/auth/login. El almacén usa una única
// contraseña compartida; no hay usuarios.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse token de sesión emitido tras un login correcto.
type LoginResponse struct {
	Token string `json:"token"`
}
