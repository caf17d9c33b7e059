// Package api contains the wire types exchanged with the remote backend.
package api

import "github.com/LucasAlmeida-cmd/vitalog/internal/models"

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// LoginResponse is the body of a successful POST /login.
type LoginResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"` // opaque bearer token (JWT on current backend)
}

// RegisterRequest is the body of POST /usuarios/salvar.
type RegisterRequest struct {
	Name      string `json:"nomeUser"`
	Email     string `json:"email"`
	CPF       string `json:"cpfUser"`
	BirthDate string `json:"dataAniversario"`
	Password  string `json:"password"`
}

// UpdateUserRequest is the body of PUT /usuarios/atualizar/{id}.
// An empty Password is omitted from the payload, which the backend
// interprets as "keep the current password".
type UpdateUserRequest struct {
	Name      string `json:"nomeUser"`
	Email     string `json:"email"`
	CPF       string `json:"cpfUser"`
	BirthDate string `json:"dataAniversario"`
	Password  string `json:"password,omitempty"`
}

// ErrorResponse is the backend's error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
