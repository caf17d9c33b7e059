package auth

import "errors"

// Normalized service errors. The message is what the user sees, verbatim;
// the backend detail is never part of it.
var (
	ErrInvalidCredentials = errors.New("Email ou senha inválidos")
	ErrRegistrationFailed = errors.New("Erro ao criar usuário. Verifique os dados e tente novamente.")
	ErrUpdateFailed       = errors.New("Não foi possível atualizar o perfil.")
)

// Error pairs a normalized kind with its underlying cause. Error() returns
// only the generic user-facing message; the cause stays reachable through
// Unwrap for logging and tests.
type Error struct {
	kind  error
	cause error
}

func newError(kind, cause error) *Error {
	return &Error{kind: kind, cause: cause}
}

func (e *Error) Error() string {
	return e.kind.Error()
}

// Is matches the normalized kind, so errors.Is(err, ErrInvalidCredentials)
// works without the kind appearing in the message chain twice.
func (e *Error) Is(target error) bool {
	return target == e.kind
}

// Unwrap exposes the underlying cause (e.g. *api.HTTPError).
func (e *Error) Unwrap() error {
	return e.cause
}
