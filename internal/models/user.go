package models

// RoleUsuario is the privileged role tag assigned to regular account holders.
// Any other role value is treated as restricted.
const RoleUsuario = "usuario"

// User is the profile returned by the backend on login, registration and
// profile update. JSON field names follow the backend contract.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"nomeUser"`
	Email     string `json:"email"`
	CPF       string `json:"cpfUser"`
	BirthDate string `json:"dataAniversario"` // calendar date, YYYY-MM-DD
	Role      string `json:"role"`
}

// IsUsuario reports whether the user carries the privileged role tag.
func (u *User) IsUsuario() bool {
	return u.Role == RoleUsuario
}
