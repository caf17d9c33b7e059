package validation

// RegistrationForm carries the raw field values of the registration screen.
type RegistrationForm struct {
	Name      string
	Email     string
	CPF       string
	BirthDate string
	Password  string
}

// ValidateRegistration checks the registration form. Presence is checked
// first; format rules only run when the field is present.
func ValidateRegistration(f RegistrationForm) Errors {
	errs := Errors{}

	if f.Name == "" {
		errs["nomeUser"] = "O nome é obrigatório"
	}

	if f.Email == "" {
		errs["email"] = "O email é obrigatório"
	} else if !ValidEmail(f.Email) {
		errs["email"] = "O email informado é inválido"
	}

	if f.CPF == "" {
		errs["cpfUser"] = "O CPF é obrigatório"
	} else if !CPFPattern.MatchString(f.CPF) {
		errs["cpfUser"] = "Formato de CPF inválido (use 000.000.000-00)"
	}

	if f.BirthDate == "" {
		errs["dataAniversario"] = "A data é obrigatória"
	} else if !DatePattern.MatchString(f.BirthDate) {
		errs["dataAniversario"] = "Formato de data inválido (use yyyy-MM-dd)"
	}

	if f.Password == "" {
		errs["password"] = "A senha é obrigatória"
	} else if len(f.Password) < MinPasswordLen {
		errs["password"] = "A senha deve ter no mínimo 6 caracteres"
	}

	return errs
}
