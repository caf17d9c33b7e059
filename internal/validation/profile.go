package validation

// ProfileForm carries the raw field values of the profile update screen.
// Password is optional here: empty means "do not change".
type ProfileForm struct {
	Name      string
	Email     string
	CPF       string
	BirthDate string
	Password  string
}

// ValidateProfileUpdate checks the profile update form. The rules match the
// registration screen except that the password is only validated when set.
func ValidateProfileUpdate(f ProfileForm) Errors {
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

	if f.Password != "" && len(f.Password) < MinPasswordLen {
		errs["password"] = "A nova senha deve ter no mínimo 6 caracteres"
	}

	return errs
}
