package validation

// Sleep and water bounds are inclusive on both ends.
const (
	MaxSleepHours  = 24
	MaxWaterLiters = 10
)

// LogForm carries the raw field values of the log create/edit screens.
// Numeric fields stay strings until validated; the checkboxes and notes need
// no validation.
type LogForm struct {
	Date        string
	Emotion     string
	SleepHours  string
	WaterLiters string
}

// ValidateLog checks a log form. It is shared by the create and edit screens,
// which apply the same rules.
func ValidateLog(f LogForm) Errors {
	errs := Errors{}

	if f.Date == "" {
		errs["data"] = "A data é obrigatória."
	} else if !DatePattern.MatchString(f.Date) {
		errs["data"] = "Formato de data inválido. Use YYYY-MM-DD."
	}

	if f.Emotion == "" {
		errs["emocao"] = "A emoção é obrigatória."
	}

	if f.SleepHours == "" {
		errs["horasSono"] = "Informe quantas horas dormiu."
	} else if v, ok := parseNumber(f.SleepHours); !ok || v < 0 || v > MaxSleepHours {
		errs["horasSono"] = "Informe um valor válido entre 0 e 24."
	}

	if f.WaterLiters == "" {
		errs["aguaLitros"] = "Informe quantos litros de água bebeu."
	} else if v, ok := parseNumber(f.WaterLiters); !ok || v < 0 || v > MaxWaterLiters {
		errs["aguaLitros"] = "Informe um valor válido entre 0 e 10."
	}

	return errs
}
