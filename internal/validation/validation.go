// Package validation holds the pure form validators used by the screens.
// Each validator maps raw field strings to a field→message map; an empty map
// means the form may be submitted. Field keys are the backend field names so
// errors line up with the wire contract.
package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// DatePattern is the accepted calendar date shape (YYYY-MM-DD).
// Calendar validity is not checked: "2024-02-30" passes.
var DatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// CPFPattern is the accepted CPF shape (000.000.000-00).
// The check digits are not verified.
var CPFPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

// MinPasswordLen is the minimum password length on registration.
const MinPasswordLen = 6

// Errors maps a field name to a human-readable message. A field with no entry
// is valid; validators never return empty-string messages.
type Errors map[string]string

// Valid reports whether the form passed all checks.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// ValidEmail reports whether s contains exactly one '@' separating a
// non-empty local part from a non-empty domain.
func ValidEmail(s string) bool {
	local, domain, ok := strings.Cut(s, "@")
	if !ok {
		return false
	}
	if local == "" || domain == "" {
		return false
	}
	return !strings.Contains(domain, "@")
}

// parseNumber parses a decimal field, rejecting NaN and infinities so range
// checks cannot be bypassed.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
