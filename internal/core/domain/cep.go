package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var cepPattern = regexp.MustCompile(`^\d{5}-?\d{3}$`)

// CEP is a postal code in canonical NNNNN-NNN form.
type CEP string

// ParseCEP trims and normalizes raw into canonical form.
// Both "01001000" and "01001-000" are accepted.
func ParseCEP(raw string) (CEP, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: cep is required", ErrInvalidInput)
	}
	if !cepPattern.MatchString(s) {
		return "", fmt.Errorf("%w: cep %q must have 8 digits", ErrInvalidInput, raw)
	}

	digits := strings.ReplaceAll(s, "-", "")
	return CEP(digits[:5] + "-" + digits[5:]), nil
}

// IsCEP reports whether s can be parsed as a CEP.
func IsCEP(s string) bool {
	return cepPattern.MatchString(strings.TrimSpace(s))
}

func (c CEP) String() string {
	return string(c)
}

// Digits returns the code without the hyphen, as ViaCEP expects it.
func (c CEP) Digits() string {
	return strings.ReplaceAll(string(c), "-", "")
}
