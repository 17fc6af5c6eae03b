package domain

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCEP(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want CEP
	}{
		{"canonical", "01001-000", "01001-000"},
		{"digits only", "01001000", "01001-000"},
		{"surrounding whitespace", "  99999-999\t", "99999-999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCEP(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCEPRejects(t *testing.T) {
	for _, raw := range []string{"", "  ", "0100100", "010010000", "01001_000", "0100-1000", "abcdefgh", "０１００１０００"} {
		_, err := ParseCEP(raw)
		assert.ErrorIs(t, err, ErrInvalidInput, "input %q", raw)
	}
}

func TestCEPDigits(t *testing.T) {
	assert.Equal(t, "01001000", CEP("01001-000").Digits())
}

func TestValidatorCEPTag(t *testing.T) {
	var v *validator.Validate
	require.NotPanics(t, func() { v = NewValidator() })

	assert.NoError(t, v.Struct(Address{CEP: "01001-000", State: "SP"}))
	assert.Error(t, v.Struct(Address{CEP: "0100"}))
	assert.Error(t, v.Struct(Address{CEP: "01001-000", State: "SPX"}))
	assert.Error(t, v.Struct(Address{CEP: "01001-000", IBGE: "35a"}))
}
