package domain

import "github.com/go-playground/validator/v10"

// NewValidator returns a validator with the "cep" tag registered.
// It panics if registration fails.
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("cep", isCEPField); err != nil {
		panic("register cep validation: " + err.Error())
	}
	return v
}

func isCEPField(fl validator.FieldLevel) bool {
	return IsCEP(fl.Field().String())
}
