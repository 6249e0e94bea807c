package validator

import (
	validators "github.com/go-playground/validator/v10"
)

// Validator interface - struct tag based request validation
type Validator interface {
	ValidateStruct(inf interface{}) error
}

type validator struct {
	validator *validators.Validate
}

// New Validator func
func New() Validator {
	return &validator{
		validator: validators.New(),
	}
}

// ValidateStruct func - validates the struct's `validate` tags
func (v *validator) ValidateStruct(inf interface{}) error {
	return v.validator.Struct(inf)
}
