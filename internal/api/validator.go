package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cleanocean/coa-backend/internal/pkg/constants"
)

type Validator struct {
	validator *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validator: validator.New()}
}

// Validate reports tag violations as 400s instead of echo's default 500.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}

	return nil
}
