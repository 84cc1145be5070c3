package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cleanocean/coa-backend/internal/pkg/constants"
)

type Binder struct {
	binder echo.DefaultBinder
}

// NewBinder returns the default binder with validation bolted on, so handlers
// get a bound and validated request struct in one call.
func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	if err := b.binder.Bind(i, c); err != nil {
		return constants.NewCodedError(http.StatusBadRequest, err.Error())
	}

	return c.Validate(i)
}
