package api

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cleanocean/coa-backend/internal/pkg/constants"
	"github.com/cleanocean/coa-backend/internal/pkg/utils"
)

// AuthMiddleware guards the mutating endpoints: it expects a bearer token in
// the Authorization header and rejects missing, expired or otherwise invalid
// ones with 401.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(constants.HeaderAuthorization)
		if header == "" {
			return constants.ErrMissingToken
		}

		token := strings.TrimPrefix(header, "Bearer ")

		username, err := utils.ParseAuthToken(token)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUsername, username)

		return next(ctx)
	}
}
