package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (c *Controller) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	token, err := c.auth.Login(ctx.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	type response struct {
		AccessToken string `json:"access_token"`
	}

	return ctx.JSON(http.StatusOK, response{AccessToken: token})
}
