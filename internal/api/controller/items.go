package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cleanocean/coa-backend/internal/domain"
	"github.com/cleanocean/coa-backend/internal/pkg/store"
)

type saveItemRequest struct {
	Material string `json:"material" validate:"required"`
	Category string `json:"category" validate:"required"`
	ItemName string `json:"item_name"`
}

func (r saveItemRequest) opts() store.SaveItemOpts {
	return store.SaveItemOpts{
		Material: r.Material,
		Category: r.Category,
		ItemName: r.ItemName,
	}
}

func (c *Controller) ListItems(ctx echo.Context) error {
	items, err := c.records.ListItems(ctx.Request().Context())
	if err != nil {
		return err
	}

	type response struct {
		Items []domain.Item `json:"items"`
	}

	return ctx.JSON(http.StatusOK, response{Items: items})
}

func (c *Controller) AddItem(ctx echo.Context) error {
	var req saveItemRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := c.records.AddItem(ctx.Request().Context(), req.opts()); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, statusOK)
}

func (c *Controller) UpdateItem(ctx echo.Context) error {
	itemID, err := idParam(ctx, "item_id")
	if err != nil {
		return err
	}

	var req saveItemRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := c.records.UpdateItem(ctx.Request().Context(), itemID, req.opts()); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, statusOK)
}

func (c *Controller) RemoveItem(ctx echo.Context) error {
	itemID, err := idParam(ctx, "item_id")
	if err != nil {
		return err
	}

	if err := c.records.RemoveItem(ctx.Request().Context(), itemID); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, statusOK)
}
