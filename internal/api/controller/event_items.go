package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cleanocean/coa-backend/internal/domain"
	"github.com/cleanocean/coa-backend/internal/pkg/store"
)

type saveEventItemRequest struct {
	EventID  int64 `json:"event_id" validate:"required"`
	ItemID   int64 `json:"item_id" validate:"required"`
	Quantity int64 `json:"quantity" validate:"gte=0"`
}

func (r saveEventItemRequest) opts(updatedBy string) store.SaveEventItemOpts {
	return store.SaveEventItemOpts{
		EventID:   r.EventID,
		ItemID:    r.ItemID,
		Quantity:  r.Quantity,
		UpdatedBy: updatedBy,
	}
}

func (c *Controller) ListEventItems(ctx echo.Context) error {
	eventID, err := idParam(ctx, "event_id")
	if err != nil {
		return err
	}

	items, err := c.records.ListEventItems(ctx.Request().Context(), eventID)
	if err != nil {
		return err
	}

	type response struct {
		EventItems []domain.EventItem `json:"event_items"`
	}

	return ctx.JSON(http.StatusOK, response{EventItems: items})
}

func (c *Controller) AddEventItem(ctx echo.Context) error {
	var req saveEventItemRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := c.records.AddEventItem(ctx.Request().Context(), req.opts(ctxUsername(ctx))); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, statusOK)
}

func (c *Controller) UpdateEventItem(ctx echo.Context) error {
	recordID, err := idParam(ctx, "record_id")
	if err != nil {
		return err
	}

	var req saveEventItemRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := c.records.UpdateEventItem(ctx.Request().Context(), recordID, req.opts(ctxUsername(ctx))); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, statusOK)
}

func (c *Controller) RemoveEventItem(ctx echo.Context) error {
	recordID, err := idParam(ctx, "record_id")
	if err != nil {
		return err
	}

	if err := c.records.RemoveEventItem(ctx.Request().Context(), recordID); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, statusOK)
}
