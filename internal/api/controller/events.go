package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cleanocean/coa-backend/internal/domain"
	"github.com/cleanocean/coa-backend/internal/pkg/store"
)

type listEventsRequest struct {
	Year   int    `query:"year" validate:"required"`
	Season string `query:"season" validate:"required,oneof=Spring Fall"`
}

type saveEventRequest struct {
	SiteID          int64    `json:"site_id" validate:"required"`
	VolunteerYear   int      `json:"volunteer_year" validate:"required"`
	VolunteerSeason string   `json:"volunteer_season" validate:"required,oneof=Spring Fall"`
	VolunteerCnt    *int64   `json:"volunteer_cnt"`
	TrashbagCnt     *float64 `json:"trashbag_cnt"`
	TrashWeight     *float64 `json:"trash_weight"`
	WalkingDistance *float64 `json:"walking_distance"`
}

func (r saveEventRequest) opts(updatedBy string) store.SaveEventOpts {
	return store.SaveEventOpts{
		SiteID:          r.SiteID,
		VolunteerYear:   r.VolunteerYear,
		VolunteerSeason: r.VolunteerSeason,
		VolunteerCnt:    r.VolunteerCnt,
		TrashbagCnt:     r.TrashbagCnt,
		TrashWeight:     r.TrashWeight,
		WalkingDistance: r.WalkingDistance,
		UpdatedBy:       updatedBy,
	}
}

func (c *Controller) ListEvents(ctx echo.Context) error {
	var req listEventsRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	events, err := c.records.ListEvents(ctx.Request().Context(), req.Year, req.Season)
	if err != nil {
		return err
	}

	type response struct {
		Events []domain.EventSummary `json:"events"`
	}

	return ctx.JSON(http.StatusOK, response{Events: events})
}

func (c *Controller) AddEvent(ctx echo.Context) error {
	var req saveEventRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := c.records.AddEvent(ctx.Request().Context(), req.opts(ctxUsername(ctx))); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, statusOK)
}

func (c *Controller) UpdateEvent(ctx echo.Context) error {
	eventID, err := idParam(ctx, "event_id")
	if err != nil {
		return err
	}

	var req saveEventRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := c.records.UpdateEvent(ctx.Request().Context(), eventID, req.opts(ctxUsername(ctx))); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, statusOK)
}

func (c *Controller) RemoveEvent(ctx echo.Context) error {
	eventID, err := idParam(ctx, "event_id")
	if err != nil {
		return err
	}

	if err := c.records.RemoveEvent(ctx.Request().Context(), eventID); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, statusOK)
}
