package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cleanocean/coa-backend/internal/domain"
	"github.com/cleanocean/coa-backend/internal/pkg/store"
)

type saveSiteRequest struct {
	SiteName string   `json:"site_name" validate:"required"`
	State    string   `json:"state"`
	County   string   `json:"county"`
	Town     string   `json:"town"`
	Street   string   `json:"street"`
	Zipcode  string   `json:"zipcode"`
	Lat      *float64 `json:"lat"`
	Long     *float64 `json:"long"`
}

func (r saveSiteRequest) opts() store.SaveSiteOpts {
	return store.SaveSiteOpts{
		SiteName: r.SiteName,
		State:    r.State,
		County:   r.County,
		Town:     r.Town,
		Street:   r.Street,
		Zipcode:  r.Zipcode,
		Lat:      r.Lat,
		Long:     r.Long,
	}
}

func (c *Controller) ListSites(ctx echo.Context) error {
	sites, err := c.records.ListSites(ctx.Request().Context())
	if err != nil {
		return err
	}

	type response struct {
		Sites []domain.Site `json:"sites"`
	}

	return ctx.JSON(http.StatusOK, response{Sites: sites})
}

func (c *Controller) AddSite(ctx echo.Context) error {
	var req saveSiteRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := c.records.AddSite(ctx.Request().Context(), req.opts()); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, statusOK)
}

func (c *Controller) UpdateSite(ctx echo.Context) error {
	siteID, err := idParam(ctx, "site_id")
	if err != nil {
		return err
	}

	var req saveSiteRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := c.records.UpdateSite(ctx.Request().Context(), siteID, req.opts()); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, statusOK)
}

func (c *Controller) RemoveSite(ctx echo.Context) error {
	siteID, err := idParam(ctx, "site_id")
	if err != nil {
		return err
	}

	if err := c.records.RemoveSite(ctx.Request().Context(), siteID); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, statusOK)
}
