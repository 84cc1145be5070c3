package controller

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cleanocean/coa-backend/internal/domain"
)

// Dashboard defaults, kept for historical reasons: Union Beach is the
// longest-running cleanup site and 2016-1-1 predates the first recorded event.
const (
	defaultLocationCategory = "site"
	defaultLocationName     = "Union Beach"
	defaultStartDate        = "2016-1-1"
)

func queryDefault(ctx echo.Context, key, def string) string {
	if v := ctx.QueryParams().Get(key); v != "" {
		return v
	}
	return def
}

type reportFilter struct {
	category domain.LocationCategory
	name     string
	start    time.Time
	end      time.Time
}

func bindReportFilter(ctx echo.Context) (reportFilter, error) {
	f := reportFilter{
		category: domain.LocationCategory(queryDefault(ctx, "locationCategory", defaultLocationCategory)),
		name:     queryDefault(ctx, "locationName", defaultLocationName),
	}

	var err error
	f.start, err = domain.ParseReportDate(queryDefault(ctx, "startDate", defaultStartDate))
	if err != nil {
		return reportFilter{}, err
	}

	f.end, err = domain.ParseReportDate(queryDefault(ctx, "endDate", time.Now().Format("2006-01-02")))
	if err != nil {
		return reportFilter{}, err
	}

	return f, nil
}

// Index lists the registered routes, the dashboard's discovery endpoint.
func (c *Controller) Index(ctx echo.Context) error {
	routes := ctx.Echo().Routes()
	paths := make([]string, 0, len(routes))
	for _, r := range routes {
		paths = append(paths, fmt.Sprintf("%s %s", r.Method, r.Path))
	}
	sort.Strings(paths)

	return ctx.JSON(http.StatusOK, paths)
}

func (c *Controller) DirtyDozen(ctx echo.Context) error {
	filter, err := bindReportFilter(ctx)
	if err != nil {
		return err
	}

	// limit is undocumented but honored; anything unparsable means the default.
	limit, _ := strconv.Atoi(ctx.QueryParams().Get("limit"))

	entries, err := c.reports.DirtyDozen(ctx.Request().Context(), filter.category, filter.name, filter.start, filter.end, limit)
	if err != nil {
		return err
	}

	type response struct {
		DirtyDozen []domain.DirtyDozenEntry `json:"dirtydozen"`
	}

	return ctx.JSON(http.StatusOK, response{DirtyDozen: entries})
}

func (c *Controller) Breakdown(ctx echo.Context) error {
	filter, err := bindReportFilter(ctx)
	if err != nil {
		return err
	}

	tree, err := c.reports.Breakdown(ctx.Request().Context(), filter.category, filter.name, filter.start, filter.end)
	if err != nil {
		return err
	}

	type response struct {
		Data *domain.BreakdownNode `json:"data"`
	}

	return ctx.JSON(http.StatusOK, response{Data: tree})
}

func (c *Controller) Locations(ctx echo.Context) error {
	locations, err := c.reports.Locations(ctx.Request().Context())
	if err != nil {
		return err
	}

	type response struct {
		Locations []domain.LocationGroup `json:"locations"`
	}

	return ctx.JSON(http.StatusOK, response{Locations: locations})
}

func (c *Controller) LocationsHierarchy(ctx echo.Context) error {
	hierarchy, err := c.reports.LocationsHierarchy(ctx.Request().Context())
	if err != nil {
		return err
	}

	type response struct {
		LocationsHierarchy []*domain.CountyNode `json:"locationsHierarchy"`
	}

	return ctx.JSON(http.StatusOK, response{LocationsHierarchy: hierarchy})
}

func (c *Controller) ValidDateRange(ctx echo.Context) error {
	category := domain.LocationCategory(queryDefault(ctx, "locationCategory", defaultLocationCategory))
	name := queryDefault(ctx, "locationName", defaultLocationName)

	dateRange, err := c.reports.ValidDateRange(ctx.Request().Context(), category, name)
	if err != nil {
		return err
	}

	type response struct {
		ValidDateRange domain.ReportDateRange `json:"validDateRange"`
	}

	return ctx.JSON(http.StatusOK, response{ValidDateRange: dateRange})
}

func (c *Controller) ValidMaterials(ctx echo.Context) error {
	// The location filter applies only when both parameters are present;
	// otherwise the taxonomy is global.
	category := ctx.QueryParams().Get("locationCategory")
	name := ctx.QueryParams().Get("locationName")
	if category == "" {
		name = ""
	}

	materials, err := c.reports.ValidMaterials(ctx.Request().Context(), domain.LocationCategory(category), name)
	if err != nil {
		return err
	}

	type response struct {
		Materials []*domain.MaterialNode `json:"materials"`
	}

	return ctx.JSON(http.StatusOK, response{Materials: materials})
}

func (c *Controller) ItemsList(ctx echo.Context) error {
	itemType := queryDefault(ctx, "itemType", "category")

	values, err := c.reports.ItemsList(ctx.Request().Context(), itemType)
	if err != nil {
		return err
	}

	type response struct {
		ItemsList []string `json:"items_list"`
	}

	return ctx.JSON(http.StatusOK, response{ItemsList: values})
}
