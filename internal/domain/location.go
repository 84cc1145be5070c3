package domain

import (
	"fmt"
	"time"

	"github.com/cleanocean/coa-backend/internal/pkg/constants"
)

// LocationCategory is the granularity a location filter is applied at.
type LocationCategory string

const (
	CategorySite   LocationCategory = "site"
	CategoryTown   LocationCategory = "town"
	CategoryCounty LocationCategory = "county"
)

// LocationCategories is the fixed presentation order of the categories.
var LocationCategories = []LocationCategory{CategorySite, CategoryTown, CategoryCounty}

// Column maps the category to its summary-view column. Unrecognized values
// fall open to site_name rather than erroring, matching the dashboard's
// historical leniency.
func (c LocationCategory) Column() string {
	switch c {
	case CategoryTown:
		return "town"
	case CategoryCounty:
		return "county"
	default:
		return "site_name"
	}
}

func (c LocationCategory) Label() string {
	switch c {
	case CategoryTown:
		return "Town"
	case CategoryCounty:
		return "County"
	default:
		return "Site"
	}
}

// reportDateLayout accepts both padded and non-padded request dates
// ("2016-1-1" and "2016-01-01").
const reportDateLayout = "2006-1-2"

const dateFormat = "2006-01-02"

// ParseReportDate parses a request date bound. Malformed input is a client
// error, not a crash.
func ParseReportDate(s string) (time.Time, error) {
	t, err := time.Parse(reportDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", constants.ErrBadDate, s)
	}
	return t, nil
}

// FormatDate renders a date the way the dashboard expects, YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateFormat)
}
