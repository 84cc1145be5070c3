package domain

import (
	"time"

	"github.com/cleanocean/coa-backend/internal/pkg/constants"
)

const (
	SeasonSpring = "Spring"
	SeasonFall   = "Fall"
)

type Event struct {
	EventID         int64     `db:"event_id" json:"event_id"`
	SiteID          int64     `db:"site_id" json:"site_id"`
	VolunteerYear   int       `db:"volunteer_year" json:"volunteer_year"`
	VolunteerSeason string    `db:"volunteer_season" json:"volunteer_season"`
	VolunteerCnt    *int64    `db:"volunteer_cnt" json:"volunteer_cnt"`
	TrashbagCnt     *float64  `db:"trashbag_cnt" json:"trashbag_cnt"`
	TrashWeight     *float64  `db:"trash_weight" json:"trash_weight"`
	WalkingDistance *float64  `db:"walking_distance" json:"walking_distance"`
	UpdatedBy       string    `db:"updated_by" json:"updated_by"`
	UpdatedTsp      time.Time `db:"updated_tsp" json:"updated_tsp"`
}

// EventSummary is an Event as listed for a season: the joined sum of all
// item quantities recorded against it rides along.
type EventSummary struct {
	Event
	TrashItemsCnt int64 `db:"trash_items_cnt" json:"trash_items_cnt"`
}

// VolunteerDate derives the nominal event date from year and season:
// Spring events are pinned to April 1st, Fall events to October 1st.
func VolunteerDate(year int, season string) (time.Time, error) {
	var month time.Month
	switch season {
	case SeasonSpring:
		month = time.April
	case SeasonFall:
		month = time.October
	default:
		return time.Time{}, constants.ErrBadSeason
	}

	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}
