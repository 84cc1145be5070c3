package domain

import "time"

// ItemQuantity is one group of the summary view: all rows sharing an
// item_name, with quantities summed. Grouping is by the display name, not
// item_id — distinct items sharing a name merge into one group. That is
// inherited behavior the published envelopes depend on.
type ItemQuantity struct {
	ItemName    string `db:"item_name"`
	ItemID      int64  `db:"item_id"`
	Category    string `db:"category"`
	Material    string `db:"material"`
	QuantitySum int64  `db:"quantity_sum"`
}

// DateRange is the min/max volunteer_date of a filtered row set. Both are nil
// when no rows matched.
type DateRange struct {
	FirstDate *time.Time `db:"first_date"`
	LastDate  *time.Time `db:"last_date"`
}

// LocationTriple is one distinct (county, town, site) combination.
type LocationTriple struct {
	County   string `db:"county"`
	Town     string `db:"town"`
	SiteName string `db:"site_name"`
}
