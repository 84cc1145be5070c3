package domain

import "time"

// EventItem is a fact row: the quantity of one item type collected at one event.
type EventItem struct {
	RecordID   int64     `db:"record_id" json:"record_id"`
	EventID    int64     `db:"event_id" json:"event_id"`
	ItemID     int64     `db:"item_id" json:"item_id"`
	Quantity   int64     `db:"quantity" json:"quantity"`
	UpdatedBy  string    `db:"updated_by" json:"updated_by"`
	UpdatedTsp time.Time `db:"updated_tsp" json:"updated_tsp"`
}
