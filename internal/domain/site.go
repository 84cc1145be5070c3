package domain

// Site is a cleanup location. Lat/Long are nil when geocoding is unknown.
type Site struct {
	SiteID   int64    `db:"site_id" json:"site_id"`
	SiteName string   `db:"site_name" json:"site_name"`
	State    string   `db:"state" json:"state"`
	County   string   `db:"county" json:"county"`
	Town     string   `db:"town" json:"town"`
	Street   string   `db:"street" json:"street"`
	Zipcode  string   `db:"zipcode" json:"zipcode"`
	Lat      *float64 `db:"lat" json:"lat"`
	Long     *float64 `db:"long" json:"long"`
}
