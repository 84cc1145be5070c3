package domain

// DirtyDozenEntry is one ranked row of the top-N report. Percentage is of the
// total across all groups in the filtered window, not just the top N.
type DirtyDozenEntry struct {
	ItemName     string  `json:"itemName"`
	ItemID       int64   `json:"itemId"`
	CategoryName string  `json:"categoryName"`
	MaterialName string  `json:"materialName"`
	Count        int64   `json:"count"`
	Percentage   float64 `json:"percentage"`
}

// BreakdownNode is a node of the sunburst tree. Inner nodes carry Children,
// leaves carry Count. Sibling order is encounter order and must survive
// serialization as-is.
type BreakdownNode struct {
	Name     string           `json:"name"`
	Children []*BreakdownNode `json:"children,omitempty"`
	Count    *int64           `json:"count,omitempty"`
}

// LocationGroup lists every known name of one location category.
type LocationGroup struct {
	LocationCategory string   `json:"locationCategory"`
	LocationLabel    string   `json:"locationLabel"`
	LocationNames    []string `json:"locationNames"`
}

// CountyNode / TownNode nest the known locations county → town → site.
type CountyNode struct {
	County string      `json:"county"`
	Towns  []*TownNode `json:"towns"`
}

type TownNode struct {
	Town  string   `json:"town"`
	Sites []string `json:"sites"`
}

// ReportDateRange is the valid-date-range payload. Zero matching rows
// serialize as an empty object, not an error.
type ReportDateRange struct {
	FirstDate string `json:"firstDate,omitempty"`
	LastDate  string `json:"lastDate,omitempty"`
}

// MaterialNode / CategoryNode / ItemName nest the valid-materials taxonomy in
// first-encounter order.
type MaterialNode struct {
	Material   string          `json:"material"`
	Categories []*CategoryNode `json:"categories"`
}

type CategoryNode struct {
	Category  string     `json:"category"`
	ItemNames []ItemName `json:"item_names"`
}

type ItemName struct {
	ItemName string `json:"item_name"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
