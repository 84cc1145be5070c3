package domain

// Item is a taxonomy leaf. ItemName may be empty, in which case Category is
// used as the display name.
type Item struct {
	ItemID   int64  `db:"item_id" json:"item_id"`
	Material string `db:"material" json:"material"`
	Category string `db:"category" json:"category"`
	ItemName string `db:"item_name" json:"item_name"`
}

// ItemTypeColumn maps an itemType request value to its summary-view column.
// Unrecognized values fall open to category.
func ItemTypeColumn(itemType string) string {
	switch itemType {
	case "material":
		return "material"
	case "item_name":
		return "item_name"
	default:
		return "category"
	}
}
