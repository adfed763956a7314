package domain

import "github.com/shopspring/decimal"

type WineType struct {
	ID   int64  `db:"wine_type_id" json:"wine_type_id"`
	Name string `db:"wine_type_name" json:"wine_type_name"`
}

type GrapeVariety struct {
	ID   int64  `db:"grape_variety_id" json:"grape_variety_id"`
	Name string `db:"grape_variety_name" json:"grape_variety_name"`
}

// WineGrapeVariety pairs a wine type with a grape variety.
type WineGrapeVariety struct {
	WineTypeID     int64 `db:"wine_type_id" json:"wine_type_id"`
	GrapeVarietyID int64 `db:"grape_variety_id" json:"grape_variety_id"`
}

type Wine struct {
	ID                int64           `db:"wine_id" json:"wine_id"`
	InventoryQuantity int             `db:"inventory_quantity" json:"inventory_quantity"`
	PricePerBottle    decimal.Decimal `db:"price_per_bottle" json:"price_per_bottle"`
	VintageYear       int             `db:"vintage_year" json:"vintage_year"`
	WineryID          int64           `db:"winery_id" json:"winery_id"`
	WineTypeID        int64           `db:"wine_type_id" json:"wine_type_id"`
}
