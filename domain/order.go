package domain

import "time"

type SupplyType struct {
	ID   int64  `db:"supply_type_id" json:"supply_type_id"`
	Name string `db:"type_name" json:"type_name"`
}

// Supply is an order placed with a supplier.
type Supply struct {
	ID           int64     `db:"supply_id" json:"supply_id"`
	OrderDate    time.Time `db:"order_date" json:"order_date"`
	ExpectedDate time.Time `db:"expected_date" json:"expected_date"`
	DeliveryDate time.Time `db:"delivery_date" json:"delivery_date"`
	SupplierID   int64     `db:"supplier_id" json:"supplier_id"`
	WineryID     int64     `db:"winery_id" json:"winery_id"`
}

// SupplyDetail is one line item of a supply order.
type SupplyDetail struct {
	SupplyID     int64 `db:"supply_id" json:"supply_id"`
	SupplyTypeID int64 `db:"supply_type_id" json:"supply_type_id"`
	Quantity     int   `db:"quantity" json:"quantity"`
}

type OrderStatus struct {
	ID   int64  `db:"order_status_id" json:"order_status_id"`
	Name string `db:"status_name" json:"status_name"`
}

type Sale struct {
	ID            int64     `db:"sale_id" json:"sale_id"`
	Quantity      int       `db:"quantity" json:"quantity"`
	SaleDate      time.Time `db:"sale_date" json:"sale_date"`
	WineID        int64     `db:"wine_id" json:"wine_id"`
	DistributorID int64     `db:"distributor_id" json:"distributor_id"`
	OrderStatusID int64     `db:"order_status_id" json:"order_status_id"`
}
