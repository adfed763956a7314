package domain

// Winery is the root business entity.
type Winery struct {
	ID    int64  `db:"winery_id" json:"winery_id"`
	Name  string `db:"winery_name" json:"winery_name"`
	Phone string `db:"winery_phone" json:"winery_phone"`
	Email string `db:"winery_email" json:"winery_email"`
}

type Supplier struct {
	ID    int64  `db:"supplier_id" json:"supplier_id"`
	Name  string `db:"supplier_name" json:"supplier_name"`
	Phone string `db:"supplier_phone" json:"supplier_phone"`
	Email string `db:"supplier_email" json:"supplier_email"`
}

type Distributor struct {
	ID    int64  `db:"distributor_id" json:"distributor_id"`
	Name  string `db:"distributor_name" json:"distributor_name"`
	Phone string `db:"distributor_phone" json:"distributor_phone"`
	Email string `db:"distributor_email" json:"distributor_email"`
}
