package seed

import (
	"time"

	"bacchus/winery/domain"
)

// Dataset is everything the loader inserts, one slice per table. Record IDs
// state the surrogate key each row is expected to receive, so rows of a
// table must be listed in ascending ID order starting at 1.
type Dataset struct {
	Wineries       []domain.Winery
	Suppliers      []domain.Supplier
	Distributors   []domain.Distributor
	Positions      []domain.JobPosition
	Employees      []domain.Employee
	Departments    []domain.Department
	Managers       []ManagerAssignment
	WineTypes      []domain.WineType
	GrapeVarieties []domain.GrapeVariety
	Pairings       []domain.WineGrapeVariety
	Wines          []domain.Wine
	SupplyTypes    []domain.SupplyType
	Supplies       []domain.Supply
	SupplyDetails  []domain.SupplyDetail
	OrderStatuses  []domain.OrderStatus
	Sales          []domain.Sale
	// WorkHourOverrides also defines the seeded months: every listed month
	// produces one work_hours row per employee, overridden or not.
	WorkHourOverrides []MonthOverrides
}

// ManagerAssignment names the employee who manages a department.
type ManagerAssignment struct {
	Department string
	EmployeeID int64
}

// MonthOverrides holds exceptional monthly hour totals keyed by employee id.
type MonthOverrides struct {
	Year  int
	Month time.Month
	Hours map[int64]int
}
