package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobPosition is a salary band.
type JobPosition struct {
	ID        int64           `db:"position_id" json:"position_id"`
	Name      string          `db:"position_name" json:"position_name"`
	SalaryMin decimal.Decimal `db:"salary_min" json:"salary_min"`
	SalaryMax decimal.Decimal `db:"salary_max" json:"salary_max"`
}

type Employee struct {
	ID           int64  `db:"employee_id" json:"employee_id"`
	FirstName    string `db:"first_name" json:"first_name"`
	LastName     string `db:"last_name" json:"last_name"`
	DepartmentID *int64 `db:"department_id" json:"department_id,omitempty"`
	WineryID     int64  `db:"winery_id" json:"winery_id"`
	PositionID   int64  `db:"position_id" json:"position_id"`
}

// Department references its manager, who is an Employee. ManagerID stays nil
// until the manager backfill runs.
type Department struct {
	ID        int64  `db:"department_id" json:"department_id"`
	Name      string `db:"department_name" json:"department_name"`
	ManagerID *int64 `db:"manager_id" json:"manager_id,omitempty"`
}

type WorkHours struct {
	ID          int64     `db:"work_id" json:"work_id"`
	WorkDate    time.Time `db:"work_date" json:"work_date"`
	HoursWorked int       `db:"hours_worked" json:"hours_worked"`
	EmployeeID  int64     `db:"employee_id" json:"employee_id"`
}
