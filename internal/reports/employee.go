package reports

import (
	"context"
	"fmt"

	"bacchus/winery/internal/table"
)

// HoursRow is an employee's hours summed per calendar quarter.
type HoursRow struct {
	EmployeeID int64  `db:"employee_id" json:"employee_id"`
	FirstName  string `db:"first_name" json:"first_name"`
	LastName   string `db:"last_name" json:"last_name"`
	Q1         int64  `db:"q1_total" json:"q1"`
	Q2         int64  `db:"q2_total" json:"q2"`
	Q3         int64  `db:"q3_total" json:"q3"`
	Q4         int64  `db:"q4_total" json:"q4"`
}

// EmployeeQuarterlyHours buckets work hours by quarter of work_date for
// every employee. Rows in the current year and quarter are left out since
// that period is still in progress; quarters without hours read zero.
func (e *Engine) EmployeeQuarterlyHours(ctx context.Context) ([]HoursRow, error) {
	quarter := e.dialect.Quarter("wh.work_date")
	bucket := func(q int) string {
		return fmt.Sprintf("COALESCE(SUM(CASE WHEN %s = %d THEN wh.hours_worked ELSE 0 END), 0) AS q%d_total", quarter, q, q)
	}

	query := fmt.Sprintf(`SELECT
            e.employee_id,
            e.first_name,
            e.last_name,
            %s,
            %s,
            %s,
            %s
        FROM employee e
        LEFT JOIN work_hours wh ON e.employee_id = wh.employee_id
            AND NOT (%s = ? AND %s = ?)
        GROUP BY e.employee_id, e.first_name, e.last_name
        ORDER BY e.employee_id ASC`,
		bucket(1), bucket(2), bucket(3), bucket(4),
		e.dialect.Year("wh.work_date"), quarter,
	)

	now := e.now()
	rows := []HoursRow{}
	if err := e.selectRows(ctx, &rows, "employee hours", query, now.Year(), quarterOf(now)); err != nil {
		return nil, err
	}
	return rows, nil
}

func EmployeeHoursTable(rows []HoursRow) table.Table {
	t := table.Table{Headers: []string{"First Name", "Last Name", "Q1", "Q2", "Q3", "Q4"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.FirstName, r.LastName, r.Q1, r.Q2, r.Q3, r.Q4})
	}
	return t
}
