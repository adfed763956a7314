package seed

import (
	"time"

	"bacchus/winery/domain"
)

// HoursPerDay is the standard length of a business day.
const HoursPerDay = 8

// LastDay returns the final calendar day of the month.
func LastDay(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}

// BusinessDays counts Monday through Friday from the 1st to the last day of
// the month. Holidays are not modeled.
func BusinessDays(year int, month time.Month) int {
	last := LastDay(year, month)
	n := 0
	for d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC); !d.After(last); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			n++
		}
	}
	return n
}

func DefaultMonthlyHours(year int, month time.Month) int {
	return BusinessDays(year, month) * HoursPerDay
}

// PeriodOf returns the month containing t, with no overrides.
func PeriodOf(t time.Time) MonthOverrides {
	return MonthOverrides{Year: t.Year(), Month: t.Month()}
}

// GenerateWorkHours emits one row per employee per month, dated on the
// month's last day. The override for that employee and month wins over the
// business-day default. IDs are assigned sequentially from 1.
func GenerateWorkHours(employees []domain.Employee, months []MonthOverrides) []domain.WorkHours {
	rows := make([]domain.WorkHours, 0, len(employees)*len(months))
	for _, m := range months {
		fallback := DefaultMonthlyHours(m.Year, m.Month)
		date := LastDay(m.Year, m.Month)
		for _, e := range employees {
			hours, ok := m.Hours[e.ID]
			if !ok {
				hours = fallback
			}
			rows = append(rows, domain.WorkHours{
				ID:          int64(len(rows) + 1),
				WorkDate:    date,
				HoursWorked: hours,
				EmployeeID:  e.ID,
			})
		}
	}
	return rows
}
