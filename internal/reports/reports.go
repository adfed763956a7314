package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"bacchus/winery/internal/database"
	"bacchus/winery/internal/table"
)

// Report names accepted by Run.
const (
	Suppliers      = "suppliers"
	Sales          = "sales"
	Employees      = "employees"
	SupplierTrends = "supplier-trends"
	SalesTrends    = "sales-trends"
)

// Names lists the reports in menu order.
var Names = []string{Suppliers, SupplierTrends, Sales, SalesTrends, Employees}

// Engine runs read-only reporting queries against a seeded schema.
type Engine struct {
	db      *sqlx.DB
	dialect database.Dialect
	now     func() time.Time
}

// New constructs an Engine. The quarterly report reads the wall clock.
func New(db *sqlx.DB, d database.Dialect) *Engine {
	return &Engine{db: db, dialect: d, now: time.Now}
}

// WithClock replaces the clock used to determine the in-progress quarter.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Result carries a report's typed rows alongside their console rendering.
type Result struct {
	Name  string      `json:"name"`
	Rows  any         `json:"rows"`
	Table table.Table `json:"-"`
}

// Run executes the named report.
func (e *Engine) Run(ctx context.Context, name string) (Result, error) {
	res := Result{Name: name}
	switch name {
	case Suppliers:
		rows, err := e.DeliveryPerformance(ctx)
		if err != nil {
			return res, err
		}
		res.Rows, res.Table = rows, DeliveryTable(rows)
	case SupplierTrends:
		rows, err := e.SupplierDelayTrend(ctx)
		if err != nil {
			return res, err
		}
		res.Rows, res.Table = rows, SupplierTrendTable(rows)
	case Sales:
		rows, err := e.SalesPerformance(ctx)
		if err != nil {
			return res, err
		}
		res.Rows, res.Table = rows, SalesTable(rows)
	case SalesTrends:
		rows, err := e.SalesTrend(ctx)
		if err != nil {
			return res, err
		}
		res.Rows, res.Table = rows, SalesTrendTable(rows)
	case Employees:
		rows, err := e.EmployeeQuarterlyHours(ctx)
		if err != nil {
			return res, err
		}
		res.Rows, res.Table = rows, EmployeeHoursTable(rows)
	default:
		return res, errors.Errorf("unknown report %q", name)
	}
	return res, nil
}

// quarterOf returns the calendar quarter, 1 through 4.
func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

func (e *Engine) selectRows(ctx context.Context, dest any, report, query string, args ...any) error {
	if err := e.db.SelectContext(ctx, dest, query, args...); err != nil {
		return errors.Wrapf(err, "%s report", report)
	}
	return nil
}

func (e *Engine) fmtDate(expr, layout string) string {
	return e.dialect.DateFormat(expr, layout)
}

func (e *Engine) delay() string {
	return fmt.Sprintf("SUM(%s)", e.dialect.DaysBetween("s.delivery_date", "s.expected_date"))
}
