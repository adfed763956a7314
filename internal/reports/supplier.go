package reports

import (
	"context"
	"fmt"

	"bacchus/winery/internal/table"
)

// DeliveryRow is the delay total of one supplier for one order date.
type DeliveryRow struct {
	OrderMonth     string `db:"order_month" json:"order_month"`
	SupplierName   string `db:"supplier_name" json:"supplier_name"`
	ExpectedDate   string `db:"expected_date" json:"expected_date"`
	DeliveryDate   string `db:"delivery_date" json:"delivery_date"`
	TotalDelayDays int64  `db:"total_delay_days" json:"total_delay_days"`
}

// DeliveryPerformance sums delivery delays per supplier. The group key is
// the formatted order date string (MM-DD-YYYY), so only orders placed on the
// same day are summed together. Rows are ordered by the year-month of the
// group's earliest order, then worst delay first.
func (e *Engine) DeliveryPerformance(ctx context.Context) ([]DeliveryRow, error) {
	query := fmt.Sprintf(`SELECT
            %s AS order_month,
            sup.supplier_name,
            %s AS expected_date,
            %s AS delivery_date,
            %s AS total_delay_days
        FROM supply s
        JOIN supplier sup ON s.supplier_id = sup.supplier_id
        GROUP BY order_month, sup.supplier_name
        ORDER BY %s ASC, total_delay_days DESC, sup.supplier_name ASC`,
		e.fmtDate("s.order_date", "%m-%d-%Y"),
		e.fmtDate("MIN(s.expected_date)", "%m-%d-%Y"),
		e.fmtDate("MIN(s.delivery_date)", "%m-%d-%Y"),
		e.delay(),
		e.fmtDate("MIN(s.order_date)", "%Y-%m"),
	)

	rows := []DeliveryRow{}
	if err := e.selectRows(ctx, &rows, "supplier delivery", query); err != nil {
		return nil, err
	}
	return rows, nil
}

// TrendRow is one supplier's delay total for a calendar month, the series
// behind the delivery delay chart.
type TrendRow struct {
	Month          string `db:"order_month" json:"month"`
	SupplierName   string `db:"supplier_name" json:"supplier_name"`
	TotalDelayDays int64  `db:"total_delay_days" json:"total_delay_days"`
}

func (e *Engine) SupplierDelayTrend(ctx context.Context) ([]TrendRow, error) {
	query := fmt.Sprintf(`SELECT
            %s AS order_month,
            sup.supplier_name,
            %s AS total_delay_days
        FROM supply s
        JOIN supplier sup ON s.supplier_id = sup.supplier_id
        GROUP BY order_month, sup.supplier_name
        ORDER BY order_month ASC, sup.supplier_name ASC`,
		e.fmtDate("s.order_date", "%Y-%m"),
		e.delay(),
	)

	rows := []TrendRow{}
	if err := e.selectRows(ctx, &rows, "supplier delay trend", query); err != nil {
		return nil, err
	}
	return rows, nil
}

func DeliveryTable(rows []DeliveryRow) table.Table {
	t := table.Table{Headers: []string{"Ordered Date", "Supplier Name", "Expected Date", "Delivered Date", "Total Delay Days"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.OrderMonth, r.SupplierName, r.ExpectedDate, r.DeliveryDate, r.TotalDelayDays})
	}
	return t
}

func SupplierTrendTable(rows []TrendRow) table.Table {
	t := table.Table{Headers: []string{"Month", "Supplier Name", "Total Delay Days"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Month, r.SupplierName, r.TotalDelayDays})
	}
	return t
}
