package reports

import (
	"context"
	"fmt"

	"bacchus/winery/internal/table"
)

// SaleRow is one sale with its wine type and distributor.
type SaleRow struct {
	SaleDate        string `db:"sale_date" json:"sale_date"`
	SaleID          int64  `db:"sale_id" json:"sale_id"`
	Quantity        int64  `db:"quantity" json:"quantity"`
	WineTypeName    string `db:"wine_type_name" json:"wine_type_name"`
	DistributorName string `db:"distributor_name" json:"distributor_name"`
}

// SalesPerformance lists every sale, oldest first.
func (e *Engine) SalesPerformance(ctx context.Context) ([]SaleRow, error) {
	query := fmt.Sprintf(`SELECT
            %s AS sale_date,
            s.sale_id,
            s.quantity,
            wt.wine_type_name,
            d.distributor_name
        FROM sales s
        JOIN wines w ON s.wine_id = w.wine_id
        JOIN wine_type wt ON w.wine_type_id = wt.wine_type_id
        JOIN distributor d ON s.distributor_id = d.distributor_id
        ORDER BY s.sale_date ASC, s.sale_id ASC, d.distributor_name ASC`,
		e.fmtDate("s.sale_date", "%m-%d-%Y"),
	)

	rows := []SaleRow{}
	if err := e.selectRows(ctx, &rows, "sales", query); err != nil {
		return nil, err
	}
	return rows, nil
}

// SalesTrendRow is the quantity a distributor bought of one wine type in a month.
type SalesTrendRow struct {
	Month           string `db:"sale_month" json:"month"`
	DistributorName string `db:"distributor_name" json:"distributor_name"`
	WineTypeName    string `db:"wine_type_name" json:"wine_type_name"`
	TotalQuantity   int64  `db:"total_quantity" json:"total_quantity"`
}

func (e *Engine) SalesTrend(ctx context.Context) ([]SalesTrendRow, error) {
	query := fmt.Sprintf(`SELECT
            %s AS sale_month,
            d.distributor_name,
            wt.wine_type_name,
            SUM(s.quantity) AS total_quantity
        FROM sales s
        JOIN wines w ON s.wine_id = w.wine_id
        JOIN wine_type wt ON w.wine_type_id = wt.wine_type_id
        JOIN distributor d ON s.distributor_id = d.distributor_id
        GROUP BY sale_month, d.distributor_name, wt.wine_type_name
        ORDER BY %s ASC, d.distributor_name ASC, wt.wine_type_name ASC`,
		e.fmtDate("s.sale_date", "%m-%Y"),
		e.fmtDate("MIN(s.sale_date)", "%Y-%m"),
	)

	rows := []SalesTrendRow{}
	if err := e.selectRows(ctx, &rows, "sales trend", query); err != nil {
		return nil, err
	}
	return rows, nil
}

func SalesTable(rows []SaleRow) table.Table {
	t := table.Table{Headers: []string{"Sale Date", "Sale ID", "Quantity", "Wine Type", "Distributor Name"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.SaleDate, r.SaleID, r.Quantity, r.WineTypeName, r.DistributorName})
	}
	return t
}

func SalesTrendTable(rows []SalesTrendRow) table.Table {
	t := table.Table{Headers: []string{"Month", "Distributor Name", "Wine Type", "Total Quantity"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []any{r.Month, r.DistributorName, r.WineTypeName, r.TotalQuantity})
	}
	return t
}
