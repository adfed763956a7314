package reports

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"bacchus/winery/internal/migrations"
	"bacchus/winery/internal/table"
)

// DumpTable returns every row of a catalog table with its column names as
// headers. DECIMAL and DATE columns are converted so the formatter can
// render them whatever representation the driver hands back.
func (e *Engine) DumpTable(ctx context.Context, name string) (table.Table, error) {
	known := false
	for _, n := range migrations.TableNames() {
		if n == name {
			known = true
			break
		}
	}
	if !known {
		return table.Table{}, errors.Errorf("unknown table %q", name)
	}

	rows, err := e.db.QueryxContext(ctx, "SELECT * FROM "+name)
	if err != nil {
		return table.Table{}, errors.Wrapf(err, "read table %s", name)
	}
	defer rows.Close()

	types, err := rows.ColumnTypes()
	if err != nil {
		return table.Table{}, errors.Wrapf(err, "describe table %s", name)
	}
	t := table.Table{Headers: make([]string, len(types))}
	for i, ct := range types {
		t.Headers[i] = ct.Name()
	}

	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return table.Table{}, errors.Wrapf(err, "scan table %s", name)
		}
		for i, v := range values {
			values[i] = convert(strings.ToUpper(types[i].DatabaseTypeName()), v)
		}
		t.Rows = append(t.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return table.Table{}, errors.Wrapf(err, "read table %s", name)
	}
	return t, nil
}

func convert(dbType string, v any) any {
	if v == nil {
		return nil
	}
	switch {
	case strings.HasPrefix(dbType, "DECIMAL"):
		switch x := v.(type) {
		case []byte:
			if d, err := decimal.NewFromString(string(x)); err == nil {
				return d
			}
		case string:
			if d, err := decimal.NewFromString(x); err == nil {
				return d
			}
		case int64:
			return decimal.NewFromInt(x)
		case float64:
			return decimal.NewFromFloat(x)
		}
	case dbType == "DATE":
		var s string
		switch x := v.(type) {
		case []byte:
			s = string(x)
		case string:
			s = x
		default:
			return v
		}
		if len(s) >= 10 {
			if d, err := time.Parse("2006-01-02", s[:10]); err == nil {
				return d
			}
		}
		return s
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
