package database

import (
	"fmt"
	"strings"

	"bacchus/winery/internal/config"
)

// Dialect renders the few engine-specific SQL fragments the schema and
// reports need. Format layouts use the %Y/%m/%d tokens both engines share.
type Dialect struct {
	Name string
	// PrimaryKey is the column definition of an auto-generated integer key.
	PrimaryKey string
}

var (
	MySQL  = Dialect{Name: config.DriverMySQL, PrimaryKey: "INT AUTO_INCREMENT PRIMARY KEY"}
	SQLite = Dialect{Name: config.DriverSQLite, PrimaryKey: "INTEGER PRIMARY KEY AUTOINCREMENT"}
)

// For returns the dialect matching a configured driver name.
func For(driver string) Dialect {
	if strings.EqualFold(driver, config.DriverSQLite) {
		return SQLite
	}
	return MySQL
}

func (d Dialect) IsSQLite() bool { return d.Name == config.DriverSQLite }

func (d Dialect) DateFormat(expr, layout string) string {
	if d.IsSQLite() {
		return fmt.Sprintf("strftime('%s', %s)", layout, expr)
	}
	return fmt.Sprintf("DATE_FORMAT(%s, '%s')", expr, layout)
}

// DaysBetween is the signed number of days from earlier to later.
func (d Dialect) DaysBetween(later, earlier string) string {
	if d.IsSQLite() {
		return fmt.Sprintf("CAST(julianday(%s) - julianday(%s) AS INTEGER)", later, earlier)
	}
	return fmt.Sprintf("DATEDIFF(%s, %s)", later, earlier)
}

func (d Dialect) Year(expr string) string {
	if d.IsSQLite() {
		return fmt.Sprintf("CAST(strftime('%%Y', %s) AS INTEGER)", expr)
	}
	return fmt.Sprintf("YEAR(%s)", expr)
}

func (d Dialect) Quarter(expr string) string {
	if d.IsSQLite() {
		return fmt.Sprintf("((CAST(strftime('%%m', %s) AS INTEGER) + 2) / 3)", expr)
	}
	return fmt.Sprintf("QUARTER(%s)", expr)
}
