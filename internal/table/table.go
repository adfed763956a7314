// Package table renders query results as left-justified console tables.
package table

import (
	"bufio"
	"database/sql/driver"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
)

const (
	separator  = " | "
	nullToken  = "NULL"
	dateLayout = "01-02-2006"
)

// Table is a header row plus data rows of arbitrary cell values.
type Table struct {
	Headers []string
	Rows    [][]any
}

// Format renders one cell: dates as MM-DD-YYYY, decimal amounts with two
// fraction digits and thousands separators, nulls as NULL.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return nullToken
	case string:
		return x
	case []byte:
		return string(x)
	case time.Time:
		return x.Format(dateLayout)
	case *time.Time:
		if x == nil {
			return nullToken
		}
		return x.Format(dateLayout)
	case decimal.Decimal:
		return groupThousands(x.StringFixed(2))
	case decimal.NullDecimal:
		if !x.Valid {
			return nullToken
		}
		return groupThousands(x.Decimal.StringFixed(2))
	case float64:
		return groupThousands(decimal.NewFromFloat(x).StringFixed(2))
	case float32:
		return groupThousands(decimal.NewFromFloat32(x).StringFixed(2))
	case *int64:
		if x == nil {
			return nullToken
		}
		return fmt.Sprint(*x)
	case driver.Valuer:
		inner, err := x.Value()
		if err != nil {
			return fmt.Sprint(v)
		}
		return Format(inner)
	default:
		return fmt.Sprint(v)
	}
}

// groupThousands inserts commas into the integer part of a plain decimal string.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + frac
}

// Cells formats every row of t.
func (t Table) Cells() [][]string {
	cells := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = Format(v)
		}
	}
	return cells
}

// Widths is the display width of each column: the widest of its header and
// its formatted cells.
func (t Table) Widths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Cells() {
		for i, c := range row {
			if i < len(widths) {
				if w := runewidth.StringWidth(c); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	return widths
}

// Render writes the header, a dash rule as wide as the header line, and one
// line per row.
func Render(w io.Writer, t Table) error {
	widths := t.Widths()
	out := bufio.NewWriter(w)

	writeLine := func(cells []string) {
		padded := make([]string, len(widths))
		for i := range widths {
			c := ""
			if i < len(cells) {
				c = cells[i]
			}
			padded[i] = runewidth.FillRight(c, widths[i])
		}
		fmt.Fprintln(out, strings.Join(padded, separator))
	}

	writeLine(t.Headers)
	rule := 0
	for _, width := range widths {
		rule += width
	}
	if len(widths) > 1 {
		rule += len(separator) * (len(widths) - 1)
	}
	fmt.Fprintln(out, strings.Repeat("-", rule))
	for _, row := range t.Cells() {
		writeLine(row)
	}
	return out.Flush()
}

// String renders t into a string.
func (t Table) String() string {
	var b strings.Builder
	_ = Render(&b, t)
	return b.String()
}
