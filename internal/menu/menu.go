package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/apex/log"

	"bacchus/winery/internal/reports"
	"bacchus/winery/internal/table"
)

// Runner executes one named report, typically on a fresh connection.
type Runner func(ctx context.Context, name string) (reports.Result, error)

type option struct {
	label   string
	title   string
	reports []string
}

var options = map[string]option{
	"1": {"Supplier Report", "Generating Supplier Report...", []string{reports.Suppliers, reports.SupplierTrends}},
	"2": {"Wine Report", "Generating Wine Report...", []string{reports.Sales, reports.SalesTrends}},
	"3": {"Employee Report", "Generating Employee Report...", []string{reports.Employees}},
}

var titles = map[string]string{
	reports.Suppliers:      "SUPPLIER DELIVERY PERFORMANCE",
	reports.SupplierTrends: "SUPPLIER DELIVERY DELAY TREND",
	reports.Sales:          "WINE SALES PERFORMANCE",
	reports.SalesTrends:    "WINE SALES TREND",
	reports.Employees:      "EMPLOYEE QUARTERLY HOURS",
}

// Menu is the interactive report loop.
type Menu struct {
	in      *bufio.Scanner
	out     io.Writer
	run     Runner
	onError func(io.Writer, error)
}

// New builds a Menu reading choices from in. onError receives every report
// failure; the loop keeps going afterwards.
func New(in io.Reader, out io.Writer, run Runner, onError func(io.Writer, error)) *Menu {
	return &Menu{in: bufio.NewScanner(in), out: out, run: run, onError: onError}
}

func (m *Menu) prompt() {
	fmt.Fprint(m.out, "\n Report Menu:\n")
	for _, key := range []string{"1", "2", "3"} {
		fmt.Fprintf(m.out, "\n %s. %s\n", key, options[key].label)
	}
	fmt.Fprint(m.out, "\n 4. Exit\n\n")
	fmt.Fprint(m.out, "Please make a selection 1-4: ")
}

// Loop reads choices until 4 is entered, input ends or ctx is cancelled.
func (m *Menu) Loop(ctx context.Context) error {
	for {
		m.prompt()
		if !m.in.Scan() {
			fmt.Fprintln(m.out)
			return m.in.Err()
		}
		choice := strings.TrimSpace(m.in.Text())

		if choice == "4" {
			fmt.Fprint(m.out, "\nExiting... \n\n")
			return nil
		}
		opt, ok := options[choice]
		if !ok {
			fmt.Fprint(m.out, "\nInvalid choice! Please select a valid option... \n\n")
			continue
		}

		fmt.Fprintf(m.out, "\n%s \n\n", opt.title)
		for _, name := range opt.reports {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := m.run(ctx, name)
			if err != nil {
				m.onError(m.out, err)
				break
			}
			log.WithField("report", name).Debug("report generated")
			fmt.Fprintf(m.out, "-- %s --\n", titles[name])
			if err := table.Render(m.out, res.Table); err != nil {
				return err
			}
			fmt.Fprintln(m.out)
		}
	}
}
