package menu

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"bacchus/winery/internal/reports"
	"bacchus/winery/internal/table"
)

type recorder struct {
	calls []string
	fail  map[string]error
}

func (r *recorder) run(_ context.Context, name string) (reports.Result, error) {
	r.calls = append(r.calls, name)
	if err := r.fail[name]; err != nil {
		return reports.Result{}, err
	}
	return reports.Result{
		Name:  name,
		Table: table.Table{Headers: []string{"Report"}, Rows: [][]any{{name}}},
	}, nil
}

func failures(out io.Writer, err error) {
	fmt.Fprintf(out, "FAILED: %v\n", err)
}

func TestLoopDispatch(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		calls []string
	}{
		{
			name:  "Supplier report runs both supplier queries",
			input: "1\n4\n",
			calls: []string{reports.Suppliers, reports.SupplierTrends},
		}, {
			name:  "Wine report runs sales and trend",
			input: "2\n4\n",
			calls: []string{reports.Sales, reports.SalesTrends},
		}, {
			name:  "Employee report",
			input: " 3 \n4\n",
			calls: []string{reports.Employees},
		}, {
			name:  "Exit right away",
			input: "4\n1\n",
			calls: nil,
		}, {
			name:  "Input ends without exit",
			input: "3\n",
			calls: []string{reports.Employees},
		},
	}

	for _, testCase := range testCases {
		rec := &recorder{}
		var out bytes.Buffer
		if err := New(strings.NewReader(testCase.input), &out, rec.run, failures).Loop(context.Background()); err != nil {
			t.Errorf("%s: unexpected error %v", testCase.name, err)
		}
		if !reflect.DeepEqual(rec.calls, testCase.calls) {
			t.Errorf("%s: expected calls %v, got %v", testCase.name, testCase.calls, rec.calls)
		}
	}
}

func TestLoopInvalidChoiceReprintsMenu(t *testing.T) {
	rec := &recorder{}
	var out bytes.Buffer
	if err := New(strings.NewReader("9\nabc\n4\n"), &out, rec.run, failures).Loop(context.Background()); err != nil {
		t.Fatal(err)
	}

	if len(rec.calls) != 0 {
		t.Errorf("expected no reports, got %v", rec.calls)
	}
	if got := strings.Count(out.String(), "Invalid choice!"); got != 2 {
		t.Errorf("expected 2 invalid choice messages, got %d", got)
	}
	if got := strings.Count(out.String(), "Report Menu:"); got != 3 {
		t.Errorf("expected menu printed 3 times, got %d", got)
	}
	if !strings.Contains(out.String(), "Exiting...") {
		t.Errorf("expected exit message, got %q", out.String())
	}
}

func TestLoopRendersTables(t *testing.T) {
	rec := &recorder{}
	var out bytes.Buffer
	if err := New(strings.NewReader("3\n4\n"), &out, rec.run, failures).Loop(context.Background()); err != nil {
		t.Fatal(err)
	}

	want := "-- EMPLOYEE QUARTERLY HOURS --\nReport   \n---------\nemployees\n"
	if !strings.Contains(out.String(), want) {
		t.Errorf("expected rendered table %q in output:\n%s", want, out.String())
	}
}

func TestLoopReportFailureReturnsToMenu(t *testing.T) {
	rec := &recorder{fail: map[string]error{reports.Suppliers: errors.New("no such table: supply")}}
	var out bytes.Buffer
	if err := New(strings.NewReader("1\n3\n4\n"), &out, rec.run, failures).Loop(context.Background()); err != nil {
		t.Fatal(err)
	}

	// the trend query is skipped once the first supplier query fails
	if want := []string{reports.Suppliers, reports.Employees}; !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("expected calls %v, got %v", want, rec.calls)
	}
	if !strings.Contains(out.String(), "FAILED: no such table: supply") {
		t.Errorf("expected failure to be reported, got:\n%s", out.String())
	}
}

func TestLoopCancelled(t *testing.T) {
	rec := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(strings.NewReader("1\n4\n"), &out, rec.run, failures).Loop(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("expected no reports after cancel, got %v", rec.calls)
	}
}
