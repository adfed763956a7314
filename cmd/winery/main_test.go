package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"bacchus/winery/internal/config"
	"bacchus/winery/internal/reports"
)

func sqliteConfig(t *testing.T) config.Config {
	t.Helper()
	return config.FromMap(map[string]string{
		"DRIVER":      config.DriverSQLite,
		"SQLITE_PATH": filepath.Join(t.TempDir(), "winery.db"),
	})
}

func TestRunSetupTwice(t *testing.T) {
	c := sqliteConfig(t)
	ctx := context.Background()

	for round := 1; round <= 2; round++ {
		var out bytes.Buffer
		if err := runSetup(ctx, c, false, &out); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		if !strings.Contains(out.String(), "The Winery database setup is now complete!") {
			t.Errorf("round %d: expected completion message, got %q", round, out.String())
		}
	}

	var out bytes.Buffer
	if err := printReport(ctx, c, reports.Sales, false, &out); err != nil {
		t.Fatal(err)
	}
	// header, rule, 24 sales and a trailing blank line
	if lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n"); len(lines) != 26 {
		t.Errorf("expected 26 report lines after a rebuild, got %d", len(lines))
	}
}

func TestRunSetupDisplay(t *testing.T) {
	var out bytes.Buffer
	if err := runSetup(context.Background(), sqliteConfig(t), true, &out); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"-- DISPLAYING WINERY RECORDS --",
		"-- DISPLAYING WORK_HOURS RECORDS --",
		"Bacchus Winery",
		"250,000.00",
		"11-07-2024",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in display output", want)
		}
	}
	if strings.Contains(out.String(), "[ERROR]") {
		t.Errorf("unexpected table error in display output")
	}
}

func TestPrintReportJSON(t *testing.T) {
	c := sqliteConfig(t)
	ctx := context.Background()
	if err := runSetup(ctx, c, false, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := printReport(ctx, c, reports.SalesTrends, true, &out); err != nil {
		t.Fatal(err)
	}
	var payload struct {
		Name string           `json:"name"`
		Rows []map[string]any `json:"rows"`
	}
	if err := json.Unmarshal(out.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if payload.Name != reports.SalesTrends || len(payload.Rows) != 16 {
		t.Errorf("unexpected payload name %q with %d rows", payload.Name, len(payload.Rows))
	}
}

func TestPrintReportWithoutSchema(t *testing.T) {
	err := printReport(context.Background(), sqliteConfig(t), reports.Employees, false, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "no such table") {
		t.Errorf("expected missing table error, got %v", err)
	}
}

func TestHashPassword(t *testing.T) {
	testCases := []struct {
		name  string
		stdin string
		args  []string
		want  string
		fails bool
	}{
		{name: "Argument", args: []string{"chablis"}, want: "chablis"},
		{name: "Standard input", stdin: "merlot\n", want: "merlot"},
		{name: "Empty input", stdin: "\n", fails: true},
	}

	for _, testCase := range testCases {
		var out bytes.Buffer
		err := hashPassword(strings.NewReader(testCase.stdin), &out, testCase.args)
		if testCase.fails {
			if err == nil {
				t.Errorf("%s: expected error", testCase.name)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", testCase.name, err)
		}
		hash := strings.TrimSpace(out.String())
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(testCase.want)) != nil {
			t.Errorf("%s: hash does not match %q", testCase.name, testCase.want)
		}
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- serve(ctx, srv) }()
	cancel()

	if err := <-done; err != nil {
		t.Errorf("expected clean shutdown, got %v", err)
	}
}
