package database

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"bacchus/winery/internal/config"
)

func TestDSN(t *testing.T) {
	testCases := []struct {
		name     string
		cfg      config.Config
		database string

		expectContains []string
		errorExpected  bool
	}{
		{
			name:           "MySQL bound to a database",
			cfg:            config.FromMap(map[string]string{"USER": "u", "PASSWORD": "p", "HOST": "db"}),
			database:       "winery",
			expectContains: []string{"u:p@tcp(db:3306)/winery", "parseTime=true"},
		}, {
			name:           "MySQL administrative connection",
			cfg:            config.FromMap(map[string]string{"USER": "u", "PASSWORD": "p", "HOST": "db"}),
			expectContains: []string{"u:p@tcp(db:3306)/"},
		}, {
			name:          "MySQL missing host",
			cfg:           config.FromMap(map[string]string{"USER": "u", "PASSWORD": "p"}),
			errorExpected: true,
		}, {
			name:           "SQLite enables foreign keys",
			cfg:            config.FromMap(map[string]string{"DRIVER": "sqlite", "SQLITE_PATH": "cellar.db"}),
			expectContains: []string{"cellar.db?_pragma=foreign_keys(1)"},
		},
	}

	for _, testCase := range testCases {
		dsn, err := DSN(testCase.cfg, testCase.database)
		if testCase.errorExpected != (err != nil) {
			t.Errorf("%s: expected error: %v, got error: %v", testCase.name, testCase.errorExpected, err)
			continue
		}
		for _, want := range testCase.expectContains {
			if !strings.Contains(dsn, want) {
				t.Errorf("%s: expected %q in dsn %q", testCase.name, want, dsn)
			}
		}
	}
}

func TestWithReleasesConnection(t *testing.T) {
	cfg := config.FromMap(map[string]string{"DRIVER": "sqlite", "SQLITE_PATH": filepath.Join(t.TempDir(), "w.db")})

	var handle *sqlx.DB
	err := With(context.Background(), cfg, "", func(db *sqlx.DB) error {
		handle = db
		_, err := db.Exec(`CREATE TABLE t (id INTEGER PRIMARY KEY)`)
		return err
	})
	if err != nil {
		t.Fatalf("With: %v", err)
	}
	if err := handle.Ping(); err == nil {
		t.Errorf("expected connection to be closed after With returns")
	}

	want := errors.New("boom")
	if err := With(context.Background(), cfg, "", func(*sqlx.DB) error { return want }); err != want {
		t.Errorf("expected callback error to propagate, got %v", err)
	}
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind Kind
	}{
		{"Access denied", &mysql.MySQLError{Number: 1045, Message: "Access denied"}, KindAuth},
		{"Unknown database", &mysql.MySQLError{Number: 1049, Message: "Unknown database 'winery'"}, KindMissingDatabase},
		{"Wrapped unknown database", errors.Wrap(&mysql.MySQLError{Number: 1049}, "connect"), KindMissingDatabase},
		{"Duplicate entry", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, KindOther},
		{"SQLite missing table", fmt.Errorf("SQL logic error: no such table: supply (1)"), KindMissingDatabase},
		{"Plain error", errors.New("connection refused"), KindOther},
	}

	for _, testCase := range testCases {
		if got := Classify(testCase.err); got != testCase.kind {
			t.Errorf("%s: expected %v, got %v", testCase.name, testCase.kind, got)
		}
	}
}

func TestDescribe(t *testing.T) {
	msg := Describe(&mysql.MySQLError{Number: 1045})
	if !strings.Contains(msg, "username or password are invalid") || !strings.Contains(msg, "1045") {
		t.Errorf("unexpected auth message %q", msg)
	}
	msg = Describe(&mysql.MySQLError{Number: 1049})
	if !strings.Contains(msg, "database does not exist") {
		t.Errorf("unexpected missing database message %q", msg)
	}
	msg = Describe(errors.New("syntax"))
	if !strings.HasPrefix(msg, "General database error") {
		t.Errorf("unexpected general message %q", msg)
	}
}

func TestDialectFragments(t *testing.T) {
	if got := MySQL.DateFormat("s.order_date", "%m-%d-%Y"); got != "DATE_FORMAT(s.order_date, '%m-%d-%Y')" {
		t.Errorf("mysql date format: %s", got)
	}
	if got := SQLite.DateFormat("s.order_date", "%Y-%m"); got != "strftime('%Y-%m', s.order_date)" {
		t.Errorf("sqlite date format: %s", got)
	}
	if got := MySQL.Quarter("d"); got != "QUARTER(d)" {
		t.Errorf("mysql quarter: %s", got)
	}
	if got := SQLite.Year("d"); got != "CAST(strftime('%Y', d) AS INTEGER)" {
		t.Errorf("sqlite year: %s", got)
	}
	if For("SQLite") != SQLite || For("mysql") != MySQL {
		t.Errorf("For returned the wrong dialect")
	}
}
