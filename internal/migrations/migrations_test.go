package migrations

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jknair0/beforeeach"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"bacchus/winery/internal/database"
)

var (
	db   *sqlx.DB
	mock sqlmock.Sqlmock
)

func setUp() {
	var raw *sql.DB
	raw, mock, _ = sqlmock.New()
	db = sqlx.NewDb(raw, "mysql")
}

func tearDown() {
	db.Close()
}

var it = beforeeach.Create(setUp, tearDown)

func createPattern(table string) string {
	return "CREATE TABLE " + table + " \\("
}

func TestRunCreatesTablesInOrder(t *testing.T) {
	it(func() {
		for _, name := range TableNames() {
			mock.ExpectExec(createPattern(name)).WillReturnResult(sqlmock.NewResult(0, 0))
		}
		if err := Run(context.Background(), db, database.MySQL); err != nil {
			t.Errorf("Run: unexpected error %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	it(func() {
		mock.ExpectExec(createPattern("winery")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(createPattern("supplier")).WillReturnError(errors.New("syntax error"))

		err := Run(context.Background(), db, database.MySQL)
		if err == nil || !strings.Contains(err.Error(), "create table supplier") {
			t.Errorf("expected wrapped supplier failure, got %v", err)
		}
		// distributor and later tables must not have been attempted
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
}

func TestResetMySQL(t *testing.T) {
	it(func() {
		mock.ExpectExec(regexp.QuoteMeta("DROP DATABASE IF EXISTS winery")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(regexp.QuoteMeta("CREATE DATABASE winery")).WillReturnResult(sqlmock.NewResult(0, 1))

		if err := Reset(context.Background(), db, database.MySQL, "winery"); err != nil {
			t.Errorf("Reset: unexpected error %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
}

func TestResetRejectsBadName(t *testing.T) {
	it(func() {
		if err := Reset(context.Background(), db, database.MySQL, "winery; DROP TABLE x"); err == nil {
			t.Errorf("expected invalid name error")
		}
	})
}

func TestCatalogOrderRespectsReferences(t *testing.T) {
	seen := map[string]bool{}
	ref := regexp.MustCompile(`REFERENCES (\w+)\(`)
	for _, table := range Tables {
		for _, m := range ref.FindAllStringSubmatch(table.DDL, -1) {
			if !seen[m[1]] {
				t.Errorf("table %s references %s before it is created", table.Name, m[1])
			}
		}
		seen[table.Name] = true
	}
	if len(Tables) != 16 {
		t.Errorf("expected 16 tables, got %d", len(Tables))
	}
}

func TestStatementUsesDialectKey(t *testing.T) {
	stmt := Tables[0].Statement(database.SQLite)
	if !strings.Contains(stmt, "winery_id INTEGER PRIMARY KEY AUTOINCREMENT") {
		t.Errorf("sqlite key not rendered: %s", stmt)
	}
	stmt = Tables[0].Statement(database.MySQL)
	if !strings.Contains(stmt, "winery_id INT AUTO_INCREMENT PRIMARY KEY") {
		t.Errorf("mysql key not rendered: %s", stmt)
	}
}

func TestResetAndRunSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "winery.db")
	lite, err := sqlx.Connect("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatal(err)
	}
	defer lite.Close()
	lite.SetMaxOpenConns(1)

	ctx := context.Background()
	for round := 0; round < 2; round++ {
		if err := Reset(ctx, lite, database.SQLite, "winery"); err != nil {
			t.Fatalf("round %d reset: %v", round, err)
		}
		if err := Run(ctx, lite, database.SQLite); err != nil {
			t.Fatalf("round %d run: %v", round, err)
		}

		var names []string
		if err := lite.Select(&names, `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`); err != nil {
			t.Fatal(err)
		}
		if len(names) != len(Tables) {
			t.Errorf("round %d: expected %d tables, got %d (%v)", round, len(Tables), len(names), names)
		}
	}
}
