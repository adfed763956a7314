package database

import (
	"context"
	"strings"

	"github.com/apex/log"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"bacchus/winery/internal/config"
)

// DSN builds the driver connection string. An empty database opens an
// administrative MySQL connection that is not bound to any schema.
func DSN(cfg config.Config, database string) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	switch cfg.Driver {
	case config.DriverSQLite:
		path := cfg.SQLitePath
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + "_pragma=foreign_keys(1)", nil
	default:
		mc := mysql.NewConfig()
		mc.User = cfg.User
		mc.Passwd = cfg.Password
		mc.Net = "tcp"
		mc.Addr = cfg.Addr()
		mc.DBName = database
		mc.ParseTime = true
		return mc.FormatDSN(), nil
	}
}

// Connect opens and pings a single-connection handle.
func Connect(ctx context.Context, cfg config.Config, database string) (*sqlx.DB, error) {
	dsn, err := DSN(cfg, database)
	if err != nil {
		return nil, err
	}
	db, err := sqlx.ConnectContext(ctx, cfg.Driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "connect to %s database %q", cfg.Driver, database)
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

// With opens a connection for the duration of fn and always releases it.
func With(ctx context.Context, cfg config.Config, database string, fn func(*sqlx.DB) error) error {
	db, err := Connect(ctx, cfg, database)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.WithError(cerr).Warn("closing database connection")
		}
	}()
	return fn(db)
}
