package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Config holds the connection secrets and application settings.
type Config struct {
	Driver     string
	User       string
	Password   string
	Host       string
	Port       string
	Database   string
	SQLitePath string

	LogFile string

	Secret             string
	HTTPPort           string
	ReportUser         string
	ReportPasswordHash string
}

// Load reads the secrets file at path. Nothing is exported to the process
// environment; the returned Config is the only carrier of the values.
func Load(path string) (Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read secrets file %s", path)
	}
	return FromMap(values), nil
}

// FromMap builds a Config from already parsed key/value pairs, applying defaults.
func FromMap(values map[string]string) Config {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(values[key]); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		Driver:             strings.ToLower(get("DRIVER", DriverMySQL)),
		User:               values["USER"],
		Password:           values["PASSWORD"],
		Host:               values["HOST"],
		Port:               get("PORT", "3306"),
		Database:           get("DATABASE", "winery"),
		SQLitePath:         get("SQLITE_PATH", "winery.db"),
		LogFile:            get("LOG_FILE", "error_log.txt"),
		Secret:             get("SECRET", "dev_secret"),
		HTTPPort:           get("HTTP_PORT", "8080"),
		ReportUser:         get("REPORT_USER", "admin"),
		ReportPasswordHash: values["REPORT_PASSWORD_HASH"],
	}

	if _, err := strconv.Atoi(cfg.HTTPPort); err != nil {
		cfg.HTTPPort = "8080"
	}
	return cfg
}

// Validate reports the first required key missing for the configured driver.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverMySQL:
		missing := []string{}
		if c.User == "" {
			missing = append(missing, "USER")
		}
		if c.Password == "" {
			missing = append(missing, "PASSWORD")
		}
		if c.Host == "" {
			missing = append(missing, "HOST")
		}
		if len(missing) > 0 {
			return errors.Errorf("missing required secrets: %s", strings.Join(missing, ", "))
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("missing required secret: SQLITE_PATH")
		}
	default:
		return errors.Errorf("unsupported DRIVER %q", c.Driver)
	}
	return nil
}

// Addr is the host:port pair of the MySQL server.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
