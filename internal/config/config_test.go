package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromMapDefaults(t *testing.T) {
	cfg := FromMap(map[string]string{"USER": "root", "PASSWORD": "pw", "HOST": "db"})

	if cfg.Driver != DriverMySQL {
		t.Errorf("driver: expected %s, got %s", DriverMySQL, cfg.Driver)
	}
	if cfg.Database != "winery" {
		t.Errorf("database: expected winery, got %s", cfg.Database)
	}
	if cfg.Port != "3306" {
		t.Errorf("port: expected 3306, got %s", cfg.Port)
	}
	if cfg.LogFile != "error_log.txt" {
		t.Errorf("log file: expected error_log.txt, got %s", cfg.LogFile)
	}
	if cfg.Addr() != "db:3306" {
		t.Errorf("addr: expected db:3306, got %s", cfg.Addr())
	}
}

func TestFromMapInvalidHTTPPort(t *testing.T) {
	cfg := FromMap(map[string]string{"HTTP_PORT": "abc"})
	if cfg.HTTPPort != "8080" {
		t.Errorf("expected fallback port 8080, got %s", cfg.HTTPPort)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name          string
		values        map[string]string
		errorExpected bool
	}{
		{
			name:   "Complete mysql secrets",
			values: map[string]string{"USER": "u", "PASSWORD": "p", "HOST": "h"},
		}, {
			name:          "Missing password",
			values:        map[string]string{"USER": "u", "HOST": "h"},
			errorExpected: true,
		}, {
			name:          "Empty secrets",
			values:        map[string]string{},
			errorExpected: true,
		}, {
			name:   "Sqlite needs no credentials",
			values: map[string]string{"DRIVER": "sqlite"},
		}, {
			name:          "Unknown driver",
			values:        map[string]string{"DRIVER": "oracle"},
			errorExpected: true,
		},
	}

	for _, testCase := range testCases {
		err := FromMap(testCase.values).Validate()
		if testCase.errorExpected != (err != nil) {
			t.Errorf("%s: expected error: %v, got error: %v", testCase.name, testCase.errorExpected, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "USER=bacchus\nPASSWORD=secret\nHOST=localhost\nDATABASE=cellar\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.User != "bacchus" || cfg.Password != "secret" || cfg.Host != "localhost" {
		t.Errorf("unexpected credentials: %+v", cfg)
	}
	if cfg.Database != "cellar" {
		t.Errorf("database: expected cellar, got %s", cfg.Database)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Errorf("expected error for a missing secrets file")
	}
}
