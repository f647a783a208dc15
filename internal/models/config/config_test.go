package config

import "testing"

func TestLoadDefaultsToSQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PATH", "")

	if err := Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if AppConfig.Database.Driver != DriverSQLite {
		t.Fatalf("driver = %q, want %q", AppConfig.Database.Driver, DriverSQLite)
	}
	if AppConfig.Database.Path != "students.db" {
		t.Fatalf("path = %q, want students.db", AppConfig.Database.Path)
	}
}

func TestLoadPostgresRequiresUser(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_USER", "")

	if err := Load(); err == nil {
		t.Fatal("expected validation error without DB_USER")
	}
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	if err := Load(); err == nil {
		t.Fatal("expected validation error for unknown driver")
	}
}
