package config

import (
	"fmt"
)

// Storage driver names accepted by StorageConfig.Driver.
const (
	DriverCSV      = "csv"
	DriverPostgres = "postgres"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.WritesPerMinute < 0 {
		return fmt.Errorf("server.writes_per_minute must be >= 0 (got %d)", c.Server.WritesPerMinute)
	}

	switch c.Storage.Driver {
	case DriverCSV:
		if c.Storage.CSV.Dir == "" {
			return fmt.Errorf("storage.csv.dir must not be empty")
		}
	case DriverPostgres:
		if c.Storage.Postgres.DSN == "" {
			return fmt.Errorf("storage.postgres.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("storage.driver must be %q or %q (got %q)", DriverCSV, DriverPostgres, c.Storage.Driver)
	}

	return nil
}
