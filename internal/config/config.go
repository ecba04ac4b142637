package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	CORS    CORSConfig    `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"              env:"SERVER_HOST"              env-default:"0.0.0.0"`
	Port            int           `yaml:"port"              env:"SERVER_PORT"              env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"      env:"SERVER_READ_TIMEOUT"      env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"     env:"SERVER_WRITE_TIMEOUT"     env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"      env:"SERVER_IDLE_TIMEOUT"      env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"  env:"SERVER_SHUTDOWN_TIMEOUT"  env-default:"10s"`
	WritesPerMinute int           `yaml:"writes_per_minute" env:"SERVER_WRITES_PER_MINUTE" env-default:"0"`
}

// StorageConfig selects and configures the storage backend.
type StorageConfig struct {
	// Driver is "csv" (file-backed sheet tables) or "postgres".
	Driver   string         `yaml:"driver"   env:"STORAGE_DRIVER" env-default:"csv"`
	CSV      CSVConfig      `yaml:"csv"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// CSVConfig holds settings for the file-backed sheet store.
type CSVConfig struct {
	// Dir is the directory holding one CSV file per table.
	Dir string `yaml:"dir" env:"STORAGE_CSV_DIR" env-default:"./data"`
	// InitMissing creates missing table files with header rows at startup.
	// The required contacts table is still a hard failure when this is off.
	InitMissing bool `yaml:"init_missing" env:"STORAGE_CSV_INIT_MISSING" env-default:"true"`
}

// PostgresConfig holds PostgreSQL connection settings. DSN is required only
// when the postgres driver is selected.
type PostgresConfig struct {
	DSN             string        `yaml:"dsn"                env:"STORAGE_PG_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"STORAGE_PG_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"STORAGE_PG_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"STORAGE_PG_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"STORAGE_PG_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// Migrate applies pending goose migrations at startup.
	Migrate bool `yaml:"migrate" env:"STORAGE_PG_MIGRATE" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
