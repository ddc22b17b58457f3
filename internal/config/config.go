package config

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Import   ImportConfig   `yaml:"import"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"30s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ImportConfig holds vocabulary import settings.
type ImportConfig struct {
	MaxUploadBytes   int64  `yaml:"max_upload_bytes"   env:"IMPORT_MAX_UPLOAD_BYTES"   env-default:"33554432"`
	DefaultDelimiter string `yaml:"default_delimiter"  env:"IMPORT_DEFAULT_DELIMITER"  env-default:","`
	UploadsPerMinute int    `yaml:"uploads_per_minute" env:"IMPORT_UPLOADS_PER_MINUTE" env-default:"30"`
	BootstrapDir     string `yaml:"bootstrap_dir"      env:"IMPORT_BOOTSTRAP_DIR"`
	BootstrapOnStart bool   `yaml:"bootstrap_on_start" env:"IMPORT_BOOTSTRAP_ON_START" env-default:"false"`
	CorporaRaw       string `yaml:"bootstrap_corpora"  env:"IMPORT_BOOTSTRAP_CORPORA"  env-default:"english.txt=内置-英语,japanese.txt=内置-日语,英语10万词.csv=内置-英语10万词"`

	// Corpora is parsed from CorporaRaw during validation.
	Corpora []Corpus `yaml:"-" env:"-"`
}

// Corpus is one bundled vocabulary file and the library name it is imported under.
type Corpus struct {
	File string
	Name string
}

// Delimiter returns DefaultDelimiter as a rune, or 0 when unset.
func (c ImportConfig) Delimiter() rune {
	r, _ := utf8.DecodeRuneInString(c.DefaultDelimiter)
	if r == utf8.RuneError {
		return 0
	}
	return r
}
