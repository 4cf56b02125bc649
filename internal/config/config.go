package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Provider ProviderConfig `yaml:"provider"`
	Blip     BlipConfig     `yaml:"blip"`
	Dev      DevConfig      `yaml:"dev"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"PORT"                    env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	RequestTimeout  time.Duration `yaml:"request_timeout"  env:"SERVER_REQUEST_TIMEOUT"  env-default:"15s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// WriteRateLimit caps write requests per client address per minute.
	// Zero disables the limiter.
	WriteRateLimit  int           `yaml:"write_rate_limit" env:"SERVER_WRITE_RATE_LIMIT" env-default:"120"`
	// TrustProxy keys the limiter by X-Forwarded-For. Set it only behind a
	// router that appends the header, such as a PaaS edge.
	TrustProxy      bool          `yaml:"trust_proxy"      env:"SERVER_TRUST_PROXY"      env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
//
// URL is the hosted connection string (DATABASE_URL, as set by the hosting
// platform). LocalDSN is used instead when Dev.Local is enabled.
type DatabaseConfig struct {
	URL             string        `yaml:"url"                env:"DATABASE_URL"`
	LocalDSN        string        `yaml:"local_dsn"          env:"DATABASE_LOCAL_DSN"          env-default:"postgres://localhost:5432/latitune_dev?sslmode=disable"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds password hashing settings.
type AuthConfig struct {
	PasswordHashCost int `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ProviderConfig holds song metadata provider settings.
// An empty YouTubeAPIKey disables remote lookups.
type ProviderConfig struct {
	YouTubeAPIKey  string        `yaml:"youtube_api_key"  env:"PROVIDER_YOUTUBE_API_KEY"`
	YouTubeBaseURL string        `yaml:"youtube_base_url" env:"PROVIDER_YOUTUBE_BASE_URL" env-default:"https://www.googleapis.com/youtube/v3"`
	// Timeout bounds one HTTP attempt. A failed attempt is retried once
	// after RetryDelay.
	Timeout        time.Duration `yaml:"timeout"          env:"PROVIDER_TIMEOUT"          env-default:"5s"`
	RetryDelay     time.Duration `yaml:"retry_delay"      env:"PROVIDER_RETRY_DELAY"      env-default:"500ms"`
	RatePerSecond  float64       `yaml:"rate_per_second"  env:"PROVIDER_RATE_PER_SECOND"  env-default:"5"`
	Burst          int           `yaml:"burst"            env:"PROVIDER_BURST"            env-default:"1"`
}

// LookupBudget is the longest a single song lookup may take: two attempts
// and the pause between them.
func (p ProviderConfig) LookupBudget() time.Duration {
	return 2*p.Timeout + p.RetryDelay
}

// BlipConfig holds blip query settings.
type BlipConfig struct {
	NearbyLimit int `yaml:"nearby_limit" env:"BLIP_NEARBY_LIMIT" env-default:"25"`
}

// DevConfig holds development-only switches.
type DevConfig struct {
	// Local selects the local database and enables the schema reset endpoint.
	Local bool `yaml:"local" env:"LATITUNE_LOCAL" env-default:"false"`
}

// DSN returns the connection string selected by the development flag.
func (c *Config) DSN() string {
	if c.Dev.Local {
		return c.Database.LocalDSN
	}
	return c.Database.URL
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
