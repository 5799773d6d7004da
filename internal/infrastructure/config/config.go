// Package config loads service settings from .env, config.toml and the
// environment through viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultJWTSecret is only acceptable outside production
const DefaultJWTSecret = "vyapar-dev-secret-change-me"

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Billing   BillingConfig   `mapstructure:"billing"`
	Payment   PaymentConfig   `mapstructure:"payment"`
	Log       LogConfig       `mapstructure:"log"`
	HTTP      HTTPConfig      `mapstructure:"http"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Swagger   SwaggerConfig   `mapstructure:"swagger"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
	Output string `mapstructure:"output"` // stdout, stderr or a file path
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
	Port string `mapstructure:"port"`
	// Timezone is an IANA name or "Local". Report days start at its midnight.
	Timezone string `mapstructure:"timezone"`
}

// Location resolves Timezone.
func (a AppConfig) Location() (*time.Location, error) {
	if a.Timezone == "" || strings.EqualFold(a.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(a.Timezone)
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"` // postgres or sqlite
	URL             string `mapstructure:"url"`    // overrides the discrete postgres fields
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"dbname"`
	SSLMode         string `mapstructure:"sslmode"`
	SQLitePath      string `mapstructure:"sqlite_path"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`  // minutes
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time"` // minutes
	AutoMigrate     bool   `mapstructure:"auto_migrate"`
}

// DSN builds a postgres URL, escaping the credentials.
func (d *DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret                string        `mapstructure:"secret"`
	AccessTokenExpiration time.Duration `mapstructure:"access_token_expiration"`
	ResetTokenExpiration  time.Duration `mapstructure:"reset_token_expiration"`
	Issuer                string        `mapstructure:"issuer"`
}

// BillingConfig controls checkout.
type BillingConfig struct {
	// Atomic wraps the sale insert, stock decrements and credit upsert in one transaction.
	Atomic bool `mapstructure:"atomic"`
	// Counter picks the bill number allocator: database or redis.
	Counter string `mapstructure:"counter"`
}

type PaymentConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	KeyID     string        `mapstructure:"key_id"`
	KeySecret string        `mapstructure:"key_secret"`
	BaseURL   string        `mapstructure:"base_url"`
	Currency  string        `mapstructure:"currency"`
	MinAmount float64       `mapstructure:"min_amount"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type HTTPConfig struct {
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	MaxHeaderBytes    int           `mapstructure:"max_header_bytes"`
	MaxBodySize       int64         `mapstructure:"max_body_size"`
	RateLimitEnabled  bool          `mapstructure:"rate_limit_enabled"`
	RateLimitRequests int           `mapstructure:"rate_limit_requests"`
	RateLimitWindow   time.Duration `mapstructure:"rate_limit_window"`
	CORSAllowOrigins  []string      `mapstructure:"cors_allow_origins"`
	CORSAllowMethods  []string      `mapstructure:"cors_allow_methods"`
	CORSAllowHeaders  []string      `mapstructure:"cors_allow_headers"`
	TrustedProxies    []string      `mapstructure:"trusted_proxies"`
}

// SwaggerConfig guards the /swagger documentation endpoint
type SwaggerConfig struct {
	Enabled     bool     `mapstructure:"enabled"`
	RequireAuth bool     `mapstructure:"require_auth"`
	AllowedIPs  []string `mapstructure:"allowed_ips"`
}

type TelemetryConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	CollectorEndpoint string        `mapstructure:"collector_endpoint"`
	SamplingRatio     float64       `mapstructure:"sampling_ratio"`
	ServiceName       string        `mapstructure:"service_name"`
	Insecure          bool          `mapstructure:"insecure"`
	MetricsInterval   time.Duration `mapstructure:"metrics_interval"`
	DBTraceEnabled    bool          `mapstructure:"db_trace_enabled"`
	DBLogFullSQL      bool          `mapstructure:"db_log_full_sql"`
	DBSlowQueryThresh time.Duration `mapstructure:"db_slow_query_threshold"`
}

// defaults lists every key. A key must be known to viper for an
// environment override to reach Unmarshal.
var defaults = map[string]any{
	"app.name":     "vyapar-saathi",
	"app.env":      "development",
	"app.port":     "5000",
	"app.timezone": "Local",

	"database.driver":             "postgres",
	"database.url":                "",
	"database.host":               "localhost",
	"database.port":               5432,
	"database.user":               "postgres",
	"database.password":           "",
	"database.dbname":             "vyapar",
	"database.sslmode":            "disable",
	"database.sqlite_path":        "vyapar.db",
	"database.max_open_conns":     25,
	"database.max_idle_conns":     5,
	"database.conn_max_lifetime":  60,
	"database.conn_max_idle_time": 30,
	"database.auto_migrate":       false,

	"redis.enabled":  false,
	"redis.host":     "localhost",
	"redis.port":     6379,
	"redis.password": "",
	"redis.db":       0,

	"jwt.secret":                  DefaultJWTSecret,
	"jwt.access_token_expiration": 7 * 24 * time.Hour,
	"jwt.reset_token_expiration":  15 * time.Minute,
	"jwt.issuer":                  "vyapar-saathi",

	"billing.atomic":  true,
	"billing.counter": "database",

	"payment.enabled":    true,
	"payment.key_id":     "",
	"payment.key_secret": "",
	"payment.base_url":   "https://api.razorpay.com",
	"payment.currency":   "INR",
	"payment.min_amount": 1.0,
	"payment.timeout":    30 * time.Second,

	"log.level":  "info",
	"log.format": "console",
	"log.output": "stdout",

	"http.read_timeout":        15 * time.Second,
	"http.write_timeout":       15 * time.Second,
	"http.idle_timeout":        time.Minute,
	"http.max_header_bytes":    1 << 20,
	"http.max_body_size":       int64(1 << 20),
	"http.rate_limit_enabled":  false,
	"http.rate_limit_requests": 100,
	"http.rate_limit_window":   time.Minute,
	"http.cors_allow_origins":  []string{},
	"http.cors_allow_methods":  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	"http.cors_allow_headers":  []string{"Origin", "Content-Type", "Authorization", "X-Request-ID", "x-auth-token"},
	"http.trusted_proxies":     []string{},

	"swagger.enabled":      true,
	"swagger.require_auth": false,
	"swagger.allowed_ips":  []string{},

	"telemetry.enabled":                 false,
	"telemetry.collector_endpoint":      "localhost:4317",
	"telemetry.sampling_ratio":          1.0,
	"telemetry.service_name":            "vyapar-saathi",
	"telemetry.insecure":                false,
	"telemetry.metrics_interval":        time.Minute,
	"telemetry.db_trace_enabled":        false,
	"telemetry.db_log_full_sql":         false,
	"telemetry.db_slow_query_threshold": 200 * time.Millisecond,
}

// legacyEnv maps keys to the bare variable names older deployments set.
var legacyEnv = map[string]string{
	"app.port":           "PORT",
	"database.url":       "DATABASE_URL",
	"jwt.secret":         "JWT_SECRET",
	"payment.key_id":     "RAZORPAY_KEY_ID",
	"payment.key_secret": "RAZORPAY_KEY_SECRET",
}

// Load resolves configuration, highest precedence first: VYAPAR_* variables,
// the legacy names in legacyEnv, config.toml, then defaults. A .env file in
// the working directory is read into the environment beforehand.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	for _, dir := range []string{".", "./config", "/app"} {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("VYAPAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		prefixed := "VYAPAR_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Database.Driver != "postgres" && c.Database.Driver != "sqlite" {
		fail("database.driver must be postgres or sqlite, got %q", c.Database.Driver)
	}
	switch {
	case c.Database.MaxOpenConns <= 0:
		fail("database.max_open_conns must be positive")
	case c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns:
		fail("database.max_idle_conns must be between 0 and max_open_conns (%d), got %d",
			c.Database.MaxOpenConns, c.Database.MaxIdleConns)
	}

	switch c.Billing.Counter {
	case "database":
	case "redis":
		if !c.Redis.Enabled {
			fail("billing.counter=redis needs redis.enabled=true")
		}
	default:
		fail("billing.counter must be database or redis, got %q", c.Billing.Counter)
	}

	if _, err := c.App.Location(); err != nil {
		fail("app.timezone: %w", err)
	}
	if c.Payment.MinAmount < 0 {
		fail("payment.min_amount cannot be negative")
	}
	if r := c.Telemetry.SamplingRatio; r < 0 || r > 1 {
		fail("telemetry.sampling_ratio must be within [0, 1], got %g", r)
	}

	if c.App.IsProduction() {
		c.validateProduction(fail)
	}
	return errors.Join(errs...)
}

func (c *Config) validateProduction(fail func(string, ...any)) {
	if c.JWT.Secret == DefaultJWTSecret || len(c.JWT.Secret) < 32 {
		fail("jwt.secret must be set to at least 32 characters in production")
	}
	if c.Database.Driver != "postgres" {
		fail("production runs on postgres only")
	}
	if c.Database.URL == "" && c.Database.Password == "" {
		fail("database.password or database.url is required in production")
	}
	if c.Payment.Enabled && (c.Payment.KeyID == "" || c.Payment.KeySecret == "") {
		fail("payment.key_id and payment.key_secret are required while payments are enabled")
	}
	for _, origin := range c.HTTP.CORSAllowOrigins {
		if origin == "*" {
			fail("http.cors_allow_origins cannot contain * in production")
		}
	}
	if c.Telemetry.DBLogFullSQL {
		fail("telemetry.db_log_full_sql would log customer data in production")
	}
	if c.Swagger.Enabled && !c.Swagger.RequireAuth && len(c.Swagger.AllowedIPs) == 0 {
		fail("swagger must be disabled, require auth or set allowed_ips in production")
	}
}
