// Package config loads service configuration from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/PaulBabatuyi/portfolio/internal/logging"
)

type Config struct {
	HTTPPort string `mapstructure:"HTTP_PORT"`
	GRPCPort string `mapstructure:"GRPC_PORT"`
	TLSCert  string `mapstructure:"TLS_CERT"`
	TLSKey   string `mapstructure:"TLS_KEY"`

	MongoURI      string `mapstructure:"MONGODB_URI"`
	MongoDatabase string `mapstructure:"MONGODB_DATABASE"`

	JWT   JWTConfig   `mapstructure:",squash"`
	Admin AdminConfig `mapstructure:",squash"`

	TurnstileSecret string `mapstructure:"TURNSTILE_SECRET"`

	SMTP    SMTPConfig    `mapstructure:",squash"`
	Storage StorageConfig `mapstructure:",squash"`
	Logging logging.Config `mapstructure:",squash"`

	LoginRateLimitRPM      int           `mapstructure:"LOGIN_RATE_LIMIT_RPM"`
	RateLimitSweepInterval time.Duration `mapstructure:"RATE_LIMIT_SWEEP_INTERVAL"`
	ContentCacheTTL        time.Duration `mapstructure:"CONTENT_CACHE_TTL"`
}

type JWTConfig struct {
	Secret       string        `mapstructure:"JWT_SECRET"`
	Keys         string        `mapstructure:"JWT_KEYS"` // kid:secret,kid2:secret2
	ActiveKid    string        `mapstructure:"JWT_ACTIVE_KID"`
	TTL          time.Duration `mapstructure:"JWT_TTL"`
	CookieSecure bool          `mapstructure:"COOKIE_SECURE"`
}

// KeyMap parses Keys into kid -> secret.
func (c JWTConfig) KeyMap() (map[string]string, error) {
	keys := map[string]string{}
	for _, pair := range strings.Split(c.Keys, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		kid, secret, ok := strings.Cut(pair, ":")
		if !ok || kid == "" || secret == "" {
			return nil, fmt.Errorf("invalid JWT_KEYS entry: %s", pair)
		}
		keys[kid] = secret
	}
	return keys, nil
}

type AdminConfig struct {
	Email    string `mapstructure:"ADMIN_EMAIL"`
	Password string `mapstructure:"ADMIN_PASSWORD"`
}

type SMTPConfig struct {
	Host        string `mapstructure:"SMTP_HOST"`
	Port        int    `mapstructure:"SMTP_PORT"`
	Username    string `mapstructure:"SMTP_USERNAME"`
	Password    string `mapstructure:"SMTP_PASSWORD"`
	From        string `mapstructure:"SMTP_FROM"`
	NotifyEmail string `mapstructure:"NOTIFY_EMAIL"`
}

type StorageConfig struct {
	Endpoint  string `mapstructure:"S3_ENDPOINT"`
	Region    string `mapstructure:"S3_REGION"`
	Bucket    string `mapstructure:"S3_BUCKET"`
	AccessKey string `mapstructure:"S3_ACCESS_KEY"`
	SecretKey string `mapstructure:"S3_SECRET_KEY"`
	UseSSL    bool   `mapstructure:"S3_USE_SSL"`
	PublicURL string `mapstructure:"S3_PUBLIC_URL"`
}

var defaults = map[string]any{
	"HTTP_PORT":                 "8080",
	"GRPC_PORT":                 "50051",
	"MONGODB_DATABASE":          "portfolio",
	"JWT_TTL":                   "24h",
	"COOKIE_SECURE":             true,
	"SMTP_PORT":                 587,
	"S3_REGION":                 "us-east-1",
	"S3_USE_SSL":                true,
	"LOG_LEVEL":                 "info",
	"LOG_PLAINTEXT":             false,
	"LOGIN_RATE_LIMIT_RPM":      10,
	"RATE_LIMIT_SWEEP_INTERVAL": "10m",
	"CONTENT_CACHE_TTL":         "5m",
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	for _, key := range keys() {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every missing or malformed required setting.
func (c *Config) Validate() error {
	var errs []error
	if c.MongoURI == "" {
		errs = append(errs, errors.New("MONGODB_URI must be set"))
	}
	if c.JWT.Secret == "" && c.JWT.Keys == "" {
		errs = append(errs, errors.New("either JWT_SECRET or JWT_KEYS must be set"))
	}
	if c.JWT.Keys != "" {
		keys, err := c.JWT.KeyMap()
		if err != nil {
			errs = append(errs, err)
		} else if _, ok := keys[c.JWT.ActiveKid]; !ok {
			errs = append(errs, errors.New("JWT_ACTIVE_KID must name one of JWT_KEYS"))
		}
	}
	if c.JWT.TTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL must be positive"))
	}
	if (c.Admin.Email == "") != (c.Admin.Password == "") {
		errs = append(errs, errors.New("ADMIN_EMAIL and ADMIN_PASSWORD must be set together"))
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		errs = append(errs, errors.New("TLS_CERT and TLS_KEY must be set together"))
	}
	if c.LoginRateLimitRPM <= 0 {
		errs = append(errs, errors.New("LOGIN_RATE_LIMIT_RPM must be positive"))
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func keys() []string {
	return []string{
		"HTTP_PORT", "GRPC_PORT", "TLS_CERT", "TLS_KEY",
		"MONGODB_URI", "MONGODB_DATABASE",
		"JWT_SECRET", "JWT_KEYS", "JWT_ACTIVE_KID", "JWT_TTL", "COOKIE_SECURE",
		"ADMIN_EMAIL", "ADMIN_PASSWORD",
		"TURNSTILE_SECRET",
		"SMTP_HOST", "SMTP_PORT", "SMTP_USERNAME", "SMTP_PASSWORD", "SMTP_FROM", "NOTIFY_EMAIL",
		"S3_ENDPOINT", "S3_REGION", "S3_BUCKET", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_USE_SSL", "S3_PUBLIC_URL",
		"LOG_LEVEL", "LOG_PLAINTEXT",
		"LOGIN_RATE_LIMIT_RPM", "RATE_LIMIT_SWEEP_INTERVAL", "CONTENT_CACHE_TTL",
	}
}
