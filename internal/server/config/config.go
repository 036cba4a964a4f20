// Package config handles configuration for the catalog server: defaults,
// a file and environment overlay, and command-line flags.
package config

import (
	"errors"
	"net"
	"net/url"
	"strconv"
	"time"
)

// Config holds runtime settings for the catalog server.
//
// Fields:
//   - HTTPAddr / GRPCAddr: bind addresses for the REST API and the health endpoint.
//   - DatabaseDSN: full PostgreSQL DSN; when empty the DSN is composed from the DB* parts.
//   - SecretKey: HMAC secret for signing access tokens (HS256). Required.
//   - AccessTokenValidityDuration: lifetime of issued tokens.
//   - S3*: object storage used for clothes photos.
type Config struct {
	HTTPAddr string
	GRPCAddr string

	DatabaseDSN    string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         int
	DBName         string
	DBSSLMode      string
	DBMaxOpenConns int
	DBMaxIdleConns int

	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	BcryptCost                  int

	LogLevel            string
	ShutdownTimeout     time.Duration
	HealthProbeInterval time.Duration

	S3RootUser      string
	S3RootPassword  string
	S3Bucket        string
	S3Region        string
	S3BaseEndpoint  string
	S3PublicBaseURL string
}

// LoadDefaults populates Config with development defaults. There is no
// default secret: one must be supplied.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8080"
	c.GRPCAddr = ":50051"
	c.DBUser = "postgres"
	c.DBPassword = "postgres"
	c.DBHost = "localhost"
	c.DBPort = 5432
	c.DBName = "clothes"
	c.DBSSLMode = "disable"
	c.DBMaxOpenConns = 10
	c.DBMaxIdleConns = 5
	c.AccessTokenValidityDuration = 120 * time.Minute
	c.BcryptCost = 10
	c.LogLevel = "info"
	c.ShutdownTimeout = 10 * time.Second
	c.HealthProbeInterval = 15 * time.Second
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "clothes"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000"
}

// DSN returns DatabaseDSN when set, otherwise a postgres:// URL built from
// the individual connection settings.
func (c *Config) DSN() string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:   "/" + c.DBName,
	}
	if c.DBSSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.DBSSLMode}}.Encode()
	}
	return u.String()
}

// PhotoBaseURL is the public prefix under which uploaded photos are served.
func (c *Config) PhotoBaseURL() string {
	if c.S3PublicBaseURL != "" {
		return c.S3PublicBaseURL
	}
	return c.S3BaseEndpoint + "/" + c.S3Bucket
}

var (
	ErrMissingSecret   = errors.New("secret key is required")
	ErrInvalidTokenTTL = errors.New("access token validity must be positive")
	ErrMissingAddr     = errors.New("http and grpc addresses are required")
	ErrMissingDatabase = errors.New("database settings are required")
)

func (c *Config) Validate() error {
	var errs []error
	if c.SecretKey == "" {
		errs = append(errs, ErrMissingSecret)
	}
	if c.AccessTokenValidityDuration <= 0 {
		errs = append(errs, ErrInvalidTokenTTL)
	}
	if c.HTTPAddr == "" || c.GRPCAddr == "" {
		errs = append(errs, ErrMissingAddr)
	}
	if c.DatabaseDSN == "" && (c.DBHost == "" || c.DBName == "") {
		errs = append(errs, ErrMissingDatabase)
	}
	return errors.Join(errs...)
}

// LoadConfig builds a Config by applying defaults, then the optional config
// file and environment variables, and finally command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
