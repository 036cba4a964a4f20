package config

import (
	"fmt"

	"github.com/dmitrijs2005/clothescatalog/internal/flagx"
	"github.com/spf13/viper"
)

// parseFile overlays values from the file named by -c/-config (JSON, YAML
// or TOML, chosen by extension) and from environment variables. Keys are
// the snake_case names below; the matching environment variable is the
// upper-case form, e.g. DATABASE_DSN or S3_BUCKET. Durations use Go syntax
// ("120m", "15s").
func parseFile(cfg *Config) error {
	return overlay(cfg, viper.New(), flagx.ConfigFileFlag())
}

func overlay(cfg *Config, v *viper.Viper, path string) error {
	v.SetDefault("http_addr", cfg.HTTPAddr)
	v.SetDefault("grpc_addr", cfg.GRPCAddr)
	v.SetDefault("database_dsn", cfg.DatabaseDSN)
	v.SetDefault("db_user", cfg.DBUser)
	v.SetDefault("db_password", cfg.DBPassword)
	v.SetDefault("db_host", cfg.DBHost)
	v.SetDefault("db_port", cfg.DBPort)
	v.SetDefault("db_name", cfg.DBName)
	v.SetDefault("db_sslmode", cfg.DBSSLMode)
	v.SetDefault("db_max_open_conns", cfg.DBMaxOpenConns)
	v.SetDefault("db_max_idle_conns", cfg.DBMaxIdleConns)
	v.SetDefault("secret_key", cfg.SecretKey)
	v.SetDefault("access_token_ttl", cfg.AccessTokenValidityDuration)
	v.SetDefault("bcrypt_cost", cfg.BcryptCost)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("shutdown_timeout", cfg.ShutdownTimeout)
	v.SetDefault("health_probe_interval", cfg.HealthProbeInterval)
	v.SetDefault("s3_root_user", cfg.S3RootUser)
	v.SetDefault("s3_root_password", cfg.S3RootPassword)
	v.SetDefault("s3_bucket", cfg.S3Bucket)
	v.SetDefault("s3_region", cfg.S3Region)
	v.SetDefault("s3_base_endpoint", cfg.S3BaseEndpoint)
	v.SetDefault("s3_public_base_url", cfg.S3PublicBaseURL)

	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.HTTPAddr = v.GetString("http_addr")
	cfg.GRPCAddr = v.GetString("grpc_addr")
	cfg.DatabaseDSN = v.GetString("database_dsn")
	cfg.DBUser = v.GetString("db_user")
	cfg.DBPassword = v.GetString("db_password")
	cfg.DBHost = v.GetString("db_host")
	cfg.DBPort = v.GetInt("db_port")
	cfg.DBName = v.GetString("db_name")
	cfg.DBSSLMode = v.GetString("db_sslmode")
	cfg.DBMaxOpenConns = v.GetInt("db_max_open_conns")
	cfg.DBMaxIdleConns = v.GetInt("db_max_idle_conns")
	cfg.SecretKey = v.GetString("secret_key")
	cfg.AccessTokenValidityDuration = v.GetDuration("access_token_ttl")
	cfg.BcryptCost = v.GetInt("bcrypt_cost")
	cfg.LogLevel = v.GetString("log_level")
	cfg.ShutdownTimeout = v.GetDuration("shutdown_timeout")
	cfg.HealthProbeInterval = v.GetDuration("health_probe_interval")
	cfg.S3RootUser = v.GetString("s3_root_user")
	cfg.S3RootPassword = v.GetString("s3_root_password")
	cfg.S3Bucket = v.GetString("s3_bucket")
	cfg.S3Region = v.GetString("s3_region")
	cfg.S3BaseEndpoint = v.GetString("s3_base_endpoint")
	cfg.S3PublicBaseURL = v.GetString("s3_public_base_url")

	return nil
}
