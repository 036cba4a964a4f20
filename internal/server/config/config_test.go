package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"server"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, ":50051", c.GRPCAddr)
	assert.Equal(t, "", c.SecretKey)
	assert.Equal(t, 120*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, 5432, c.DBPort)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "clothes", c.S3Bucket)
}

func TestDSN(t *testing.T) {
	c := Config{DBUser: "app", DBPassword: "p@ss", DBHost: "db", DBPort: 5433, DBName: "catalog", DBSSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss@db:5433/catalog?sslmode=disable", c.DSN())

	c.DatabaseDSN = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.DSN())
}

func TestPhotoBaseURL(t *testing.T) {
	c := Config{S3BaseEndpoint: "http://minio:9000", S3Bucket: "clothes"}
	assert.Equal(t, "http://minio:9000/clothes", c.PhotoBaseURL())

	c.S3PublicBaseURL = "https://cdn.example.com"
	assert.Equal(t, "https://cdn.example.com", c.PhotoBaseURL())
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		var c Config
		c.LoadDefaults()
		c.SecretKey = "s3cr3t"
		return c
	}

	c := valid()
	require.NoError(t, c.Validate())

	c = valid()
	c.SecretKey = ""
	require.ErrorIs(t, c.Validate(), ErrMissingSecret)

	c = valid()
	c.AccessTokenValidityDuration = 0
	require.ErrorIs(t, c.Validate(), ErrInvalidTokenTTL)

	c = valid()
	c.GRPCAddr = ""
	require.ErrorIs(t, c.Validate(), ErrMissingAddr)

	c = valid()
	c.DBHost = ""
	require.ErrorIs(t, c.Validate(), ErrMissingDatabase)
	c.DatabaseDSN = "postgres://x@y/z"
	require.NoError(t, c.Validate())
}

func TestOverlay_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	content := "http_addr: \":9090\"\nsecret_key: from-file\naccess_token_ttl: 30m\ndb_port: 6543\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var c Config
	c.LoadDefaults()
	require.NoError(t, overlay(&c, viper.New(), path))

	assert.Equal(t, ":9090", c.HTTPAddr)
	assert.Equal(t, "from-file", c.SecretKey)
	assert.Equal(t, 30*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, 6543, c.DBPort)
	assert.Equal(t, ":50051", c.GRPCAddr, "unset keys keep defaults")
}

func TestOverlay_EnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"secret_key":"from-file","db_name":"filedb"}`), 0o600))
	t.Setenv("SECRET_KEY", "from-env")
	t.Setenv("ACCESS_TOKEN_TTL", "45m")

	var c Config
	c.LoadDefaults()
	require.NoError(t, overlay(&c, viper.New(), path))

	assert.Equal(t, "from-env", c.SecretKey)
	assert.Equal(t, "filedb", c.DBName)
	assert.Equal(t, 45*time.Minute, c.AccessTokenValidityDuration)
}

func TestOverlay_MissingFile(t *testing.T) {
	var c Config
	c.LoadDefaults()
	err := overlay(&c, viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestParseFlags(t *testing.T) {
	withArgs(t, "-c", "ignored.yaml", "-a", "127.0.0.1:9090", "-g", ":6000", "-d", "db",
		"-s", "secret", "-t", "5", "-l", "debug", "-b", "bucket", "-e", "http://endpoint")

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseFlags(&c))

	assert.Equal(t, "127.0.0.1:9090", c.HTTPAddr)
	assert.Equal(t, ":6000", c.GRPCAddr)
	assert.Equal(t, "db", c.DatabaseDSN)
	assert.Equal(t, "secret", c.SecretKey)
	assert.Equal(t, 5*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "bucket", c.S3Bucket)
	assert.Equal(t, "http://endpoint", c.S3BaseEndpoint)
}

func TestParseFlags_BadValue(t *testing.T) {
	withArgs(t, "-t", "soon")

	var c Config
	c.LoadDefaults()
	require.Error(t, parseFlags(&c))
}

func TestParseFlags_TTLUntouchedWithoutFlag(t *testing.T) {
	withArgs(t, "-a", ":9090")

	var c Config
	c.LoadDefaults()
	c.AccessTokenValidityDuration = 90 * time.Second
	require.NoError(t, parseFlags(&c))

	assert.Equal(t, 90*time.Second, c.AccessTokenValidityDuration)
}

func TestLoadConfig_TTLFromEnv(t *testing.T) {
	tests := []struct {
		env  string
		want time.Duration
	}{
		{"90s", 90 * time.Second},
		{"30s", 30 * time.Second},
		{"150m30s", 150*time.Minute + 30*time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			withArgs(t, "-s", "flag-secret")
			t.Setenv("ACCESS_TOKEN_TTL", tt.env)

			c, err := LoadConfig()
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.AccessTokenValidityDuration)
		})
	}
}

func TestLoadConfig_FlagTTLBeatsEnv(t *testing.T) {
	withArgs(t, "-s", "flag-secret", "-t", "7")
	t.Setenv("ACCESS_TOKEN_TTL", "90s")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 7*time.Minute, c.AccessTokenValidityDuration)
}

func TestLoadConfig(t *testing.T) {
	withArgs(t, "-s", "flag-secret")
	t.Setenv("HTTP_ADDR", ":7070")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "flag-secret", c.SecretKey)
	assert.Equal(t, ":7070", c.HTTPAddr)
	assert.Equal(t, 120*time.Minute, c.AccessTokenValidityDuration)
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	withArgs(t)
	t.Setenv("SECRET_KEY", "")

	_, err := LoadConfig()
	require.ErrorIs(t, err, ErrMissingSecret)
}
