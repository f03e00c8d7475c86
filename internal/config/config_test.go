package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		App:      AppConfig{Port: 8080, Env: "test", Timezone: "UTC"},
		Storage:  StorageConfig{Driver: StorageDriverPostgres},
		Database: DatabaseConfig{Password: "secret"},
		Mongo:    MongoConfig{URI: "mongodb://localhost:27017"},
		JWT:      JWTConfig{Secret: "jwt-secret", AccessExpiration: "12h"},
		Absence:  AbsenceSweepConfig{Hour: 1, Interval: time.Hour},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid postgres", func(c *Config) {}, ""},
		{"valid mongo", func(c *Config) { c.Storage.Driver = StorageDriverMongo; c.Database.Password = "" }, ""},
		{"valid memory", func(c *Config) { c.Storage.Driver = StorageDriverMemory; c.Database.Password = "" }, ""},
		{"unknown driver", func(c *Config) { c.Storage.Driver = "sqlite" }, "unsupported STORAGE_DRIVER"},
		{"postgres without password", func(c *Config) { c.Database.Password = "" }, "DB_PASSWORD"},
		{"missing jwt secret", func(c *Config) { c.JWT.Secret = "" }, "JWT_SECRET_KEY"},
		{"bad expiration", func(c *Config) { c.JWT.AccessExpiration = "soon" }, "JWT_ACCESS_EXPIRATION_TIME"},
		{"bad timezone", func(c *Config) { c.App.Timezone = "Mars/Olympus" }, "APP_TIMEZONE"},
		{"bad sweep hour", func(c *Config) { c.Absence.Hour = 24 }, "ABSENCE_SWEEP_HOUR"},
		{"bad sweep interval", func(c *Config) { c.Absence.Interval = 0 }, "ABSENCE_SWEEP_INTERVAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
	t.Setenv("APP_TIMEZONE", "UTC")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("ABSENCE_SWEEP_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Absence.Enabled)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("APP_PORT", "http")
	_, err := Load()
	assert.ErrorContains(t, err, "APP_PORT")
}

func TestDatabaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.Database = DatabaseConfig{Host: "db", Port: 5432, User: "app", Password: "pw", Name: "attendance", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:pw@db:5432/attendance?sslmode=disable", cfg.DatabaseURL())
}
