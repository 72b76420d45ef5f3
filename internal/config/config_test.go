package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "WeirdBites", cfg.App.Name)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "weirdbites_cart", cfg.Cart.KeyPrefix)
	assert.Equal(t, 48*time.Hour, cfg.Cart.SlotTTL)
	assert.Equal(t, "session_id", cfg.Cart.SessionCookie)
	assert.True(t, cfg.Features.ShoppingCart)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("CART_SLOT_TTL", "72h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://weirdbites.shop, https://admin.weirdbites.shop")
	t.Setenv("FEATURE_CART_PERSISTENCE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "localhost:6380", cfg.GetRedisAddr())
	assert.Contains(t, cfg.GetDatabaseDSN(), "host=db.internal")
	assert.Equal(t, 72*time.Hour, cfg.Cart.SlotTTL)
	assert.Equal(t, []string{"https://weirdbites.shop", "https://admin.weirdbites.shop"}, cfg.Security.CORSAllowedOrigins)
	assert.False(t, cfg.Features.CartPersistence)
}

func TestLoad_MalformedNumbersFallBack(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "lots")
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080"},
			Database: DatabaseConfig{Host: "localhost", Name: "weirdbites", User: "weirdbites"},
			Redis:    RedisConfig{Host: "localhost"},
			Cart:     CartConfig{KeyPrefix: "weirdbites_cart", SlotTTL: 48 * time.Hour},
		}
	}

	assert.NoError(t, valid().Validate())

	noTTL := valid()
	noTTL.Cart.SlotTTL = 0
	assert.NoError(t, noTTL.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing db host", func(c *Config) { c.Database.Host = "" }, "DB_HOST is required"},
		{"missing redis host", func(c *Config) { c.Redis.Host = "" }, "REDIS_HOST is required"},
		{"missing port", func(c *Config) { c.Server.Port = "" }, "APP_PORT is required"},
		{"missing key prefix", func(c *Config) { c.Cart.KeyPrefix = "" }, "CART_KEY_PREFIX is required"},
		{"slot ttl too short", func(c *Config) { c.Cart.SlotTTL = time.Hour }, "CART_SLOT_TTL must be longer than 24h or 0 to disable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.EqualError(t, cfg.Validate(), tt.want)
		})
	}
}
