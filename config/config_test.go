package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGOURI", "mongodb://localhost:27017")
	t.Setenv("PORT", "")
	t.Setenv("REDIS_ADD", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("SEED_DATA", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.False(t, cfg.CacheEnabled())
	assert.False(t, cfg.SeedData)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGOURI", "mongodb://db:27017")
	t.Setenv("REDIS_ADD", "cache:6379")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("SEED_DATA", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.SeedData)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("MONGOURI", "mongodb://db:27017")
	t.Setenv("CACHE_TTL", "soon")

	_, err := Load()
	var invalid *InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "CACHE_TTL", invalid.Key)
}

func TestLoadRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGOURI", "")
	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingMongoURI)
}
