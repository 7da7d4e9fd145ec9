package cmd

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/feed"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, services.DefaultScoringWeights(), cfg.Scoring.Weights())
	assert.Equal(t, feed.DefaultConfig(), cfg.Realtime.Feed())
	assert.Equal(t, 24*time.Hour, cfg.Realtime.Retention)
	assert.Equal(t, "0 */10 * * * *", cfg.Jobs.RetentionSpec)
	assert.Empty(t, cfg.Jobs.AutoDispatchSpec)
	assert.Empty(t, cfg.Redis.Addr)
	assert.True(t, cfg.DB.Listen)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SCORING_LOAD_PENALTY", "40")
	t.Setenv("STREAM_LIFETIME", "20s")
	t.Setenv("JOB_AUTO_DISPATCH_SPEC", "*/5 * * * * *")

	cfg, err := LoadConfig(context.Background())
	require.NoError(t, err)

	assert.InDelta(t, 40.0, cfg.Scoring.LoadPenalty, 1e-9)
	assert.Equal(t, 20*time.Second, cfg.Realtime.Feed().StreamLifetime)
	assert.Equal(t, "*/5 * * * * *", cfg.Jobs.AutoDispatchSpec)
}

func TestLoadConfig_RejectsInvalidSettings(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SCORING_MAX_CONCURRENT_ORDERS", "0")
	t.Setenv("STREAM_POLL_INTERVAL", "0s")

	_, err := LoadConfig(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestDBConfig_DSN(t *testing.T) {
	c := DBConfig{Host: "db", Port: "5433", User: "app", Password: "p@ss", Name: "dispatch", SslMode: "require"}

	assert.Equal(t, "postgres://app:p%40ss@db:5433/dispatch?sslmode=require", c.DSN())
}
