package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, int64(1_000_000), cfg.MaxBytes)
		assert.Equal(t, 4.0, cfg.EntropyThreshold)
		assert.Equal(t, 20, cfg.MinEntropyLen)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PPSECCOMMIT_MAX_BYTES", "512")
		t.Setenv("PPSECCOMMIT_ENTROPY_THRESHOLD", "3.5")
		t.Setenv("PPSECCOMMIT_MIN_LEN", "12")
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, int64(512), cfg.MaxBytes)
		assert.Equal(t, 3.5, cfg.EntropyThreshold)
		assert.Equal(t, 12, cfg.MinEntropyLen)
	})

	t.Run("partial overrides keep remaining defaults", func(t *testing.T) {
		t.Setenv("PPSECCOMMIT_ENTROPY_THRESHOLD", "4.5")
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, 4.5, cfg.EntropyThreshold)
		assert.Equal(t, int64(1_000_000), cfg.MaxBytes)
		assert.Equal(t, 20, cfg.MinEntropyLen)
	})

	t.Run("unparseable value is a startup error", func(t *testing.T) {
		t.Setenv("PPSECCOMMIT_MAX_BYTES", "a lot")
		_, err := FromEnv()
		assert.Error(t, err)
	})

	t.Run("unrelated variables are ignored", func(t *testing.T) {
		t.Setenv("MAX_BYTES", "7")
		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, int64(1_000_000), cfg.MaxBytes)
	})
}
