// Package config resolves scan limits from the environment once at startup.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "PPSECCOMMIT_"

// Config carries the scan limits. It is resolved once in main and passed
// by value into the scanner; nothing reads the environment after startup.
type Config struct {
	MaxBytes         int64
	EntropyThreshold float64
	MinEntropyLen    int
}

func Default() Config {
	return Config{
		MaxBytes:         1_000_000,
		EntropyThreshold: 4.0,
		MinEntropyLen:    20,
	}
}

// FromEnv applies PPSECCOMMIT_MAX_BYTES, PPSECCOMMIT_ENTROPY_THRESHOLD and
// PPSECCOMMIT_MIN_LEN on top of the defaults. A present but unparseable
// value is a startup error, not a silent fallback.
func FromEnv() (Config, error) {
	cfg := Default()

	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return cfg, fmt.Errorf("reading environment: %w", err)
	}

	if v := k.String("max_bytes"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%sMAX_BYTES: %w", envPrefix, err)
		}
		cfg.MaxBytes = n
	}
	if v := k.String("entropy_threshold"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("%sENTROPY_THRESHOLD: %w", envPrefix, err)
		}
		cfg.EntropyThreshold = f
	}
	if v := k.String("min_len"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%sMIN_LEN: %w", envPrefix, err)
		}
		cfg.MinEntropyLen = n
	}
	return cfg, nil
}
