package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meupdi/pdi/core/config"
)

type clientConfig struct {
	BaseURL string        `env:"TEST_PDI_API_URL" envDefault:"http://localhost:3000"`
	Timeout time.Duration `env:"TEST_PDI_API_TIMEOUT" envDefault:"5s"`
}

type requiredConfig struct {
	Secret string `env:"TEST_PDI_REQUIRED_SECRET,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)

		var cfg clientConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "http://localhost:3000", cfg.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("reads environment", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)
		t.Setenv("TEST_PDI_API_URL", "https://api.example.com")

		var cfg clientConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)
		t.Setenv("TEST_PDI_API_URL", "https://first.example.com")

		var first clientConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("TEST_PDI_API_URL", "https://second.example.com")

		var second clientConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second)
	})

	t.Run("reports missing required values", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEST_PDI_REQUIRED_SECRET")
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		var cfg *clientConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilConfig)
	})
}

func TestMustLoad(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
