package apiclient

import (
	"time"

	"github.com/meupdi/pdi/core/session"
)

// DefaultRefreshPath is the refresh endpoint of the PDI API.
const DefaultRefreshPath = "/api/auth/refresh"

// Config provides environment-based configuration for the API client.
type Config struct {
	BaseURL             string        `env:"PDI_API_URL" envDefault:"http://localhost:8080"`
	Timeout             time.Duration `env:"PDI_API_TIMEOUT" envDefault:"0s"`
	RefreshPath         string        `env:"PDI_REFRESH_PATH" envDefault:"/api/auth/refresh"`
	SingleFlightRefresh bool          `env:"PDI_SINGLE_FLIGHT_REFRESH" envDefault:"false"`
}

// DefaultConfig returns a Config with defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:     "http://localhost:8080",
		RefreshPath: DefaultRefreshPath,
	}
}

// NewFromConfig creates a Client from cfg. Options are applied after the
// config-derived ones and win on conflict.
func NewFromConfig(cfg Config, sessions *session.Manager, opts ...Option) (*Client, error) {
	base := []Option{
		WithRefreshPath(cfg.RefreshPath),
		WithTimeout(cfg.Timeout),
		WithSingleFlightRefresh(cfg.SingleFlightRefresh),
	}
	return New(cfg.BaseURL, sessions, append(base, opts...)...)
}
