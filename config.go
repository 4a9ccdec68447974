package pdi

import (
	"github.com/meupdi/pdi/auth"
	"github.com/meupdi/pdi/core/apiclient"
	"github.com/meupdi/pdi/core/session"
	"github.com/meupdi/pdi/core/sessiontransport"
	"github.com/meupdi/pdi/integration/database/redis"
)

// Config is the full application configuration, loaded from the environment.
type Config struct {
	API       apiclient.Config
	Session   session.Config
	Transport sessiontransport.Config
	Redis     redis.Config
	Auth      auth.Config

	AppName  string `env:"APP_NAME" envDefault:"pdi"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Metrics  bool   `env:"PDI_METRICS" envDefault:"false"`
}

// DefaultConfig returns a Config with defaults.
func DefaultConfig() Config {
	return Config{
		API:       apiclient.DefaultConfig(),
		Session:   session.DefaultConfig(),
		Transport: sessiontransport.DefaultConfig(),
		Redis: redis.Config{
			ConnectionURL: "redis://localhost:6379/0",
			RetryAttempts: 3,
			SessionKey:    redis.DefaultSessionKey,
		},
		Auth:     auth.DefaultConfig(),
		AppName:  "pdi",
		Env:      "development",
		LogLevel: "info",
	}
}
