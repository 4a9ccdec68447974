package sessiontransport

// Transport kinds accepted by Config.Kind.
const (
	KindBearer = "bearer"
	KindCookie = "cookie"
)

// Config provides environment-based configuration for the session transport.
type Config struct {
	Kind         string `env:"PDI_SESSION_TRANSPORT" envDefault:"bearer"`
	HeaderName   string `env:"PDI_AUTH_HEADER" envDefault:"Authorization"`
	BearerPrefix bool   `env:"PDI_AUTH_BEARER_PREFIX" envDefault:"true"`
}

// DefaultConfig returns a Config with defaults.
func DefaultConfig() Config {
	return Config{
		Kind:         KindBearer,
		HeaderName:   defaultHeaderName,
		BearerPrefix: true,
	}
}

// NewFromConfig creates the transport named by cfg.Kind.
func NewFromConfig(cfg Config) (Transport, error) {
	switch cfg.Kind {
	case KindBearer, "":
		return NewBearer(WithHeaderName(cfg.HeaderName), WithBearerPrefix(cfg.BearerPrefix)), nil
	case KindCookie:
		return NewCookie()
	default:
		return nil, ErrUnknownTransport
	}
}
