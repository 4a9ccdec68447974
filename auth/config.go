package auth

// Route prefixes the API mounts account endpoints under.
const (
	PrefixAuth  = "/api/auth"
	PrefixUsers = "/api/users"
)

// DefaultLogoutPath is the logout endpoint.
const DefaultLogoutPath = "/api/auth/logout"

// Config provides environment-based configuration for the auth service.
type Config struct {
	Prefix     string `env:"PDI_AUTH_PREFIX" envDefault:"/api/auth"`
	LogoutPath string `env:"PDI_LOGOUT_PATH" envDefault:"/api/auth/logout"`
}

// DefaultConfig returns a Config with defaults.
func DefaultConfig() Config {
	return Config{Prefix: PrefixAuth, LogoutPath: DefaultLogoutPath}
}
