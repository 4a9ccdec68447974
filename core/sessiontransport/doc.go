// Package sessiontransport decides how the stored credential rides an
// outgoing HTTP request.
//
// Two transports are provided. Bearer copies the token into a request
// header, by default "Authorization: Bearer <token>". Cookie leaves requests
// untouched and relies on an http.CookieJar that the API client installs on
// its http.Client, so the server-set session cookie is replayed automatically.
//
// # Bearer Transport
//
//	t := sessiontransport.NewBearer()
//	t.Attach(req, "abc") // Authorization: Bearer abc
//
// The header name and prefix are configurable:
//
//	t := sessiontransport.NewBearer(
//		sessiontransport.WithHeaderName("X-Auth-Token"),
//		sessiontransport.WithBearerPrefix(false),
//	)
//
// # Cookie Transport
//
//	t, err := sessiontransport.NewCookie()
//	httpClient := &http.Client{Jar: t.Jar()}
//
// Reset replaces the jar with an empty one; the API client calls it when the
// session is cleared. Cookie transports report UsesToken() == false, which
// tells the client that an empty refresh response still counts as success.
//
// # Configuration
//
//	var cfg sessiontransport.Config
//	config.MustLoad(&cfg)
//	t, err := sessiontransport.NewFromConfig(cfg)
package sessiontransport
