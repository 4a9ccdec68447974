package sessiontransport

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"

	"golang.org/x/net/publicsuffix"
)

// Cookie keeps the session in a cookie jar owned by the transport.
type Cookie struct {
	mu  sync.RWMutex
	jar *cookiejar.Jar
}

// NewCookie creates a cookie transport with an empty jar.
func NewCookie() (*Cookie, error) {
	jar, err := newJar()
	if err != nil {
		return nil, err
	}
	return &Cookie{jar: jar}, nil
}

// Jar returns a cookie jar that always delegates to the transport's current jar,
// so it stays valid across Reset.
func (c *Cookie) Jar() http.CookieJar {
	return jarView{c}
}

// Attach is a no-op; the http.Client replays cookies from Jar.
func (c *Cookie) Attach(*http.Request, string) {}

// Reset drops every stored cookie.
func (c *Cookie) Reset() error {
	jar, err := newJar()
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.jar = jar
	c.mu.Unlock()
	return nil
}

func (c *Cookie) UsesToken() bool { return false }

func (c *Cookie) current() *cookiejar.Jar {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jar
}

func newJar() (*cookiejar.Jar, error) {
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}

type jarView struct {
	c *Cookie
}

func (v jarView) SetCookies(u *url.URL, cookies []*http.Cookie) {
	v.c.current().SetCookies(u, cookies)
}

func (v jarView) Cookies(u *url.URL) []*http.Cookie {
	return v.c.current().Cookies(u)
}
