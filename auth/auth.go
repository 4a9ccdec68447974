package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/meupdi/pdi/core/apiclient"
	"github.com/meupdi/pdi/core/logger"
	"github.com/meupdi/pdi/core/sanitizer"
	"github.com/meupdi/pdi/core/session"
	"github.com/meupdi/pdi/core/validator"
)

// Service runs account flows through an API client.
type Service struct {
	client     *apiclient.Client
	prefix     string
	logoutPath string
	logger     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithPrefix sets the route prefix for register and login, e.g. PrefixUsers.
func WithPrefix(prefix string) Option {
	return func(s *Service) {
		if prefix != "" {
			s.prefix = strings.TrimSuffix(prefix, "/")
		}
	}
}

// WithLogoutPath overrides the logout endpoint.
func WithLogoutPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.logoutPath = path
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Service. It panics on a nil client; use NewFromConfig for an error instead.
func New(client *apiclient.Client, opts ...Option) *Service {
	if client == nil {
		panic(ErrNilClient)
	}
	s := &Service{
		client:     client,
		prefix:     PrefixAuth,
		logoutPath: DefaultLogoutPath,
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewFromConfig creates a Service from cfg.
func NewFromConfig(cfg Config, client *apiclient.Client, opts ...Option) (*Service, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	base := []Option{WithPrefix(cfg.Prefix), WithLogoutPath(cfg.LogoutPath)}
	return New(client, append(base, opts...)...), nil
}

// Register creates an account. When the API answers with a token the
// session starts immediately.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Result, error) {
	if err := prepare(&in); err != nil {
		return Result{}, err
	}

	res, err := s.authenticate(ctx, s.prefix+"/register", in, false)
	if err != nil {
		return Result{}, err
	}
	s.logger.InfoContext(ctx, "account registered", logger.Component("auth"), logger.Result(resultKind(res)))
	return res, nil
}

// Login authenticates with credentials and stores the returned token.
func (s *Service) Login(ctx context.Context, creds Credentials) (Result, error) {
	if err := prepare(&creds); err != nil {
		return Result{}, err
	}

	res, err := s.authenticate(ctx, s.prefix+"/login", creds, true)
	if err != nil {
		return Result{}, err
	}
	s.logger.InfoContext(ctx, "logged in", logger.Component("auth"))
	return res, nil
}

// Refresh runs the client's refresh cycle. A 401 from the refresh endpoint ends the session.
func (s *Service) Refresh(ctx context.Context) error {
	return s.client.Refresh(ctx)
}

// Logout tells the API the session ends and always clears it locally.
// The remote call is best effort; only a local failure is returned.
func (s *Service) Logout(ctx context.Context) error {
	req := apiclient.NewRequest(http.MethodPost, s.logoutPath).WithoutRefresh()
	if _, err := s.client.Send(ctx, req); err != nil {
		s.logger.DebugContext(ctx, "remote logout failed", logger.Component("auth"), logger.Error(err))
	}
	return s.client.ClearSession(ctx, "logout")
}

// Check calls the refresh endpoint without side effects on failure and
// reports whether the API still recognizes the session. A token rotated by
// the call is stored.
func (s *Service) Check(ctx context.Context) bool {
	sessions := s.client.Sessions()
	if s.client.UsesToken() && !sessions.IsAuthenticated(ctx) {
		return false
	}

	resp, err := s.client.Send(ctx, apiclient.NewRequest(http.MethodGet, s.client.RefreshPath()).WithoutRefresh())
	if err != nil {
		return false
	}
	if s.client.UsesToken() {
		var body authResponse
		if resp.Decode(&body) == nil && body.Token != "" {
			if err := sessions.Set(ctx, body.Token); err != nil {
				s.logger.WarnContext(ctx, "failed to store rotated token", logger.Error(err))
			}
		}
	}
	return true
}

// Me returns the identity carried by the stored token.
func (s *Service) Me(ctx context.Context) (User, error) {
	id, err := s.client.Sessions().Identity(ctx)
	if errors.Is(err, session.ErrNotAuthenticated) {
		return User{}, ErrNotAuthenticated
	}
	if err != nil {
		return User{}, err
	}
	return User{ID: id.UserID, Nickname: id.Nickname, Email: id.Email}, nil
}

func (s *Service) authenticate(ctx context.Context, path string, payload any, tokenRequired bool) (Result, error) {
	req, err := apiclient.NewRequest(http.MethodPost, path).WithJSON(payload)
	if err != nil {
		return Result{}, err
	}

	resp, err := s.client.Send(ctx, req.WithoutRefresh())
	if err != nil {
		return Result{}, err
	}

	var body authResponse
	if err := resp.Decode(&body); err != nil {
		return Result{}, err
	}

	res := Result{Token: body.Token}
	if body.ID != "" || body.Email != "" {
		res.User = &User{ID: body.ID, Nickname: body.Nickname, Email: body.Email}
	}

	if body.Token == "" {
		if tokenRequired && s.client.UsesToken() {
			return Result{}, apiclient.ErrMissingToken
		}
		return res, nil
	}

	if err := s.client.Sessions().Set(ctx, body.Token); err != nil {
		return Result{}, err
	}
	if res.User == nil {
		if id, err := session.ParseIdentity(body.Token); err == nil {
			res.User = &User{ID: id.UserID, Nickname: id.Nickname, Email: id.Email}
		}
	}
	return res, nil
}

func prepare(v any) error {
	if err := sanitizer.SanitizeStruct(v); err != nil {
		return err
	}
	return validator.ValidateStruct(v)
}

func resultKind(res Result) string {
	if res.Token != "" {
		return "session_started"
	}
	return "created"
}
