package pdi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"

	"github.com/meupdi/pdi/auth"
	"github.com/meupdi/pdi/chat"
	"github.com/meupdi/pdi/core/apiclient"
	"github.com/meupdi/pdi/core/config"
	"github.com/meupdi/pdi/core/health"
	"github.com/meupdi/pdi/core/logger"
	"github.com/meupdi/pdi/core/session"
	"github.com/meupdi/pdi/core/sessiontransport"
	"github.com/meupdi/pdi/integration/database/redis"
	"github.com/meupdi/pdi/pkg/broadcast"
	"github.com/meupdi/pdi/plan"
)

// App holds the wired client toolkit.
type App struct {
	config     Config
	configSet  bool
	logger     *slog.Logger
	store      session.Store
	redis      *goredis.Client
	httpClient *http.Client
	registerer prometheus.Registerer
	clientOpts []apiclient.Option

	sessions *session.Manager
	client   *apiclient.Client
	auth     *auth.Service
	plans    *plan.Service
	chat     *chat.Service
}

// Option configures an App.
type Option func(*App) error

// WithConfig uses cfg instead of loading the environment.
func WithConfig(cfg Config) Option {
	return func(app *App) error {
		app.config = cfg
		app.configSet = true
		return nil
	}
}

// WithLogger sets the logger shared by every component.
func WithLogger(l *slog.Logger) Option {
	return func(app *App) error {
		if l == nil {
			return ErrNilLogger
		}
		app.logger = l
		return nil
	}
}

// WithStore uses store instead of the one Config.Session describes.
func WithStore(store session.Store) Option {
	return func(app *App) error {
		if store == nil {
			return ErrNilStore
		}
		app.store = store
		return nil
	}
}

// WithHTTPClient sets the HTTP client the API client copies.
func WithHTTPClient(hc *http.Client) Option {
	return func(app *App) error {
		if hc == nil {
			return ErrNilHTTPClient
		}
		app.httpClient = hc
		return nil
	}
}

// WithRegisterer enables client metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(app *App) error {
		if reg == nil {
			return ErrNilRegisterer
		}
		app.registerer = reg
		return nil
	}
}

// WithClientOptions appends options to the API client's construction.
func WithClientOptions(opts ...apiclient.Option) Option {
	return func(app *App) error {
		app.clientOpts = append(app.clientOpts, opts...)
		return nil
	}
}

// New loads configuration (unless WithConfig is given) and wires the toolkit.
// The context bounds the Redis connection when the redis store is selected.
func New(ctx context.Context, opts ...Option) (*App, error) {
	app := &App{}
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if !app.configSet {
		if err := config.Load(&app.config); err != nil {
			return nil, err
		}
	}
	if app.logger == nil {
		app.logger = newLogger(app.config)
	}

	if err := app.wire(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}
	return app, nil
}

func newLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{logger.WithEnvironment(cfg.Env, cfg.AppName)}
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err == nil {
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...)
}

func (app *App) wire(ctx context.Context) error {
	if app.store == nil {
		store, err := app.openStore(ctx)
		if err != nil {
			return err
		}
		app.store = store
	}
	app.sessions = session.NewManager(app.store, session.WithLogger(app.logger))

	transport, err := sessiontransport.NewFromConfig(app.config.Transport)
	if err != nil {
		return err
	}

	clientOpts := []apiclient.Option{
		apiclient.WithTransport(transport),
		apiclient.WithLogger(app.logger),
	}
	if app.httpClient != nil {
		clientOpts = append(clientOpts, apiclient.WithHTTPClient(app.httpClient))
	}
	if app.registerer == nil && app.config.Metrics {
		app.registerer = prometheus.DefaultRegisterer
	}
	if app.registerer != nil {
		metrics, err := apiclient.NewMetrics(app.registerer)
		if err != nil {
			return err
		}
		clientOpts = append(clientOpts, apiclient.WithMetrics(metrics))
	}

	client, err := apiclient.NewFromConfig(app.config.API, app.sessions, append(clientOpts, app.clientOpts...)...)
	if err != nil {
		return err
	}
	app.client = client

	app.auth, err = auth.NewFromConfig(app.config.Auth, client, auth.WithLogger(app.logger))
	if err != nil {
		return err
	}
	app.plans = plan.New(client, plan.WithLogger(app.logger))
	app.chat = chat.New(client, app.plans, chat.WithLogger(app.logger))
	return nil
}

func (app *App) openStore(ctx context.Context) (session.Store, error) {
	if strings.EqualFold(app.config.Session.Store, session.StoreRedis) {
		appKey, deviceKey, err := app.config.Session.EncryptionKeys()
		if err != nil {
			return nil, err
		}
		var opts []redis.SessionStoreOption
		if appKey != nil {
			opts = append(opts, redis.WithEncryption(appKey, deviceKey))
		}

		rdb, err := redis.Connect(ctx, app.config.Redis)
		if err != nil {
			return nil, err
		}
		app.redis = rdb
		return redis.NewSessionStoreFromConfig(rdb, app.config.Redis, opts...)
	}
	return session.NewStoreFromConfig(app.config.Session)
}

// Config returns the configuration the app was built with.
func (app *App) Config() Config { return app.config }

// Logger returns the logger shared by every service.
func (app *App) Logger() *slog.Logger { return app.logger }

// Sessions returns the credential manager the API client reads from.
func (app *App) Sessions() *session.Manager { return app.sessions }

// Client returns the authenticated API client.
func (app *App) Client() *apiclient.Client { return app.client }

// Auth returns the login, logout and registration service.
func (app *App) Auth() *auth.Service { return app.auth }

// Plans returns the PDI plan service.
func (app *App) Plans() *plan.Service { return app.plans }

// Chat returns the plan chat service.
func (app *App) Chat() *chat.Service { return app.chat }

// Store returns the credential store behind Sessions.
func (app *App) Store() session.Store { return app.store }

// Subscribe returns a subscriber for the client's session events.
func (app *App) Subscribe(ctx context.Context) broadcast.Subscriber[apiclient.SessionEvent] {
	return app.client.Subscribe(ctx)
}

// Doctor checks the API, the credential store and, when used, Redis.
func (app *App) Doctor(ctx context.Context) health.Report {
	checks := []health.Check{
		{Name: "api", Run: app.client.Ping},
		{Name: "store", Run: app.checkStore},
	}
	if app.redis != nil {
		checks = append(checks, health.Check{Name: "redis", Run: redis.Healthcheck(app.redis)})
	}
	return health.Readiness(ctx, app.logger, checks...)
}

func (app *App) checkStore(ctx context.Context) error {
	_, err := app.store.Get(ctx)
	if errors.Is(err, session.ErrNotFound) {
		return nil
	}
	return err
}

// Close releases the event broadcaster and the Redis connection.
func (app *App) Close() error {
	var errs []error
	if app.client != nil {
		errs = append(errs, app.client.Close())
	}
	if app.redis != nil {
		errs = append(errs, app.redis.Close())
	}
	return errors.Join(errs...)
}
