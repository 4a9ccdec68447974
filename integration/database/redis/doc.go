// Package redis connects to Redis with go-redis and provides a Redis-backed
// credential store, so several processes on one machine (or a fleet of
// workers acting for one account) share a single session.
//
// # Connecting
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Connect validates the URL (redis:// or rediss://), then pings with
// exponential backoff until Redis answers, RetryAttempts run out or
// ConnectTimeout expires.
//
// # Session Store
//
//	store, err := redis.NewSessionStore(client,
//		redis.WithKey("pdi:session:ana"),
//		redis.WithTTL(24*time.Hour),
//		redis.WithEncryption(appKey, deviceKey),
//	)
//	sessions := session.NewManager(store)
//
// The credential is kept as a JSON document under one key. A missing key
// reads as session.ErrNotFound; deleting a missing key is not an error.
// With WithEncryption the token is sealed with pkg/secrets before it is
// written, and a value that fails to open reads as session.ErrCorrupted.
//
// # Health Checking
//
//	check := redis.Healthcheck(client)
//	if err := check(ctx); err != nil {
//		// ErrHealthcheckFailed
//	}
//
// # Errors
//
//   - ErrFailedToParseRedisConnString: the connection URL is malformed
//   - ErrRedisNotReady: Redis did not answer before retries ran out
//   - ErrEmptyConnectionURL: no connection URL was configured
//   - ErrHealthcheckFailed: the health check ping failed
package redis
