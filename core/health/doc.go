// Package health runs dependency checks and reports whether the client can
// do useful work: the API answers, the credential store is readable and,
// when configured, Redis responds.
//
// Checks follow the func(context.Context) error signature, so integration
// packages can hand theirs over directly:
//
//	report := health.Readiness(ctx, log,
//		health.Check{Name: "api", Run: client.Ping},
//		health.Check{Name: "redis", Run: redis.Healthcheck(rdb)},
//	)
//	if !report.Ready() {
//		// at least one check failed
//	}
//
// Liveness is the trivial check: it always succeeds and only confirms the
// process can run checks at all.
package health
