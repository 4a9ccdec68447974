// Package pdi wires the PDI client toolkit into one application value: it
// loads configuration, opens the credential store, picks the session
// transport, builds the authenticated API client and the auth, plan and
// chat services on top of it.
//
//	app, err := pdi.New(ctx)
//	if err != nil {
//		return err
//	}
//	defer app.Close()
//
//	if _, err := app.Auth().Login(ctx, auth.Credentials{Email: "ana@example.com", Password: "Secret1!"}); err != nil {
//		return err
//	}
//	plans, err := app.Plans().List(ctx)
//
// # Packages
//
//	github.com/meupdi/pdi/core/session          - credential store and session manager
//	github.com/meupdi/pdi/core/sessiontransport - bearer header or cookie jar credentials
//	github.com/meupdi/pdi/core/apiclient        - authenticated client with refresh-and-retry
//	github.com/meupdi/pdi/core/config           - environment configuration
//	github.com/meupdi/pdi/core/logger           - slog factory and attribute helpers
//	github.com/meupdi/pdi/core/health           - dependency checks
//	github.com/meupdi/pdi/core/sanitizer        - input normalization
//	github.com/meupdi/pdi/core/validator        - input rules
//	github.com/meupdi/pdi/auth                  - register, login, refresh, logout
//	github.com/meupdi/pdi/plan                  - plans, content, mind map, outline
//	github.com/meupdi/pdi/chat                  - plan-building conversation
//	github.com/meupdi/pdi/integration/database/redis - shared Redis credential store
//	github.com/meupdi/pdi/pkg/async             - futures
//	github.com/meupdi/pdi/pkg/broadcast         - in-memory pub/sub
//	github.com/meupdi/pdi/pkg/jwt               - token claims
//	github.com/meupdi/pdi/pkg/secrets           - credential encryption at rest
//
// # Session Events
//
// The client publishes SessionRefreshed, SessionExpired and SessionEnded.
// A front end subscribes and sends the user back to login on SessionExpired:
//
//	sub := app.Subscribe(ctx)
//	for msg := range sub.Receive(ctx) {
//		if msg.Data.Kind == apiclient.SessionExpired {
//			// show the login screen
//		}
//	}
package pdi
