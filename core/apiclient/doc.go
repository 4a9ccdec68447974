// Package apiclient is the authenticated request client for the PDI API.
//
// Every request is sent with the stored credential attached. When the server
// answers 401 the client runs a single refresh cycle and replays the original
// request exactly once:
//
//	sent ──2xx..4xx (not 401)──▶ done
//	  │
//	  └─401──▶ refresh ──ok──▶ replay ──▶ done (whatever the replay returns)
//	              │
//	              ├─401───▶ session cleared, SessionExpired published, error
//	              └─other─▶ session kept, error
//
// A replay answered 401 again is returned as ErrAuthRejected without a second
// refresh. Transport failures never trigger a refresh.
//
// # Basic Usage
//
//	sessions := session.NewManager(store)
//	client, err := apiclient.New("http://localhost:8080", sessions)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	var plans []plan.Plan
//	err = client.JSON(ctx, http.MethodGet, "/api/pdis", nil, &plans)
//
// Lower level access goes through Send with an immutable Request:
//
//	req := apiclient.NewRequest(http.MethodPatch, "/api/pdis/42")
//	req, _ = req.WithJSON(map[string]string{"name": "Q3"})
//	resp, err := client.Send(ctx, req)
//
// # Session Events
//
// The client never navigates. It publishes SessionEvent values instead, and
// the shell decides what a SessionExpired means (typically: show login).
//
//	sub := client.Subscribe(ctx)
//	for msg := range sub.Receive(ctx) {
//		if msg.Data.Kind == apiclient.SessionExpired {
//			showLogin()
//		}
//	}
//
// # Concurrent Refresh
//
// By default every request that receives a 401 runs its own refresh cycle.
// WithSingleFlightRefresh(true) collapses concurrent cycles into one call.
//
// # Errors
//
//   - ErrTransport: no HTTP response (network failure, cancelled context)
//   - *APIError: status >= 400, with the server's {"error": "..."} message
//   - ErrAuthRejected: still unauthenticated after the refresh cycle,
//     joined with ErrRefreshFailed when the refresh itself failed
//
// # Metrics
//
//	m, err := apiclient.NewMetrics(prometheus.DefaultRegisterer)
//	client, err := apiclient.New(baseURL, sessions, apiclient.WithMetrics(m))
package apiclient
