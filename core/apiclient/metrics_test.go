package apiclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meupdi/pdi/core/apiclient"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := apiclient.NewMetrics(reg)
	require.NoError(t, err)

	// Registering twice reuses the existing collectors.
	again, err := apiclient.NewMetrics(reg)
	require.NoError(t, err)
	require.NotNil(t, again)

	api := newFakeAPI()
	api.refreshToken = "xyz"
	srv := httptest.NewServer(api)
	defer srv.Close()

	client, _ := newClient(t, srv, "abc", apiclient.WithMetrics(m))
	_, err = client.Send(context.Background(), apiclient.NewRequest(http.MethodGet, "/api/pdis"))
	require.NoError(t, err)

	expected := `
# HELP pdi_apiclient_session_refreshes_total Session refresh cycles by result.
# TYPE pdi_apiclient_session_refreshes_total counter
pdi_apiclient_session_refreshes_total{result="success"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "pdi_apiclient_session_refreshes_total"))

	// 401, refresh 201, replay 200.
	count, err := testutil.GatherAndCount(reg, "pdi_apiclient_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
