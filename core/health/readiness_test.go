package health_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meupdi/pdi/core/health"
)

func TestReadiness(t *testing.T) {
	t.Parallel()

	t.Run("all checks pass", func(t *testing.T) {
		t.Parallel()
		report := health.Readiness(context.Background(), nil,
			health.Check{Name: "api", Run: func(context.Context) error { return nil }},
			health.Check{Name: "live", Run: health.Liveness},
		)

		assert.True(t, report.Ready())
		assert.Empty(t, report.Failed())
		require.Len(t, report.Results, 2)
		assert.Equal(t, "api", report.Results[0].Name)
		assert.Equal(t, "live", report.Results[1].Name)
	})

	t.Run("one failure keeps the others", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("connection refused")
		report := health.Readiness(context.Background(), nil,
			health.Check{Name: "api", Run: func(context.Context) error { return boom }},
			health.Check{Name: "store", Run: func(context.Context) error { return nil }},
		)

		assert.False(t, report.Ready())
		failed := report.Failed()
		require.Len(t, failed, 1)
		assert.Equal(t, "api", failed[0].Name)
		assert.ErrorIs(t, failed[0].Err, boom)
		assert.True(t, report.Results[1].OK())
	})

	t.Run("nil check func counts as alive", func(t *testing.T) {
		t.Parallel()
		report := health.Readiness(context.Background(), nil, health.Check{Name: "noop"})
		assert.True(t, report.Ready())
	})

	t.Run("no checks is ready", func(t *testing.T) {
		t.Parallel()
		assert.True(t, health.Readiness(context.Background(), nil).Ready())
	})
}
