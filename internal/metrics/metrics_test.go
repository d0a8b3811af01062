package metrics_test

import (
	"context"
	"testing"

	"github.com/HeidiChen0/Archool/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("New_NoopMeter", func(t *testing.T) {
		m, err := metrics.New(noop.NewMeterProvider().Meter("archool"))
		require.NoError(t, err)

		assert.NotPanics(t, func() {
			m.RecordReviewSubmitted(ctx, "Teacher")
			m.RecordSummaryGenerated(ctx)
			m.RecordEventPublished(ctx, "review.submitted")
		})
	})

	t.Run("NilSafe", func(t *testing.T) {
		var m *metrics.Metrics
		assert.NotPanics(t, func() {
			m.RecordReviewSubmitted(ctx, "School")
			m.RecordSummaryDiscarded(ctx)
			m.RecordUploadGated(ctx)
			m.RecordEventFailed(ctx, "donation.pledged")
		})

		mock := metrics.NewMock()
		assert.NotPanics(t, func() { mock.RecordSummaryGenerated(ctx) })
	})
}
