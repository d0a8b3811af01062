package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	reviewsSubmitted   metric.Int64Counter
	summariesGenerated metric.Int64Counter
	summariesDiscarded metric.Int64Counter
	uploadsGated       metric.Int64Counter
	eventsPublished    metric.Int64Counter
	eventsFailed       metric.Int64Counter
}

func New(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.reviewsSubmitted, err = meter.Int64Counter(
		"archool.reviews.submitted",
		metric.WithDescription("Total number of reviews submitted"),
		metric.WithUnit("{review}"),
	)
	if err != nil {
		return nil, err
	}

	m.summariesGenerated, err = meter.Int64Counter(
		"archool.summaries.generated",
		metric.WithDescription("Total number of AI trend summaries stored"),
		metric.WithUnit("{summary}"),
	)
	if err != nil {
		return nil, err
	}

	m.summariesDiscarded, err = meter.Int64Counter(
		"archool.summaries.discarded",
		metric.WithDescription("Total number of AI trend summaries dropped because the selection changed"),
		metric.WithUnit("{summary}"),
	)
	if err != nil {
		return nil, err
	}

	m.uploadsGated, err = meter.Int64Counter(
		"archool.resources.uploads_gated",
		metric.WithDescription("Total number of upload requests redirected to identity verification"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	m.eventsPublished, err = meter.Int64Counter(
		"archool.events.published",
		metric.WithDescription("Total number of events published"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	m.eventsFailed, err = meter.Int64Counter(
		"archool.events.failed",
		metric.WithDescription("Total number of events that failed to publish"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Metrics) RecordReviewSubmitted(ctx context.Context, targetType string) {
	if m != nil && m.reviewsSubmitted != nil {
		m.reviewsSubmitted.Add(ctx, 1, metric.WithAttributes(attribute.String("target_type", targetType)))
	}
}

func (m *Metrics) RecordSummaryGenerated(ctx context.Context) {
	if m != nil && m.summariesGenerated != nil {
		m.summariesGenerated.Add(ctx, 1)
	}
}

func (m *Metrics) RecordSummaryDiscarded(ctx context.Context) {
	if m != nil && m.summariesDiscarded != nil {
		m.summariesDiscarded.Add(ctx, 1)
	}
}

func (m *Metrics) RecordUploadGated(ctx context.Context) {
	if m != nil && m.uploadsGated != nil {
		m.uploadsGated.Add(ctx, 1)
	}
}

func (m *Metrics) RecordEventPublished(ctx context.Context, eventType string) {
	if m != nil && m.eventsPublished != nil {
		m.eventsPublished.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", eventType)))
	}
}

func (m *Metrics) RecordEventFailed(ctx context.Context, eventType string) {
	if m != nil && m.eventsFailed != nil {
		m.eventsFailed.Add(ctx, 1, metric.WithAttributes(attribute.String("event_type", eventType)))
	}
}

// NewMock creates a no-op Metrics instance for testing
// The returned Metrics will safely ignore all Record* calls
func NewMock() *Metrics {
	return &Metrics{}
}
