package usecase

import (
	"context"

	"github.com/allisson/employees/internal/metrics"
	"github.com/allisson/employees/internal/outbox/domain"
)

// eventProcessorWithMetrics counts delivery attempts per event type.
type eventProcessorWithMetrics struct {
	next    EventProcessor
	metrics metrics.BusinessMetrics
}

// NewEventProcessorWithMetrics wraps an EventProcessor with metrics recording.
func NewEventProcessorWithMetrics(processor EventProcessor, m metrics.BusinessMetrics) EventProcessor {
	return &eventProcessorWithMetrics{
		next:    processor,
		metrics: m,
	}
}

// Process records the outcome of delivering event.
func (p *eventProcessorWithMetrics) Process(ctx context.Context, event *domain.OutboxEvent) error {
	err := p.next.Process(ctx, event)

	status := metrics.StatusSuccess
	if err != nil {
		status = metrics.StatusFailed
	}
	p.metrics.RecordEvent(ctx, event.EventType, status)

	return err
}
