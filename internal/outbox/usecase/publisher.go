package usecase

import (
	"context"
	"log/slog"

	"gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub"

	apperrors "github.com/allisson/employees/internal/errors"
	"github.com/allisson/employees/internal/outbox/domain"
)

// Message metadata keys set on every published event.
const (
	MetadataEventType = "event_type"
	MetadataEventID   = "event_id"
)

// TopicEventProcessor publishes events to a gocloud pubsub topic. The payload is the
// message body.
type TopicEventProcessor struct {
	topic *pubsub.Topic
}

// NewTopicEventProcessor creates a TopicEventProcessor sending to topic.
func NewTopicEventProcessor(topic *pubsub.Topic) *TopicEventProcessor {
	return &TopicEventProcessor{topic: topic}
}

// OpenTopic opens the topic at url, for example "mem://employees".
func OpenTopic(ctx context.Context, url string) (*pubsub.Topic, error) {
	topic, err := pubsub.OpenTopic(ctx, url)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to open event topic %q", url)
	}
	return topic, nil
}

// Process sends the event and waits for the topic to acknowledge it.
func (p *TopicEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	err := p.topic.Send(ctx, &pubsub.Message{
		Body: []byte(event.Payload),
		Metadata: map[string]string{
			MetadataEventType: event.EventType,
			MetadataEventID:   event.ID.String(),
		},
	})
	if err != nil {
		return apperrors.Wrap(err, "failed to publish event")
	}
	return nil
}

// LoggingEventProcessor writes events to the log. It is used when no topic is configured.
type LoggingEventProcessor struct {
	logger *slog.Logger
}

// NewLoggingEventProcessor creates a LoggingEventProcessor.
func NewLoggingEventProcessor(logger *slog.Logger) *LoggingEventProcessor {
	return &LoggingEventProcessor{logger: logger}
}

// Process logs the event.
func (p *LoggingEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	p.logger.InfoContext(ctx, "employee event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.EventType),
		slog.String("payload", event.Payload),
	)
	return nil
}
