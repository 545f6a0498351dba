package app

import (
	"context"
	"fmt"
	"sync"

	"gocloud.dev/pubsub"

	"github.com/allisson/employees/internal/database"
	outboxRepository "github.com/allisson/employees/internal/outbox/repository"
	outboxUseCase "github.com/allisson/employees/internal/outbox/usecase"
)

// outboxComponents holds the lazily built outbox dependencies.
type outboxComponents struct {
	outboxRepo    outboxUseCase.OutboxEventRepository
	eventTopic    *pubsub.Topic
	outboxUseCase outboxUseCase.UseCase

	outboxRepoInit    sync.Once
	eventTopicInit    sync.Once
	outboxUseCaseInit sync.Once
}

// OutboxRepository returns the outbox event repository for the configured driver.
func (c *Container) OutboxRepository() (outboxUseCase.OutboxEventRepository, error) {
	err := c.once("outboxRepo", &c.outboxRepoInit, func() (err error) {
		c.outboxRepo, err = c.initOutboxRepository()
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.outboxRepo, nil
}

// EventTopic returns the opened event topic.
func (c *Container) EventTopic(ctx context.Context) (*pubsub.Topic, error) {
	err := c.once("eventTopic", &c.eventTopicInit, func() (err error) {
		c.eventTopic, err = outboxUseCase.OpenTopic(ctx, c.config.EventsTopicURL)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.eventTopic, nil
}

// OutboxUseCase returns the outbox relay.
func (c *Container) OutboxUseCase(ctx context.Context) (outboxUseCase.UseCase, error) {
	err := c.once("outboxUseCase", &c.outboxUseCaseInit, func() (err error) {
		c.outboxUseCase, err = c.initOutboxUseCase(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return c.outboxUseCase, nil
}

// initOutboxRepository selects the repository matching the database driver.
func (c *Container) initOutboxRepository() (outboxUseCase.OutboxEventRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for outbox repository: %w", err)
	}

	switch {
	case database.IsPostgres(c.config.DBDriver):
		return outboxRepository.NewPostgreSQLOutboxEventRepository(db), nil
	case c.config.DBDriver == database.DriverMySQL:
		return outboxRepository.NewMySQLOutboxEventRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initOutboxUseCase creates the relay publishing to the event topic, or to the log
// when no topic URL is configured.
func (c *Container) initOutboxUseCase(ctx context.Context) (outboxUseCase.UseCase, error) {
	logger := c.Logger()

	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for outbox use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for outbox use case: %w", err)
	}

	var processor outboxUseCase.EventProcessor = outboxUseCase.NewLoggingEventProcessor(logger)
	if c.config.EventsTopicURL != "" {
		topic, err := c.EventTopic(ctx)
		if err != nil {
			return nil, err
		}
		processor = outboxUseCase.NewTopicEventProcessor(topic)
	}

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for outbox use case: %w", err)
		}
		processor = outboxUseCase.NewEventProcessorWithMetrics(processor, businessMetrics)
	}

	useCaseConfig := outboxUseCase.Config{
		Interval:   c.config.OutboxInterval,
		BatchSize:  c.config.OutboxBatchSize,
		MaxRetries: c.config.OutboxMaxRetries,
	}

	return outboxUseCase.NewOutboxUseCase(useCaseConfig, txManager, outboxRepo, processor, logger), nil
}
