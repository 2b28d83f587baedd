package kafka

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"dispatch/internal/pkg/config"
	"dispatch/pkg/logger"
	"dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
	"github.com/IBM/sarama"
)

const clientID = "dispatch-worker"

var ErrTopicNotFound = errors.New("topic not found")

// Consumer читает один топик в составе consumer group.
type Consumer struct {
	log     consumerLogger
	group   sarama.ConsumerGroup
	topic   string
	handler sarama.ConsumerGroupHandler
}

// topicLister возвращает список топиков кластера, на каждый вызов отдельное подключение.
type topicLister func(ctx context.Context) ([]string, error)

// NewSaramaConfig ошибки группы отдаются через Errors(), Run их логирует.
func NewSaramaConfig(cfg config.Sarama) (*sarama.Config, error) {
	version, err := sarama.ParseKafkaVersion(cfg.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Version, err)
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.ClientID = clientID
	saramaConfig.Version = version
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = cfg.ConsumerOffsetsAutocommit
	saramaConfig.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{
		sarama.NewBalanceStrategyRoundRobin(),
	}

	return saramaConfig, nil
}

// ParseBrokers разбирает список брокеров через запятую, пустые элементы отбрасываются.
func ParseBrokers(raw string) []string {
	brokers := make([]string, 0)
	for _, broker := range strings.Split(raw, ",") {
		broker = strings.TrimSpace(broker)
		if broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

// NewConsumer дожидается появления топика в кластере и только потом вступает в группу.
func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	brokers := ParseBrokers(cfg.Brokers)
	if len(brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers in %q", cfg.Brokers)
	}

	saramaConfig, err := NewSaramaConfig(cfg.Sarama)
	if err != nil {
		return nil, fmt.Errorf("sarama config: %w", err)
	}

	consumerLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topic", cfg.Topic),
	)

	list := func(context.Context) ([]string, error) {
		client, err := sarama.NewClient(brokers, saramaConfig)
		if err != nil {
			return nil, err
		}
		defer func() {
			if err := client.Close(); err != nil {
				consumerLog.With(logger.NewField("error", err)).Warn("close kafka client")
			}
		}()
		return client.Topics()
	}

	err = waitForTopic(ctx, consumerLog, cfg.Topic, defaultRetryConfig(), list)
	if err != nil {
		return nil, err
	}

	group, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	return newConsumer(consumerLog, group, cfg.Topic, handler), nil
}

func newConsumer(log consumerLogger, group sarama.ConsumerGroup, topic string, handler sarama.ConsumerGroupHandler) *Consumer {
	return &Consumer{
		log:     log,
		group:   group,
		topic:   topic,
		handler: handler,
	}
}

// Run блокирует до отмены ctx или закрытия группы, в обоих случаях возвращает nil.
// Consume завершается на каждой ребалансировке, поэтому вызывается в цикле.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Info("Kafka consumer starting")

	// канал ошибок закрывается в Close
	go func() {
		for err := range c.group.Errors() {
			c.log.With(logger.NewField("error", err)).Error("consumer group error")
		}
	}()

	err := c.consume(ctx)
	if err != nil {
		return err
	}

	c.log.Info("Kafka consumer stopped")
	return nil
}

func (c *Consumer) consume(ctx context.Context) error {
	topics := []string{c.topic}
	for {
		err := c.group.Consume(ctx, topics, c.handler)
		switch {
		case errors.Is(err, sarama.ErrClosedConsumerGroup):
			return nil
		case err != nil:
			return fmt.Errorf("consume %q: %w", c.topic, err)
		case ctx.Err() != nil:
			return nil
		}
	}
}

// Close закрывает группу, после этого Run завершается.
func (c *Consumer) Close() error {
	return c.group.Close()
}

func defaultRetryConfig() retrier.Config {
	return retrier.Config{
		InitialInterval: time.Second,
		MaxInterval:     30 * time.Second,
		MaxElapsedTime:  2 * time.Minute,
		Randomization:   0.5,
		Multiplier:      2,
	}
}

func waitForTopic(ctx context.Context, log consumerLogger, topic string, retryConfig retrier.Config, list topicLister) error {
	var attempt int
	retryConfig.Notify = func(a retrier.Attempt) {
		log.With(
			logger.NewField("attempt", a.Number),
			logger.NewField("retry_in", a.Next.String()),
			logger.NewField("error", a.Err),
		).Warn("Kafka is not ready")
	}

	err := backoff_adapter.New(retryConfig).ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		topics, err := list(ctx)
		if err != nil {
			return fmt.Errorf("list topics: %w", err)
		}
		if !slices.Contains(topics, topic) {
			return fmt.Errorf("%q: %w", topic, ErrTopicNotFound)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("kafka not ready after %d attempts: %w", attempt, err)
	}

	log.With(logger.NewField("attempts", attempt)).Info("Kafka connection established")
	return nil
}
