package broker

import (
	"context"
	"log/slog"

	"bizdash/internal/modules/dashboard/domain"
)

// Dispatcher routes a decoded event to its handler.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg *domain.Message) error
}

// StartKafkaConsumers starts one consumer goroutine per topic. It does nothing when no
// brokers are configured. Consumers stop when ctx is done.
func StartKafkaConsumers(
	ctx context.Context,
	dispatcher Dispatcher,
	brokers []string,
	groupID string,
	topics []string,
) int {
	if len(brokers) == 0 {
		slog.Info("kafka disabled: no brokers configured")
		return 0
	}
	started := 0
	for _, topic := range topics {
		go func(tp string) {
			consumer := NewKafkaConsumer(brokers, groupID, tp)
			err := consumer.Consume(ctx, func(msg *domain.Message) error {
				return dispatcher.Dispatch(ctx, msg)
			})
			slog.Info("kafka consumer stopped", slog.String("topic", tp), slog.Any("reason", err))
		}(topic)
		started++
	}
	return started
}
