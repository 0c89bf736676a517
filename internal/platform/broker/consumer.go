package broker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"bizdash/internal/modules/dashboard/domain"
	"bizdash/internal/shared/normalization"
)

type KafkaConsumer struct {
	reader *kafka.Reader
}

func NewKafkaConsumer(brokers []string, groupID string, topic string) *KafkaConsumer {
	return &KafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			GroupID: groupID,
			Topic:   topic,
		}),
	}
}

// Consume reads until ctx is done. Handler errors are logged and the message is still
// committed; upstream events are hints to refresh, not work items.
func (c *KafkaConsumer) Consume(ctx context.Context, handler func(*domain.Message) error) error {
	defer c.reader.Close()
	for {
		m, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return ctx.Err()
			}
			slog.Warn("kafka read error", slog.Any("error", err))
			time.Sleep(time.Second)
			continue
		}
		msg := decodeMessage(m)
		slog.Info("kafka message consumed",
			slog.String("topic", m.Topic),
			slog.Int("partition", m.Partition),
			slog.Int64("offset", m.Offset),
			slog.String("entity", msg.Entity),
			slog.String("action", msg.Action),
			slog.String("companyId", msg.CompanyID),
		)
		if err := handler(msg); err != nil {
			slog.Warn("kafka handler error", slog.String("entity", msg.Entity), slog.Any("error", err))
		}
	}
}

type rawEvent struct {
	Entity     string            `json:"entity"`
	Action     string            `json:"action"`
	ResourceID any               `json:"resourceId"`
	CompanyID  any               `json:"companyId"`
	Topic      string            `json:"topic"`
	Metadata   map[string]string `json:"metadata"`
	Data       any               `json:"data"`
}

func decodeMessage(m kafka.Message) *domain.Message {
	msg := &domain.Message{Timestamp: m.Time.UTC()}
	if m.Time.IsZero() {
		msg.Timestamp = time.Now().UTC()
	}

	var event rawEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		msg.Topic = m.Topic
		msg.Entity, msg.Action = inferEntityActionFromTopic(m.Topic)
		msg.Data = string(m.Value)
		return msg
	}

	entity, action := inferEntityActionFromTopic(m.Topic)
	msg.Entity = normalization.NormalizeEntity(normalization.FirstNonEmpty(event.Entity, entity))
	msg.Action = strings.ToLower(normalization.FirstNonEmpty(event.Action, action))
	msg.ResourceID = normalization.AsString(event.ResourceID)
	msg.Metadata = event.Metadata
	msg.Data = event.Data
	msg.CompanyID = companyIDFrom(event)

	if event.Topic != "" {
		msg.Topic = event.Topic
	} else {
		msg.Topic = msg.Entity + "." + msg.Action
	}
	return msg
}

// companyIDFrom looks at the event itself, then its metadata, then its payload.
func companyIDFrom(event rawEvent) string {
	if id := normalization.AsString(event.CompanyID); id != "" {
		return id
	}
	if event.Metadata != nil {
		if id := normalization.FirstNonEmpty(event.Metadata["companyId"], event.Metadata["company_id"]); id != "" {
			return strings.TrimSpace(id)
		}
	}
	return normalization.FirstString(normalization.MapFromPayload(event.Data), "companyId", "company_id", "company")
}

// inferEntityActionFromTopic reads "<prefix>.<entity>.<action>" style topic names.
func inferEntityActionFromTopic(topic string) (string, string) {
	parts := strings.Split(topic, ".")
	if len(parts) >= 2 {
		entity := strings.TrimSpace(parts[len(parts)-2])
		action := strings.TrimSpace(parts[len(parts)-1])
		if entity != "" && action != "" {
			return normalization.NormalizeEntity(entity), strings.ToLower(action)
		}
	}
	if entity := normalizeTopic(topic); entity != "" {
		return normalization.NormalizeEntity(entity), "unknown"
	}
	return "", "unknown"
}

func normalizeTopic(topic string) string {
	if idx := strings.LastIndex(topic, "."); idx >= 0 {
		topic = topic[idx+1:]
	}
	return strings.TrimSpace(topic)
}
