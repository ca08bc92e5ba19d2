package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"listing-lifecycle-service/internal/constants"
	"listing-lifecycle-service/internal/contextkeys"
	"listing-lifecycle-service/internal/contracts"
	"listing-lifecycle-service/internal/core/domain"
	"listing-lifecycle-service/internal/core/port"
	"listing-lifecycle-service/pkg/rabbitmq/rabbitmq_producer"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQListingEventsAdapter реализует ListingEventsPort для RabbitMQ.
type RabbitMQListingEventsAdapter struct {
	producer *rabbitmq_producer.Publisher
}

// NewRabbitMQListingEventsAdapter создает новый экземпляр адаптера.
// producer - уже инициализированный rabbitmq_producer.Publisher.
func NewRabbitMQListingEventsAdapter(producer *rabbitmq_producer.Publisher) (*RabbitMQListingEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &RabbitMQListingEventsAdapter{producer: producer}, nil
}

// PublishListingPublished отправляет событие публикации объявления.
func (a *RabbitMQListingEventsAdapter) PublishListingPublished(ctx context.Context, listing domain.Listing) error {
	event := listingPublishedEventDTO{
		EventID:     uuid.New().String(),
		OwnerID:     listing.OwnerID,
		ListingID:   listing.ID,
		Category:    string(listing.Category),
		Name:        listing.Name,
		Geohash:     listing.Geohash,
		PublishedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	return a.publish(ctx, constants.RoutingKeyListingPublished, constants.SchemaListingPublished, listing.ID, event)
}

// PublishListingRemoved отправляет событие удаления объявления.
func (a *RabbitMQListingEventsAdapter) PublishListingRemoved(ctx context.Context, ownerID, listingID string, origin domain.Origin) error {
	event := listingRemovedEventDTO{
		EventID:   uuid.New().String(),
		OwnerID:   ownerID,
		ListingID: listingID,
		Origin:    string(origin),
		RemovedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	return a.publish(ctx, constants.RoutingKeyListingRemoved, constants.SchemaListingRemoved, listingID, event)
}

func (a *RabbitMQListingEventsAdapter) publish(ctx context.Context, routingKey, schemaKey, listingID string, event interface{}) error {
	logger := contextkeys.LoggerFromContext(ctx)
	adapterLogger := logger.WithFields(port.Fields{
		"component":   "RabbitMQListingEventsAdapter",
		"routing_key": routingKey,
		"listing_id":  listingID,
	})

	eventJSON, err := json.Marshal(event)
	if err != nil {
		adapterLogger.Error("Failed to marshal lifecycle event to JSON", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to marshal event: %w", err)
	}

	// Контракт проверяется до публикации: сообщение, не отвечающее схеме,
	// не должно попасть в обменник.
	if err := contracts.ValidateEvent(schemaKey, eventJSON); err != nil {
		adapterLogger.Error("Lifecycle event failed contract validation", err, port.Fields{"schema": schemaKey})
		return fmt.Errorf("rabbitmq adapter: event contract validation failed: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         eventJSON,
		DeliveryMode: amqp.Persistent, // Для сохранения сообщений при перезапуске брокера
		Timestamp:    time.Now(),
		Headers:      make(amqp.Table),
	}

	// Пробрасываем trace_id в заголовки сообщения
	traceID := contextkeys.TraceIDFromContext(ctx)
	if traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	// Таймаут на операцию публикации, если контекст его не предоставляет
	publishCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish lifecycle event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish event for listing %s: %w", listingID, err)
	}

	adapterLogger.Debug("Successfully published lifecycle event", nil)
	return nil
}
