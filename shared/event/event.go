package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/metrics"
	"hotel/infras/otel"
	"hotel/shared/constant"
	"hotel/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	RoomCreated       = "room.created"
	RoomUpdated       = "room.updated"
	RoomDeleted       = "room.deleted"
	IncidenceOpened   = "incidence.opened"
	IncidenceClosed   = "incidence.closed"
	CleaningRecorded  = "cleaning.recorded"
	CleaningRefreshed = "cleaning.refreshed"
)

const otelAttrEventType = "event.type"

// Envelope is the JSON value written to the room events topic, keyed by room id.
type Envelope struct {
	Type       string    `json:"type"`
	RoomID     string    `json:"room_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data,omitempty"`
}

// Publisher announces room changes. Publishing never fails the caller: delivery errors are
// logged and dropped.
type Publisher interface {
	Publish(ctx context.Context, eventType, roomID string, data any)
}

type publisherImpl struct {
	client  kafka.Client
	topic   string
	metrics *metrics.Metrics
	otel    otel.Otel
}

func New(client kafka.Client, cfg *config.Config, metrics *metrics.Metrics, otel otel.Otel) Publisher {
	return &publisherImpl{
		client:  client,
		topic:   cfg.Kafka.Topic.RoomEvents,
		metrics: metrics,
		otel:    otel,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, eventType, roomID string, data any) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	scope.SetAttribute(otelAttrEventType, eventType)
	p.metrics.RoomEvents.WithLabelValues(eventType).Inc()

	err := p.client.SendMessages(ctx, p.topic, kafka.Message{
		Key:  roomID,
		Type: eventType,
		Value: Envelope{
			Type:       eventType,
			RoomID:     roomID,
			OccurredAt: timezone.Now(),
			Data:       data,
		},
	})
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("event", eventType).Str("room_id", roomID).Msg("failed to publish room event")
	}
}
