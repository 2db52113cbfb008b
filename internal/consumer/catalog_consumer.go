package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Eursukkul/event-catalog/internal/dto"
	"github.com/Eursukkul/event-catalog/internal/logger"
	"github.com/Eursukkul/event-catalog/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RoutingEventUpserted     = "event.upserted"
	RoutingEntryTypeUpserted = "entry_type.upserted"

	handleTimeout = 10 * time.Second
)

// maxPrice is the first value that no longer fits entry_type.price decimal(10,2).
var maxPrice = decimal.New(1, 8)

var (
	// ErrInvalidMessage marks a delivery that can never succeed; it is dropped.
	ErrInvalidMessage = errors.New("invalid catalog message")
	ErrUnknownEvent   = errors.New("entry type references unknown event")
)

// CatalogConsumer mirrors upstream event and entry type records into the
// local store.
type CatalogConsumer struct {
	events     repository.EventRepository
	entryTypes repository.EntryTypeRepository
	validate   *validator.Validate
	log        *logger.Logger
}

func NewCatalogConsumer(events repository.EventRepository, entryTypes repository.EntryTypeRepository, log *logger.Logger) *CatalogConsumer {
	return &CatalogConsumer{
		events:     events,
		entryTypes: entryTypes,
		validate:   validator.New(),
		log:        log,
	}
}

// Start handles deliveries in a goroutine until msgs is closed. The returned
// channel is closed once the last delivery has been handled.
func (cc *CatalogConsumer) Start(msgs <-chan amqp.Delivery) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for msg := range msgs {
			cc.handleMessage(msg)
		}
		cc.log.Info("SYNC", "delivery channel closed, stopping consumer")
	}()
	return done
}

func (cc *CatalogConsumer) handleMessage(msg amqp.Delivery) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	err := cc.Handle(ctx, msg.RoutingKey, msg.Body)
	switch {
	case err == nil:
		_ = msg.Ack(false)
	case errors.Is(err, ErrInvalidMessage), errors.Is(err, ErrUnknownEvent), isRejectedByStore(err):
		cc.log.Warn("SYNC", fmt.Sprintf("[%s] dropping message: %v", msg.RoutingKey, err))
		_ = msg.Nack(false, false)
	default:
		cc.log.Error("SYNC", fmt.Sprintf("[%s] requeueing message: %v", msg.RoutingKey, err))
		_ = msg.Nack(false, true)
	}
}

// Handle applies one message body according to its routing key.
func (cc *CatalogConsumer) Handle(ctx context.Context, routingKey string, body []byte) error {
	switch routingKey {
	case RoutingEventUpserted:
		return cc.upsertEvent(ctx, body)
	case RoutingEntryTypeUpserted:
		return cc.upsertEntryType(ctx, body)
	default:
		return fmt.Errorf("%w: unknown routing key %q", ErrInvalidMessage, routingKey)
	}
}

func (cc *CatalogConsumer) upsertEvent(ctx context.Context, body []byte) error {
	var m dto.EventSyncMessage
	if err := cc.decode(body, &m); err != nil {
		return err
	}
	if m.EndsAt != nil && !m.EndsAt.After(m.StartsAt) {
		return fmt.Errorf("%w: event %d ends before it starts", ErrInvalidMessage, m.ID)
	}

	if err := cc.events.Upsert(ctx, m.ToModel()); err != nil {
		return fmt.Errorf("upsert event %d: %w", m.ID, err)
	}
	cc.log.LogSync(RoutingEventUpserted, fmt.Sprintf("synced event %d: %s", m.ID, m.Name))
	return nil
}

func (cc *CatalogConsumer) upsertEntryType(ctx context.Context, body []byte) error {
	var m dto.EntryTypeSyncMessage
	if err := cc.decode(body, &m); err != nil {
		return err
	}
	if m.Price.IsNegative() {
		return fmt.Errorf("%w: entry type %d has negative price", ErrInvalidMessage, m.ID)
	}
	if m.Price.GreaterThanOrEqual(maxPrice) {
		return fmt.Errorf("%w: entry type %d price %s out of range", ErrInvalidMessage, m.ID, m.Price)
	}

	if _, err := cc.events.FindByID(ctx, m.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: entry type %d, event %d", ErrUnknownEvent, m.ID, m.EventID)
		}
		return fmt.Errorf("find event %d: %w", m.EventID, err)
	}

	if err := cc.entryTypes.Upsert(ctx, m.ToModel()); err != nil {
		return fmt.Errorf("upsert entry type %d: %w", m.ID, err)
	}
	cc.log.LogSync(RoutingEntryTypeUpserted, fmt.Sprintf("synced entry type %d of event %d", m.ID, m.EventID))
	return nil
}

func (cc *CatalogConsumer) decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if err := cc.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return nil
}

// isRejectedByStore reports whether Postgres refused the row itself: data
// exceptions (SQLSTATE class 22) and integrity violations (class 23). Retrying
// such a message can never succeed.
func isRejectedByStore(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || len(pgErr.Code) < 2 {
		return false
	}
	switch pgErr.Code[:2] {
	case "22", "23":
		return true
	}
	return false
}
