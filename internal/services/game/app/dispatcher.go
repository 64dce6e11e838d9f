package app

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/louisbranch/emberfall/internal/entity"
	"github.com/louisbranch/emberfall/internal/event"
	"github.com/louisbranch/emberfall/internal/services/game/storage"
)

// Handler observes one dispatched event. Handlers run synchronously in
// registration order and may cancel cancellable events.
type Handler func(ctx context.Context, evt event.Event)

// journalDispatcher delivers events to a fixed handler chain and records the
// delivery outcome in the dispatch journal.
type journalDispatcher struct {
	handlers []Handler
	journal  storage.DispatchJournal
	clock    func() time.Time
}

func newJournalDispatcher(journal storage.DispatchJournal, handlers ...Handler) *journalDispatcher {
	return &journalDispatcher{
		handlers: handlers,
		journal:  journal,
		clock:    time.Now,
	}
}

// Dispatch delivers the event to every handler, then journals the outcome.
// The host applies or skips the underlying change based on the event's
// cancellation flag after Dispatch returns.
func (d *journalDispatcher) Dispatch(ctx context.Context, evt event.Event) error {
	if evt == nil {
		return fmt.Errorf("event is required")
	}

	tracer := otel.Tracer("emberfall/game")
	ctx, span := tracer.Start(ctx, "event.dispatch")
	defer span.End()
	span.SetAttributes(attribute.String("event.name", string(evt.EventName())))

	for _, handler := range d.handlers {
		handler(ctx, evt)
	}

	record := storage.DispatchRecord{
		EventName:  string(evt.EventName()),
		OccurredAt: d.clock().UTC(),
	}
	if subject, ok := evt.(interface{ Entity() entity.Entity }); ok {
		if e := subject.Entity(); e != nil {
			record.EntityID = e.EntityID()
		}
	}
	if caused, ok := evt.(interface{ Cause() event.PowerCause }); ok {
		record.Cause = caused.Cause().String()
	}
	if cancellable, ok := evt.(event.Cancellable); ok {
		record.Cancelled = cancellable.Cancelled()
		span.SetAttributes(attribute.Bool("event.cancelled", record.Cancelled))
	}

	if d.journal == nil {
		return nil
	}
	if err := d.journal.AppendDispatchRecord(ctx, record); err != nil {
		return fmt.Errorf("journal dispatch: %w", err)
	}
	return nil
}
