// Package telemetry records operational events for the game host. These are
// health and usage signals, kept separate from the gameplay dispatch journal.
package telemetry

import (
	"context"
	"time"

	"github.com/louisbranch/emberfall/internal/services/game/storage"
)

// Severity describes the telemetry severity level.
type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// Emitter records operational telemetry events.
type Emitter struct {
	store storage.TelemetryStore
	clock func() time.Time
}

// NewEmitter creates a new telemetry emitter.
func NewEmitter(store storage.TelemetryStore) *Emitter {
	return &Emitter{store: store, clock: time.Now}
}

// Emit records a telemetry event. It is a no-op when the store is nil.
func (e *Emitter) Emit(ctx context.Context, evt storage.TelemetryEvent) error {
	if e == nil || e.store == nil {
		return nil
	}
	if evt.Timestamp.IsZero() {
		if e.clock == nil {
			evt.Timestamp = time.Now().UTC()
		} else {
			evt.Timestamp = e.clock().UTC()
		}
	}
	if evt.Severity == "" {
		evt.Severity = string(SeverityInfo)
	}
	return e.store.AppendTelemetryEvent(ctx, evt)
}

// EmitInfo records an informational event with a name and detail.
func (e *Emitter) EmitInfo(ctx context.Context, name, detail string) error {
	return e.Emit(ctx, storage.TelemetryEvent{
		Severity: string(SeverityInfo),
		Name:     name,
		Detail:   detail,
	})
}

// EmitError records an error event with a name and detail.
func (e *Emitter) EmitError(ctx context.Context, name, detail string) error {
	return e.Emit(ctx, storage.TelemetryEvent{
		Severity: string(SeverityError),
		Name:     name,
		Detail:   detail,
	})
}
