package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/louisbranch/emberfall/internal/services/game/storage"
)

type fakeTelemetryStore struct {
	last  storage.TelemetryEvent
	count int
}

func (s *fakeTelemetryStore) AppendTelemetryEvent(ctx context.Context, evt storage.TelemetryEvent) error {
	s.last = evt
	s.count++
	return nil
}

func TestEmitterNoopWhenNil(t *testing.T) {
	var emitter *Emitter
	if err := emitter.Emit(context.Background(), storage.TelemetryEvent{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestEmitterNoopWhenStoreNil(t *testing.T) {
	emitter := &Emitter{}
	if err := emitter.Emit(context.Background(), storage.TelemetryEvent{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestEmitterAssignsTimestampAndSeverity(t *testing.T) {
	store := &fakeTelemetryStore{}
	emitter := NewEmitter(store)
	emitter.clock = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}

	if err := emitter.Emit(context.Background(), storage.TelemetryEvent{Name: "conversation.started"}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if store.count != 1 {
		t.Fatalf("expected one event, got %d", store.count)
	}
	if !store.last.Timestamp.Equal(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected clock timestamp, got %v", store.last.Timestamp)
	}
	if store.last.Severity != string(SeverityInfo) {
		t.Fatalf("expected default severity INFO, got %q", store.last.Severity)
	}
}

func TestEmitterPreservesExplicitTimestamp(t *testing.T) {
	store := &fakeTelemetryStore{}
	emitter := NewEmitter(store)

	explicit := time.Date(2026, 1, 15, 8, 30, 0, 0, time.UTC)
	evt := storage.TelemetryEvent{Name: "conversation.started", Timestamp: explicit, Severity: string(SeverityWarn)}
	if err := emitter.Emit(context.Background(), evt); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if !store.last.Timestamp.Equal(explicit) {
		t.Fatalf("expected explicit timestamp preserved, got %v", store.last.Timestamp)
	}
	if store.last.Severity != string(SeverityWarn) {
		t.Fatalf("expected explicit severity preserved, got %q", store.last.Severity)
	}
}

func TestEmitHelpers(t *testing.T) {
	store := &fakeTelemetryStore{}
	emitter := NewEmitter(store)

	if err := emitter.EmitInfo(context.Background(), "conversation.started", "conv-1"); err != nil {
		t.Fatalf("emit info: %v", err)
	}
	if store.last.Severity != string(SeverityInfo) || store.last.Detail != "conv-1" {
		t.Fatalf("unexpected event %+v", store.last)
	}

	if err := emitter.EmitError(context.Background(), "conversation.failed", "conv-1"); err != nil {
		t.Fatalf("emit error: %v", err)
	}
	if store.last.Severity != string(SeverityError) {
		t.Fatalf("expected error severity, got %q", store.last.Severity)
	}
}
