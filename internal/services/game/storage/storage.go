// Package storage defines the persistence contracts for the game host:
// the dispatch journal, conversation transcripts, and operational telemetry.
package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("not found")

// DispatchRecord captures one event delivery outcome from the host bus.
type DispatchRecord struct {
	// ID is the storage-assigned identifier of the record.
	ID string
	// EventName identifies the dispatched event kind.
	EventName string
	// EntityID is the subject entity of the event.
	EntityID string
	// Cause describes what triggered the event, when the event carries one.
	Cause string
	// Cancelled records whether a handler vetoed the event.
	Cancelled bool
	// OccurredAt is when the dispatch completed.
	OccurredAt time.Time
}

// DispatchJournal persists event delivery outcomes.
type DispatchJournal interface {
	AppendDispatchRecord(ctx context.Context, record DispatchRecord) error
	// ListDispatchRecords returns records for one event name, newest first,
	// up to limit. A non-positive limit returns all records.
	ListDispatchRecords(ctx context.Context, eventName string, limit int) ([]DispatchRecord, error)
}

// TranscriptLine records one line of a conversation exchange.
type TranscriptLine struct {
	// ConversationID groups lines into one session.
	ConversationID string
	// Seq orders lines within the conversation (starts at 1).
	// Assigned by storage on append.
	Seq uint64
	// Outbound is true for host output, false for participant input.
	Outbound bool
	// Text is the line content as delivered.
	Text string
	// RecordedAt is when the line was persisted.
	RecordedAt time.Time
}

// TranscriptStore persists conversation transcripts.
type TranscriptStore interface {
	AppendTranscriptLine(ctx context.Context, line TranscriptLine) error
	ListTranscript(ctx context.Context, conversationID string) ([]TranscriptLine, error)
}

// TelemetryEvent records one operational occurrence.
type TelemetryEvent struct {
	Timestamp time.Time
	Severity  string
	Name      string
	Detail    string
}

// TelemetryStore persists operational telemetry events.
type TelemetryStore interface {
	AppendTelemetryEvent(ctx context.Context, evt TelemetryEvent) error
}
