// Package sqlite provides a SQLite-backed game storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/louisbranch/emberfall/internal/platform/id"
	"github.com/louisbranch/emberfall/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/emberfall/internal/services/game/storage"
	"github.com/louisbranch/emberfall/internal/services/game/storage/sqlite/migrations"
)

// Store persists game host state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite game store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// AppendDispatchRecord inserts one event delivery outcome. A missing ID or
// timestamp is assigned on append.
func (s *Store) AppendDispatchRecord(ctx context.Context, record storage.DispatchRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	eventName := strings.TrimSpace(record.EventName)
	if eventName == "" {
		return fmt.Errorf("event name is required")
	}
	recordID := strings.TrimSpace(record.ID)
	if recordID == "" {
		generated, err := id.NewID()
		if err != nil {
			return fmt.Errorf("generate record id: %w", err)
		}
		recordID = generated
	}
	occurredAt := record.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO dispatch_records (
		   id, event_name, entity_id, cause, cancelled, occurred_at
		 ) VALUES (?, ?, ?, ?, ?, ?)`,
		recordID,
		eventName,
		strings.TrimSpace(record.EntityID),
		strings.TrimSpace(record.Cause),
		boolToInt(record.Cancelled),
		toMillis(occurredAt),
	)
	if err != nil {
		return fmt.Errorf("insert dispatch record: %w", err)
	}
	return nil
}

// ListDispatchRecords returns records for one event name, newest first.
func (s *Store) ListDispatchRecords(ctx context.Context, eventName string, limit int) ([]storage.DispatchRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	eventName = strings.TrimSpace(eventName)
	if eventName == "" {
		return nil, fmt.Errorf("event name is required")
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, event_name, entity_id, cause, cancelled, occurred_at
		 FROM dispatch_records
		 WHERE event_name = ?
		 ORDER BY occurred_at DESC, id
		 LIMIT ?`,
		eventName,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query dispatch records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []storage.DispatchRecord
	for rows.Next() {
		var record storage.DispatchRecord
		var cancelled int
		var occurredAt int64
		if err := rows.Scan(&record.ID, &record.EventName, &record.EntityID, &record.Cause, &cancelled, &occurredAt); err != nil {
			return nil, fmt.Errorf("scan dispatch record: %w", err)
		}
		record.Cancelled = cancelled != 0
		record.OccurredAt = fromMillis(occurredAt)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dispatch records: %w", err)
	}
	return records, nil
}

// AppendTranscriptLine inserts one conversation line, assigning the next
// sequence number within the conversation.
func (s *Store) AppendTranscriptLine(ctx context.Context, line storage.TranscriptLine) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	conversationID := strings.TrimSpace(line.ConversationID)
	if conversationID == "" {
		return fmt.Errorf("conversation id is required")
	}
	recordedAt := line.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO transcript_lines (conversation_id, seq, outbound, text, recorded_at)
		 SELECT ?, COALESCE(MAX(seq), 0) + 1, ?, ?, ?
		 FROM transcript_lines WHERE conversation_id = ?`,
		conversationID,
		boolToInt(line.Outbound),
		line.Text,
		toMillis(recordedAt),
		conversationID,
	)
	if err != nil {
		return fmt.Errorf("insert transcript line: %w", err)
	}
	return nil
}

// ListTranscript returns the lines of one conversation in sequence order.
func (s *Store) ListTranscript(ctx context.Context, conversationID string) ([]storage.TranscriptLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	conversationID = strings.TrimSpace(conversationID)
	if conversationID == "" {
		return nil, fmt.Errorf("conversation id is required")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT conversation_id, seq, outbound, text, recorded_at
		 FROM transcript_lines
		 WHERE conversation_id = ?
		 ORDER BY seq`,
		conversationID,
	)
	if err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var lines []storage.TranscriptLine
	for rows.Next() {
		var line storage.TranscriptLine
		var outbound int
		var recordedAt int64
		if err := rows.Scan(&line.ConversationID, &line.Seq, &outbound, &line.Text, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan transcript line: %w", err)
		}
		line.Outbound = outbound != 0
		line.RecordedAt = fromMillis(recordedAt)
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transcript: %w", err)
	}
	if len(lines) == 0 {
		return nil, storage.ErrNotFound
	}
	return lines, nil
}

// AppendTelemetryEvent inserts one operational telemetry event.
func (s *Store) AppendTelemetryEvent(ctx context.Context, evt storage.TelemetryEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name := strings.TrimSpace(evt.Name)
	if name == "" {
		return fmt.Errorf("telemetry event name is required")
	}
	timestamp := evt.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO telemetry_events (timestamp, severity, name, detail)
		 VALUES (?, ?, ?, ?)`,
		toMillis(timestamp),
		strings.TrimSpace(evt.Severity),
		name,
		evt.Detail,
	)
	if err != nil {
		return fmt.Errorf("insert telemetry event: %w", err)
	}
	return nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
