package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	stripe "github.com/stripe/stripe-go/v76"
)

// ErrNotRecorded is returned by Get for an event id the journal has never seen.
var ErrNotRecorded = errors.New("webhook event not recorded")

const schema = `
CREATE TABLE IF NOT EXISTS stripe_webhook_event (
    event_id    TEXT PRIMARY KEY,
    event_type  TEXT NOT NULL,
    livemode    BOOLEAN NOT NULL DEFAULT FALSE,
    api_version TEXT NOT NULL DEFAULT '',
    created_at  TIMESTAMPTZ NOT NULL,
    received_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Entry is one recorded webhook delivery. Only event metadata is kept.
type Entry struct {
	EventID    string
	Type       string
	Livemode   bool
	APIVersion string
	CreatedAt  time.Time
	ReceivedAt time.Time
}

// EventJournal records webhook event ids in Postgres for duplicate detection.
type EventJournal struct {
	db  *sql.DB
	now func() time.Time
}

func NewEventJournal(db *sql.DB) *EventJournal {
	return &EventJournal{db: db, now: time.Now}
}

// EnsureSchema creates the journal table when missing.
func (j *EventJournal) EnsureSchema(ctx context.Context) error {
	if _, err := j.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating stripe_webhook_event: %w", err)
	}
	return nil
}

// Record inserts the event and reports whether it was new.
func (j *EventJournal) Record(ctx context.Context, event stripe.Event) (bool, error) {
	if event.ID == "" {
		return false, errors.New("event id is required")
	}
	created := time.Unix(event.Created, 0).UTC()
	res, err := j.db.ExecContext(ctx,
		`INSERT INTO stripe_webhook_event (event_id, event_type, livemode, api_version, created_at, received_at)
         VALUES ($1, $2, $3, $4, $5, $6)
         ON CONFLICT (event_id) DO NOTHING`,
		event.ID, string(event.Type), event.Livemode, event.APIVersion, created, j.now().UTC())
	if err != nil {
		return false, fmt.Errorf("inserting event %s: %w", event.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("inserting event %s: %w", event.ID, err)
	}
	return n == 1, nil
}

// Get returns the recorded entry for eventID.
func (j *EventJournal) Get(ctx context.Context, eventID string) (Entry, error) {
	var e Entry
	err := j.db.QueryRowContext(ctx,
		`SELECT event_id, event_type, livemode, api_version, created_at, received_at
         FROM stripe_webhook_event WHERE event_id = $1`, eventID).
		Scan(&e.EventID, &e.Type, &e.Livemode, &e.APIVersion, &e.CreatedAt, &e.ReceivedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotRecorded, eventID)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("reading event %s: %w", eventID, err)
	}
	return e, nil
}
