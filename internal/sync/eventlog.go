package syncx

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	TypeQuizCreated   = "quiz.created"
	TypeQuizCompleted = "quiz.completed"
)

type Event struct {
	Offset    int64  `db:"id"`
	SiteID    string `db:"site_id"`
	Type      string `db:"typ"`
	Key       string `db:"key"`
	DataJSON  string `db:"data"`
	CreatedAt int64  `db:"created_at"`
}

// NewEvent marshals data into an Event for key.
func NewEvent(typ, key string, data any) (Event, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return Event{}, err
	}
	return Event{SiteID: "local", Type: typ, Key: key, DataJSON: string(b)}, nil
}

type Appender interface {
	Append(ctx context.Context, e Event) error
}

type EventRepo struct{ db *sqlx.DB }

func NewEventRepo(db *sqlx.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	if e.SiteID == "" {
		e.SiteID = "local"
	}
	_, err := r.db.ExecContext(ctx, r.db.Rebind(
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES (?,?,?,?,?)`),
		e.SiteID, e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}

// List returns the events recorded for key, oldest first.
func (r *EventRepo) List(ctx context.Context, key string) ([]Event, error) {
	var out []Event
	err := r.db.SelectContext(ctx, &out, r.db.Rebind(
		`SELECT id, site_id, typ, key, data, created_at
		 FROM event_log WHERE key = ? ORDER BY id`), key)
	return out, err
}

// Discard drops every event.
type Discard struct{}

func (Discard) Append(context.Context, Event) error { return nil }
