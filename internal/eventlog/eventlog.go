// Package eventlog is the append-only diagnostic channel. Scoring failures
// degrade to a neutral score at the API surface, so this log is the only
// place that records why a 0.0 happened.
package eventlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"sync"
	"time"
)

const (
	TypeAssessmentSubmitted = "AssessmentSubmitted"
	TypeScoringFailed       = "ScoringFailed"
)

type Event struct {
	Offset    int64
	SiteID    string
	Type      string
	Key       string // natural key: assessment ID
	DataJSON  string
	CreatedAt int64
}

type Sink interface {
	Append(ctx context.Context, typ, key string, data interface{}) error
}

type SQLSink struct {
	db     *sql.DB
	siteID string
}

func NewSQLSink(db *sql.DB, siteID string) *SQLSink {
	if siteID == "" {
		siteID = "local"
	}
	return &SQLSink{db: db, siteID: siteID}
}

func (s *SQLSink) Append(ctx context.Context, typ, key string, data interface{}) error {
	buf, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		s.siteID, typ, key, string(buf), time.Now().Unix())
	return err
}

// MemorySink collects events in process; used by tests and the in-memory
// store wiring.
type MemorySink struct {
	mu     sync.Mutex
	events []Event
}

func NewMemorySink() *MemorySink { return &MemorySink{} }

func (s *MemorySink) Append(_ context.Context, typ, key string, data interface{}) error {
	buf, err := json.Marshal(data)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, Event{
		Offset:    int64(len(s.events) + 1),
		SiteID:    "local",
		Type:      typ,
		Key:       key,
		DataJSON:  string(buf),
		CreatedAt: time.Now().Unix(),
	})
	return nil
}

func (s *MemorySink) Events() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}
