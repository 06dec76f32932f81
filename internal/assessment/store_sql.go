package assessment

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/faraday-ai/faraday/internal/eventlog"
	"github.com/faraday-ai/faraday/internal/scoring"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
	events eventlog.Sink
}

func NewSQLStore(db *sql.DB, driver string, events eventlog.Sink) *SQLStore {
	return &SQLStore{db: db, driver: driver, events: events}
}

func (s *SQLStore) NewAssessment(ctx context.Context, activityID, studentID string) (Assessment, error) {
	var exist int
	if err := s.db.QueryRowContext(ctx, `SELECT 1 FROM activities WHERE id=$1`, activityID).Scan(&exist); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, errors.New("activity not found")
		}
		return Assessment{}, err
	}
	a := Assessment{
		ID:           uuid.NewString(),
		ActivityID:   activityID,
		StudentID:    studentID,
		Status:       StatusInProgress,
		Observations: scoring.AssessmentData{},
		CreatedAt:    time.Now().Unix(),
	}
	obsJSON, _ := json.Marshal(a.Observations)
	_, err := s.db.ExecContext(ctx, `INSERT INTO assessments (id,activity_id,student_id,status,score,observations_json,created_at)
		VALUES ($1,$2,$3,'in_progress',0,$4,$5)`,
		a.ID, a.ActivityID, a.StudentID, string(obsJSON), a.CreatedAt)
	if err != nil {
		return Assessment{}, err
	}
	return a, nil
}

func (s *SQLStore) SaveObservations(ctx context.Context, id string, obs scoring.AssessmentData) (Assessment, error) {
	a, err := s.GetAssessment(ctx, id)
	if err != nil {
		return Assessment{}, err
	}
	if a.Status == StatusSubmitted {
		return Assessment{}, errors.New("assessment already submitted")
	}
	if a.Observations == nil {
		a.Observations = scoring.AssessmentData{}
	}
	for criterion, subs := range obs {
		cur, ok := a.Observations[criterion]
		if !ok {
			cur = map[string]float64{}
			a.Observations[criterion] = cur
		}
		for sub, v := range subs {
			cur[sub] = v
		}
	}
	buf, _ := json.Marshal(a.Observations)
	if _, err := s.db.ExecContext(ctx, `UPDATE assessments SET observations_json=$1 WHERE id=$2`, string(buf), id); err != nil {
		return Assessment{}, err
	}
	return s.GetAssessment(ctx, id)
}

func (s *SQLStore) Submit(ctx context.Context, id string) (Assessment, error) {
	a, err := s.GetAssessment(ctx, id)
	if err != nil {
		return Assessment{}, err
	}
	if a.Status == StatusSubmitted {
		return a, nil
	}

	var cjson string
	if err := s.db.QueryRowContext(ctx, `SELECT criteria_json FROM activities WHERE id=$1`, a.ActivityID).Scan(&cjson); err != nil {
		return Assessment{}, err
	}

	a.Score = scoreOrNeutral(ctx, s.events, a.ID, a.Observations, []byte(cjson))
	a.Status = StatusSubmitted
	now := time.Now().Unix()
	a.SubmittedAt = &now

	if _, err := s.db.ExecContext(ctx,
		`UPDATE assessments SET status='submitted', score=$1, submitted_at=$2 WHERE id=$3`,
		a.Score, now, id); err != nil {
		return Assessment{}, err
	}
	if s.events != nil {
		_ = s.events.Append(ctx, eventlog.TypeAssessmentSubmitted, a.ID, map[string]interface{}{
			"activity_id": a.ActivityID,
			"student_id":  a.StudentID,
			"score":       a.Score,
		})
	}
	return s.GetAssessment(ctx, id)
}

func (s *SQLStore) GetAssessment(ctx context.Context, id string) (Assessment, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,activity_id,student_id,status,score,observations_json,created_at,submitted_at FROM assessments WHERE id=$1`, id)
	return scanAssessment(row)
}

func (s *SQLStore) ListAssessments(ctx context.Context, opts ListOpts) ([]Assessment, error) {
	q := `SELECT id,activity_id,student_id,status,score,observations_json,created_at,submitted_at FROM assessments WHERE 1=1`
	args := []interface{}{}
	n := 0
	add := func(clause string, v interface{}) {
		n++
		q += clause + fmt.Sprintf("$%d", n)
		args = append(args, v)
	}
	if opts.ActivityID != "" {
		add(` AND activity_id=`, opts.ActivityID)
	}
	if opts.StudentID != "" {
		add(` AND student_id=`, opts.StudentID)
	}
	if opts.Status != "" {
		add(` AND status=`, opts.Status)
	}
	q += ` ORDER BY created_at DESC`
	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	add(` LIMIT `, limit)
	if opts.Offset > 0 {
		add(` OFFSET `, opts.Offset)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Assessment{}
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAssessment(row rowScanner) (Assessment, error) {
	var a Assessment
	var ojson string
	var submitted sql.NullInt64
	if err := row.Scan(&a.ID, &a.ActivityID, &a.StudentID, &a.Status, &a.Score, &ojson, &a.CreatedAt, &submitted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, errors.New("assessment not found")
		}
		return Assessment{}, err
	}
	if err := json.Unmarshal([]byte(ojson), &a.Observations); err != nil {
		a.Observations = scoring.AssessmentData{}
	}
	if submitted.Valid {
		a.SubmittedAt = &submitted.Int64
	}
	return a, nil
}
