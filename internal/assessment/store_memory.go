package assessment

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/faraday-ai/faraday/internal/curriculum"
	"github.com/faraday-ai/faraday/internal/eventlog"
	"github.com/faraday-ai/faraday/internal/scoring"
)

type memoryStore struct {
	mu          sync.RWMutex
	assessments map[string]Assessment
	activities  curriculum.Store
	events      eventlog.Sink
}

// NewInMemoryStore backs tests and single-process dev runs. Criteria come
// from the supplied curriculum store at submit time.
func NewInMemoryStore(activities curriculum.Store, events eventlog.Sink) Store {
	return &memoryStore{
		assessments: map[string]Assessment{},
		activities:  activities,
		events:      events,
	}
}

func (m *memoryStore) NewAssessment(ctx context.Context, activityID, studentID string) (Assessment, error) {
	if _, err := m.activities.GetActivity(ctx, activityID); err != nil {
		return Assessment{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	a := Assessment{
		ID:           uuid.NewString(),
		ActivityID:   activityID,
		StudentID:    studentID,
		Status:       StatusInProgress,
		Observations: scoring.AssessmentData{},
		CreatedAt:    time.Now().Unix(),
	}
	m.assessments[a.ID] = a
	return a, nil
}

func (m *memoryStore) SaveObservations(_ context.Context, id string, obs scoring.AssessmentData) (Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assessments[id]
	if !ok {
		return Assessment{}, errors.New("assessment not found")
	}
	if a.Status == StatusSubmitted {
		return Assessment{}, errors.New("assessment already submitted")
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
	m.assessments[id] = a
	return a, nil
}

func (m *memoryStore) Submit(ctx context.Context, id string) (Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.assessments[id]
	if !ok {
		return Assessment{}, errors.New("assessment not found")
	}
	if a.Status == StatusSubmitted {
		return a, nil
	}
	act, err := m.activities.GetActivity(ctx, a.ActivityID)
	if err != nil {
		return Assessment{}, err
	}

	a.Score = scoreOrNeutral(ctx, m.events, a.ID, a.Observations, act.Criteria)
	a.Status = StatusSubmitted
	now := time.Now().Unix()
	a.SubmittedAt = &now
	m.assessments[id] = a

	if m.events != nil {
		_ = m.events.Append(ctx, eventlog.TypeAssessmentSubmitted, a.ID, map[string]interface{}{
			"activity_id": a.ActivityID,
			"student_id":  a.StudentID,
			"score":       a.Score,
		})
	}
	return a, nil
}

func (m *memoryStore) GetAssessment(_ context.Context, id string) (Assessment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.assessments[id]
	if !ok {
		return Assessment{}, errors.New("assessment not found")
	}
	return a, nil
}

func (m *memoryStore) ListAssessments(_ context.Context, opts ListOpts) ([]Assessment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Assessment{}
	for _, a := range m.assessments {
		if opts.ActivityID != "" && a.ActivityID != opts.ActivityID {
			continue
		}
		if opts.StudentID != "" && a.StudentID != opts.StudentID {
			continue
		}
		if opts.Status != "" && a.Status != opts.Status {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}
