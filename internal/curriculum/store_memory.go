package curriculum

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
)

type memoryStore struct {
	mu         sync.RWMutex
	activities map[string]Activity
}

// NewInMemoryStore is for tests and single-process dev runs.
func NewInMemoryStore() Store {
	return &memoryStore{activities: map[string]Activity{}}
}

func (m *memoryStore) PutActivity(_ context.Context, a Activity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.CreatedAt == 0 {
		a.CreatedAt = time.Now().Unix()
	}
	m.activities[a.ID] = a
	return nil
}

func (m *memoryStore) GetActivity(_ context.Context, id string) (Activity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.activities[id]
	if !ok {
		return Activity{}, errors.New("activity not found")
	}
	return a, nil
}

func (m *memoryStore) ListActivities(_ context.Context, opts ListOpts) ([]ActivitySummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []ActivitySummary{}
	for _, a := range m.activities {
		if opts.Q != "" && !strings.Contains(strings.ToLower(a.Title), strings.ToLower(opts.Q)) {
			continue
		}
		if opts.Subject != "" && a.Subject != opts.Subject {
			continue
		}
		if opts.GradeLevel != "" && a.GradeLevel != opts.GradeLevel {
			continue
		}
		out = append(out, ActivitySummary{
			ID: a.ID, Title: a.Title, Subject: a.Subject,
			GradeLevel: a.GradeLevel, CreatedAt: a.CreatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (m *memoryStore) DeleteActivity(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.activities[id]; !ok {
		return errors.New("activity not found")
	}
	delete(m.activities, id)
	return nil
}
