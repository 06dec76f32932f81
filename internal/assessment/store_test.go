package assessment_test

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/faraday-ai/faraday/internal/assessment"
	"github.com/faraday-ai/faraday/internal/curriculum"
	"github.com/faraday-ai/faraday/internal/eventlog"
	"github.com/faraday-ai/faraday/internal/scoring"
)

func seedStore(t *testing.T, criteria string) (assessment.Store, *eventlog.MemorySink) {
	t.Helper()
	acts := curriculum.NewInMemoryStore()
	err := acts.PutActivity(context.Background(), curriculum.Activity{
		ID:         "act-1",
		Title:      "Forward Roll",
		Subject:    "gymnastics",
		GradeLevel: "3-5",
		Criteria:   json.RawMessage(criteria),
	})
	if err != nil {
		t.Fatalf("seed activity: %v", err)
	}
	events := eventlog.NewMemorySink()
	return assessment.NewInMemoryStore(acts, events), events
}

const validCriteria = `{
	"form":      {"weight": 0.6, "sub_criteria": {"posture": 0.5, "balance": 0.5}},
	"execution": {"weight": 0.4, "sub_criteria": {"speed": 1.0}}
}`

func TestSubmit_ScoresAgainstActivityCriteria(t *testing.T) {
	store, events := seedStore(t, validCriteria)
	ctx := context.Background()

	a, err := store.NewAssessment(ctx, "act-1", "student-1")
	if err != nil {
		t.Fatalf("new assessment: %v", err)
	}
	_, err = store.SaveObservations(ctx, a.ID, scoring.AssessmentData{
		"form":      {"posture": 0.8, "balance": 1.0},
		"execution": {"speed": 0.5},
	})
	if err != nil {
		t.Fatalf("save observations: %v", err)
	}
	a, err = store.Submit(ctx, a.ID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if a.Status != assessment.StatusSubmitted {
		t.Fatalf("expected submitted, got %q", a.Status)
	}
	if math.Abs(a.Score-0.74) > 1e-9 {
		t.Fatalf("expected score 0.74, got %v", a.Score)
	}
	if a.SubmittedAt == nil {
		t.Fatalf("expected submitted_at set")
	}

	evs := events.Events()
	if len(evs) != 1 || evs[0].Type != eventlog.TypeAssessmentSubmitted {
		t.Fatalf("expected one AssessmentSubmitted event, got %+v", evs)
	}
}

func TestSubmit_MalformedCriteriaDegradesToNeutral(t *testing.T) {
	// criteria document missing sub_criteria: structural failure
	store, events := seedStore(t, `{"form": {"weight": 0.6}}`)
	ctx := context.Background()

	a, _ := store.NewAssessment(ctx, "act-1", "student-1")
	_, _ = store.SaveObservations(ctx, a.ID, scoring.AssessmentData{"form": {"posture": 1.0}})

	a, err := store.Submit(ctx, a.ID)
	if err != nil {
		t.Fatalf("submit must not fail on bad criteria: %v", err)
	}
	if a.Score != scoring.NeutralScore {
		t.Fatalf("expected neutral score, got %v", a.Score)
	}
	if a.Status != assessment.StatusSubmitted {
		t.Fatalf("expected submitted, got %q", a.Status)
	}

	var sawDiagnostic bool
	for _, e := range events.Events() {
		if e.Type == eventlog.TypeScoringFailed && e.Key == a.ID {
			sawDiagnostic = true
		}
	}
	if !sawDiagnostic {
		t.Fatalf("expected a ScoringFailed diagnostic event")
	}
}

func TestSaveObservations_MergesAndRejectsAfterSubmit(t *testing.T) {
	store, _ := seedStore(t, validCriteria)
	ctx := context.Background()

	a, _ := store.NewAssessment(ctx, "act-1", "student-1")
	if _, err := store.SaveObservations(ctx, a.ID, scoring.AssessmentData{"form": {"posture": 0.4}}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	// second save overrides posture and adds balance
	got, err := store.SaveObservations(ctx, a.ID, scoring.AssessmentData{"form": {"posture": 0.8, "balance": 1.0}})
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if got.Observations["form"]["posture"] != 0.8 || got.Observations["form"]["balance"] != 1.0 {
		t.Fatalf("merge failed: %+v", got.Observations)
	}

	if _, err := store.Submit(ctx, a.ID); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := store.SaveObservations(ctx, a.ID, scoring.AssessmentData{"form": {"posture": 1.0}}); err == nil {
		t.Fatalf("expected error saving after submit")
	}
}

func TestSubmit_Idempotent(t *testing.T) {
	store, events := seedStore(t, validCriteria)
	ctx := context.Background()

	a, _ := store.NewAssessment(ctx, "act-1", "student-1")
	first, err := store.Submit(ctx, a.ID)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	second, err := store.Submit(ctx, a.ID)
	if err != nil {
		t.Fatalf("re-submit: %v", err)
	}
	if first.Score != second.Score || second.Status != assessment.StatusSubmitted {
		t.Fatalf("re-submit changed state: %+v vs %+v", first, second)
	}
	if n := len(events.Events()); n != 1 {
		t.Fatalf("expected a single submitted event, got %d", n)
	}
}

func TestListAssessments_Filters(t *testing.T) {
	store, _ := seedStore(t, validCriteria)
	ctx := context.Background()

	a1, _ := store.NewAssessment(ctx, "act-1", "student-1")
	_, _ = store.NewAssessment(ctx, "act-1", "student-2")
	_, _ = store.Submit(ctx, a1.ID)

	byStudent, err := store.ListAssessments(ctx, assessment.ListOpts{StudentID: "student-1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(byStudent) != 1 || byStudent[0].StudentID != "student-1" {
		t.Fatalf("student filter failed: %+v", byStudent)
	}

	submitted, err := store.ListAssessments(ctx, assessment.ListOpts{Status: assessment.StatusSubmitted})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(submitted) != 1 || submitted[0].ID != a1.ID {
		t.Fatalf("status filter failed: %+v", submitted)
	}
}
