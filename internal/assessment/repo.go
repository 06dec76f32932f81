package assessment

import (
	"context"

	"github.com/faraday-ai/faraday/internal/scoring"
)

type ListOpts struct {
	ActivityID string
	StudentID  string
	Status     string // optional: in_progress|submitted
	Limit      int
	Offset     int
}

type Store interface {
	NewAssessment(ctx context.Context, activityID, studentID string) (Assessment, error)
	SaveObservations(ctx context.Context, id string, obs scoring.AssessmentData) (Assessment, error)
	Submit(ctx context.Context, id string) (Assessment, error)
	GetAssessment(ctx context.Context, id string) (Assessment, error)
	ListAssessments(ctx context.Context, opts ListOpts) ([]Assessment, error)
}
