package assessment

import "github.com/faraday-ai/faraday/internal/scoring"

const (
	StatusInProgress = "in_progress"
	StatusSubmitted  = "submitted"
)

// Assessment tracks one student's scored observation of one activity.
// Observations accumulate while in_progress; Submit freezes them and computes
// the score against the activity's criteria document.
type Assessment struct {
	ID           string                 `json:"id"`
	ActivityID   string                 `json:"activity_id"`
	StudentID    string                 `json:"student_id"`
	Status       string                 `json:"status"` // in_progress|submitted
	Score        float64                `json:"score"`  // in [0,1] once submitted
	Observations scoring.AssessmentData `json:"observations"`

	CreatedAt   int64  `json:"created_at,omitempty"`
	SubmittedAt *int64 `json:"submitted_at,omitempty"`
}
