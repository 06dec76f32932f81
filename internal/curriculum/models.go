package curriculum

import "encoding/json"

// Activity is a unit of PE curriculum (a lesson or skill drill) together with
// the criteria document its assessments are scored against.
type Activity struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Subject    string          `json:"subject"`     // e.g. "gymnastics", "track"
	GradeLevel string          `json:"grade_level"` // e.g. "K-2", "6-8"
	Criteria   json.RawMessage `json:"criteria"`    // scoring criteria document

	CreatedAt int64 `json:"created_at,omitempty"`
}

// ActivitySummary is the listing view: no criteria payload.
type ActivitySummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Subject    string `json:"subject"`
	GradeLevel string `json:"grade_level"`
	CreatedAt  int64  `json:"created_at"`
}
