package assessment

import (
	"context"
	"log"

	"github.com/faraday-ai/faraday/internal/eventlog"
	"github.com/faraday-ai/faraday/internal/scoring"
)

// scoreOrNeutral evaluates observations against the activity's criteria
// document. A structural error in the document must never abort the submit:
// it degrades to the neutral score and leaves a diagnostic event, which is
// the only way to tell a failed scoring apart from an all-zero performance.
func scoreOrNeutral(ctx context.Context, events eventlog.Sink, id string, obs scoring.AssessmentData, criteriaRaw []byte) float64 {
	score, err := scoring.EvaluateRaw(obs, criteriaRaw)
	if err != nil {
		log.Printf("scoring failed for assessment %s: %v", id, err)
		if events != nil {
			_ = events.Append(ctx, eventlog.TypeScoringFailed, id, map[string]string{"error": err.Error()})
		}
		return scoring.NeutralScore
	}
	return score
}
