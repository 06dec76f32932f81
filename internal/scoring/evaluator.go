// Package scoring turns weighted skill observations into a single bounded
// score. It is the grading core the assessment store calls on submit.
package scoring

// NeutralScore is what callers substitute when an evaluation cannot complete.
// A scoring failure must never abort a user-facing request; it degrades to
// this defined neutral value and a diagnostic event instead.
const NeutralScore = 0.0

// Evaluate folds per-criterion, per-sub-criterion observations into one score
// in [0,1]. Criteria or sub-criteria absent from data contribute zero; that is
// policy, not an error. Pure function: no state, no I/O, safe from any number
// of goroutines as long as the caller does not mutate criteria mid-call.
func Evaluate(data AssessmentData, criteria Criteria) float64 {
	overall := 0.0
	for name, cw := range criteria {
		observed, ok := data[name]
		if !ok {
			continue
		}
		criterionScore := 0.0
		for sub, subWeight := range cw.SubCriteria {
			v, ok := observed[sub]
			if !ok {
				continue
			}
			criterionScore += v * subWeight
		}
		overall += criterionScore * cw.Weight
	}
	return clamp01(overall)
}

// EvaluateRaw parses a stored criteria document and evaluates against it.
// On a structural error the score result is NeutralScore and the error tells
// the caller why; the caller decides to keep the neutral value and log.
func EvaluateRaw(data AssessmentData, rawCriteria []byte) (float64, error) {
	criteria, err := ParseCriteria(rawCriteria)
	if err != nil {
		return NeutralScore, err
	}
	return Evaluate(data, criteria), nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
