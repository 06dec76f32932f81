package scoring

import (
	"encoding/json"
	"fmt"
)

// CriterionWeight describes how much one assessment dimension contributes to
// the overall score and how its sub-criteria are weighted relative to each
// other. Weights are authored to sum to 1.0 among siblings but the evaluator
// does not normalize; out-of-range sums are clamped at the end.
type CriterionWeight struct {
	Weight      float64            `json:"weight"`
	SubCriteria map[string]float64 `json:"sub_criteria"`
}

// Criteria maps criterion name (e.g. "form") to its weighting. Supplied per
// evaluation call; the evaluator never owns or caches it.
type Criteria map[string]CriterionWeight

// AssessmentData maps criterion name to sub-criterion name to the observed
// value, nominally in [0,1]. Missing entries mean "not observed" and
// contribute zero.
type AssessmentData map[string]map[string]float64

// StructuralError reports a malformed criteria document: a criterion missing
// its weight or sub_criteria fields, a non-numeric weight, or the wrong JSON
// shape altogether.
type StructuralError struct {
	Criterion string // empty when the document as a whole is malformed
	Reason    string
}

func (e *StructuralError) Error() string {
	if e.Criterion == "" {
		return "criteria: " + e.Reason
	}
	return fmt.Sprintf("criteria %q: %s", e.Criterion, e.Reason)
}

// ParseCriteria validates a raw criteria document (as authored by teachers
// and stored alongside an activity) into a typed Criteria value. Any shape
// problem yields a *StructuralError rather than a partial result.
func ParseCriteria(raw []byte) (Criteria, error) {
	var doc map[string]map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &StructuralError{Reason: "not a JSON object of criteria: " + err.Error()}
	}
	out := make(Criteria, len(doc))
	for name, fields := range doc {
		wraw, ok := fields["weight"]
		if !ok {
			return nil, &StructuralError{Criterion: name, Reason: "missing weight"}
		}
		var w float64
		if err := json.Unmarshal(wraw, &w); err != nil {
			return nil, &StructuralError{Criterion: name, Reason: "weight is not numeric"}
		}
		sraw, ok := fields["sub_criteria"]
		if !ok {
			return nil, &StructuralError{Criterion: name, Reason: "missing sub_criteria"}
		}
		var subs map[string]float64
		if err := json.Unmarshal(sraw, &subs); err != nil {
			return nil, &StructuralError{Criterion: name, Reason: "sub_criteria is not a name->weight object"}
		}
		out[name] = CriterionWeight{Weight: w, SubCriteria: subs}
	}
	return out, nil
}
