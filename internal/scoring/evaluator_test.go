package scoring

import (
	"errors"
	"math"
	"testing"
)

func demoCriteria() Criteria {
	return Criteria{
		"form": {
			Weight:      0.6,
			SubCriteria: map[string]float64{"posture": 0.5, "balance": 0.5},
		},
		"execution": {
			Weight:      0.4,
			SubCriteria: map[string]float64{"speed": 1.0},
		},
	}
}

func TestEvaluate_WeightedCombination(t *testing.T) {
	data := AssessmentData{
		"form":      {"posture": 0.8, "balance": 1.0},
		"execution": {"speed": 0.5},
	}
	// form = 0.8*0.5 + 1.0*0.5 = 0.9; execution = 0.5
	// overall = 0.9*0.6 + 0.5*0.4 = 0.74
	got := Evaluate(data, demoCriteria())
	if math.Abs(got-0.74) > 1e-9 {
		t.Fatalf("expected 0.74, got %v", got)
	}
}

func TestEvaluate_NoData(t *testing.T) {
	if got := Evaluate(AssessmentData{}, demoCriteria()); got != 0.0 {
		t.Fatalf("empty data should score 0.0, got %v", got)
	}
}

func TestEvaluate_NoCriteria(t *testing.T) {
	data := AssessmentData{"form": {"posture": 1.0}}
	if got := Evaluate(data, Criteria{}); got != 0.0 {
		t.Fatalf("empty criteria should score 0.0, got %v", got)
	}
}

func TestEvaluate_OmissionEqualsZero(t *testing.T) {
	criteria := Criteria{
		"A": {Weight: 1.0, SubCriteria: map[string]float64{"x": 1.0}},
	}
	missingCriterion := Evaluate(AssessmentData{}, criteria)
	missingSub := Evaluate(AssessmentData{"A": {}}, criteria)
	explicitZero := Evaluate(AssessmentData{"A": {"x": 0.0}}, criteria)
	if missingCriterion != 0.0 || missingSub != 0.0 || explicitZero != 0.0 {
		t.Fatalf("omission and explicit zero must all score 0.0; got %v %v %v",
			missingCriterion, missingSub, explicitZero)
	}
}

func TestEvaluate_UnknownSubCriterionIgnored(t *testing.T) {
	data := AssessmentData{
		"form": {"posture": 0.8, "balance": 1.0, "flair": 5.0}, // flair not configured
	}
	got := Evaluate(data, demoCriteria())
	want := (0.8*0.5 + 1.0*0.5) * 0.6
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("unconfigured observation must not contribute; got %v want %v", got, want)
	}
}

func TestEvaluate_ClampAboveOne(t *testing.T) {
	criteria := Criteria{
		"A": {Weight: 2.0, SubCriteria: map[string]float64{"x": 1.0}},
	}
	if got := Evaluate(AssessmentData{"A": {"x": 1.0}}, criteria); got != 1.0 {
		t.Fatalf("raw sum 2.0 must clamp to exactly 1.0, got %v", got)
	}
}

func TestEvaluate_ClampBelowZero(t *testing.T) {
	criteria := Criteria{
		"A": {Weight: 1.0, SubCriteria: map[string]float64{"x": 1.0}},
	}
	if got := Evaluate(AssessmentData{"A": {"x": -0.5}}, criteria); got != 0.0 {
		t.Fatalf("negative raw sum must clamp to exactly 0.0, got %v", got)
	}
}

func TestEvaluate_BoundsAlwaysHold(t *testing.T) {
	cases := []struct {
		data     AssessmentData
		criteria Criteria
	}{
		{AssessmentData{"A": {"x": 100}}, Criteria{"A": {Weight: 100, SubCriteria: map[string]float64{"x": 100}}}},
		{AssessmentData{"A": {"x": -100}}, Criteria{"A": {Weight: 100, SubCriteria: map[string]float64{"x": 100}}}},
		{AssessmentData{}, Criteria{}},
		{AssessmentData{"A": {"x": 0.3}}, Criteria{"A": {Weight: -1, SubCriteria: map[string]float64{"x": 1}}}},
	}
	for i, c := range cases {
		got := Evaluate(c.data, c.criteria)
		if got < 0.0 || got > 1.0 {
			t.Fatalf("case %d: score %v outside [0,1]", i, got)
		}
	}
}

func TestEvaluateRaw_StructuralFailureFallsBack(t *testing.T) {
	// "balance" criterion is missing sub_criteria entirely.
	raw := []byte(`{"balance": {"weight": 1.0}}`)
	got, err := EvaluateRaw(AssessmentData{"balance": {"stance": 1.0}}, raw)
	if err == nil {
		t.Fatalf("expected structural error")
	}
	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *StructuralError, got %T", err)
	}
	if got != NeutralScore {
		t.Fatalf("structural failure must yield the neutral score, got %v", got)
	}
}

func TestEvaluateRaw_ValidDocument(t *testing.T) {
	raw := []byte(`{
		"form":      {"weight": 0.6, "sub_criteria": {"posture": 0.5, "balance": 0.5}},
		"execution": {"weight": 0.4, "sub_criteria": {"speed": 1.0}}
	}`)
	data := AssessmentData{
		"form":      {"posture": 0.8, "balance": 1.0},
		"execution": {"speed": 0.5},
	}
	got, err := EvaluateRaw(data, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-0.74) > 1e-9 {
		t.Fatalf("expected 0.74, got %v", got)
	}
}
