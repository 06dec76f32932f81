package scoring

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCriteria_RejectsMissingWeight(t *testing.T) {
	_, err := ParseCriteria([]byte(`{"form": {"sub_criteria": {"posture": 1.0}}}`))
	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *StructuralError, got %v", err)
	}
	if serr.Criterion != "form" || !strings.Contains(serr.Reason, "weight") {
		t.Fatalf("unexpected error detail: %+v", serr)
	}
}

func TestParseCriteria_RejectsNonNumericWeight(t *testing.T) {
	_, err := ParseCriteria([]byte(`{"form": {"weight": "heavy", "sub_criteria": {}}}`))
	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *StructuralError, got %v", err)
	}
}

func TestParseCriteria_RejectsMalformedDocument(t *testing.T) {
	for _, raw := range []string{`[1,2,3]`, `"criteria"`, `{"form": 3}`, `not json`} {
		if _, err := ParseCriteria([]byte(raw)); err == nil {
			t.Fatalf("expected error for %s", raw)
		}
	}
}

func TestParseCriteria_ValidDocument(t *testing.T) {
	c, err := ParseCriteria([]byte(`{"form": {"weight": 0.6, "sub_criteria": {"posture": 0.5, "balance": 0.5}}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cw, ok := c["form"]
	if !ok {
		t.Fatalf("missing form criterion")
	}
	if cw.Weight != 0.6 || cw.SubCriteria["posture"] != 0.5 {
		t.Fatalf("bad parse: %+v", cw)
	}
}
