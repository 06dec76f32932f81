package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/faraday-ai/faraday/internal/assessment"
	"github.com/faraday-ai/faraday/internal/rbac"
	"github.com/faraday-ai/faraday/internal/scoring"
)

func CreateAssessmentHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ActivityID string `json:"activity_id"`
			StudentID  string `json:"student_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.ActivityID == "" || req.StudentID == "" {
			http.Error(w, "activity_id and student_id required", http.StatusBadRequest)
			return
		}
		a, err := store.NewAssessment(r.Context(), req.ActivityID, req.StudentID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(a)
	}
}

func SaveObservationsHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "assessmentID")
		var obs scoring.AssessmentData
		if err := json.NewDecoder(r.Body).Decode(&obs); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		a, err := store.SaveObservations(r.Context(), id, obs)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(a)
	}
}

func SubmitAssessmentHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "assessmentID")
		a, err := store.Submit(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(a)
	}
}

func GetAssessmentHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "assessmentID")
		a, err := store.GetAssessment(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		// Students only see their own results; teachers/admins see all.
		ident := rbac.IdentityFromContext(r.Context())
		if ident.Role == "student" && a.StudentID != ident.Subject {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		_ = json.NewEncoder(w).Encode(a)
	}
}

func ListAssessmentsHandler(store assessment.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit, _ := strconv.Atoi(q.Get("limit"))
		offset, _ := strconv.Atoi(q.Get("offset"))
		opts := assessment.ListOpts{
			ActivityID: q.Get("activity_id"),
			StudentID:  q.Get("student_id"),
			Status:     q.Get("status"),
			Limit:      limit,
			Offset:     offset,
		}
		// Students are pinned to their own rows regardless of the filter.
		ident := rbac.IdentityFromContext(r.Context())
		if ident.Role == "student" {
			opts.StudentID = ident.Subject
		}
		out, err := store.ListAssessments(r.Context(), opts)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}
