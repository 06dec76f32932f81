package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/faraday-ai/faraday/internal/curriculum"
	"github.com/faraday-ai/faraday/internal/scoring"
)

func UploadActivityHandler(store curriculum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var a curriculum.Activity
		if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if a.ID == "" || a.Title == "" {
			http.Error(w, "id and title required", http.StatusBadRequest)
			return
		}
		// Reject malformed criteria at the authoring boundary so scoring never
		// sees a structurally broken document from our own store.
		if len(a.Criteria) == 0 {
			http.Error(w, "criteria required", http.StatusBadRequest)
			return
		}
		if _, err := scoring.ParseCriteria(a.Criteria); err != nil {
			http.Error(w, "invalid criteria: "+err.Error(), http.StatusBadRequest)
			return
		}
		if err := store.PutActivity(r.Context(), a); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok", "id": a.ID})
	}
}

func GetActivityHandler(store curriculum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "activityID")
		a, err := store.GetActivity(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(a)
	}
}

func ListActivitiesHandler(store curriculum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit, _ := strconv.Atoi(q.Get("limit"))
		offset, _ := strconv.Atoi(q.Get("offset"))
		out, err := store.ListActivities(r.Context(), curriculum.ListOpts{
			Q:          q.Get("q"),
			Subject:    q.Get("subject"),
			GradeLevel: q.Get("grade_level"),
			Limit:      limit,
			Offset:     offset,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}

func DeleteActivityHandler(store curriculum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "activityID")
		if err := store.DeleteActivity(r.Context(), id); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
