package http

import (
	"encoding/json"
	"net/http"

	"github.com/faraday-ai/faraday/internal/ai"
	"github.com/faraday-ai/faraday/internal/rbac"
)

func ChatHandler(svc ai.ChatService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ai.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		req.UserID = rbac.SubjectFromContext(r.Context())
		resp, err := svc.Chat(r.Context(), req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func TranslateHandler(svc ai.Translator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ai.TranslateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		resp, err := svc.Translate(r.Context(), req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
