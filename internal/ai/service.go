// Package ai holds the chat and translation services. Real LLM integration
// is pending; the shipped implementations are deterministic stubs behind the
// same interfaces the gateway will keep once a provider is wired in.
package ai

import "context"

type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
	Topic   string `json:"topic,omitempty"` // e.g. "lesson_planning", "safety"
}

type ChatResponse struct {
	Reply string `json:"reply"`
	Model string `json:"model"`
}

type TranslateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"` // BCP-47-ish: "es", "fr", ...
}

type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
	TargetLang     string `json:"target_lang"`
}

type ChatService interface {
	Chat(ctx context.Context, req ChatRequest) (ChatResponse, error)
}

type Translator interface {
	Translate(ctx context.Context, req TranslateRequest) (TranslateResponse, error)
}

// Prompts carries the per-topic system prompts. Built once at startup and
// passed by value into the service; nothing mutates it afterwards.
type Prompts struct {
	Default string
	ByTopic map[string]string
}

func DefaultPrompts() Prompts {
	return Prompts{
		Default: "You are Faraday, an assistant for physical-education teachers.",
		ByTopic: map[string]string{
			"lesson_planning": "You help PE teachers plan age-appropriate lessons.",
			"safety":          "You advise on safety and injury prevention in PE activities.",
			"assessment":      "You explain skill-assessment criteria and scoring.",
		},
	}
}

func (p Prompts) For(topic string) string {
	if s, ok := p.ByTopic[topic]; ok {
		return s
	}
	return p.Default
}
