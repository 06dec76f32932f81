package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const stubModel = "faraday-stub"

// StubChat validates input and returns placeholder text. Replace with a real
// provider client without touching the handlers.
type StubChat struct {
	prompts Prompts
}

func NewStubChat(prompts Prompts) *StubChat { return &StubChat{prompts: prompts} }

func (s *StubChat) Chat(_ context.Context, req ChatRequest) (ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return ChatResponse{}, errors.New("message required")
	}
	_ = s.prompts.For(req.Topic) // selected now so topic routing is exercised pre-integration
	return ChatResponse{
		Reply: fmt.Sprintf("[placeholder] Faraday received your %s question and will answer once LLM integration lands.", topicLabel(req.Topic)),
		Model: stubModel,
	}, nil
}

type StubTranslator struct{}

func NewStubTranslator() *StubTranslator { return &StubTranslator{} }

func (*StubTranslator) Translate(_ context.Context, req TranslateRequest) (TranslateResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return TranslateResponse{}, errors.New("text required")
	}
	if req.TargetLang == "" {
		return TranslateResponse{}, errors.New("target_lang required")
	}
	return TranslateResponse{
		TranslatedText: fmt.Sprintf("[%s placeholder] %s", req.TargetLang, req.Text),
		TargetLang:     req.TargetLang,
	}, nil
}

func topicLabel(topic string) string {
	if topic == "" {
		return "general"
	}
	return strings.ReplaceAll(topic, "_", " ")
}
