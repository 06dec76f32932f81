package ai

import (
	"context"
	"strings"
	"testing"
)

func TestStubChat_RequiresMessage(t *testing.T) {
	c := NewStubChat(DefaultPrompts())
	if _, err := c.Chat(context.Background(), ChatRequest{UserID: "u1"}); err == nil {
		t.Fatalf("expected error for empty message")
	}
}

func TestStubChat_ReturnsPlaceholder(t *testing.T) {
	c := NewStubChat(DefaultPrompts())
	resp, err := c.Chat(context.Background(), ChatRequest{UserID: "u1", Message: "warmup ideas?", Topic: "lesson_planning"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resp.Reply, "placeholder") || resp.Model != stubModel {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestStubTranslator(t *testing.T) {
	tr := NewStubTranslator()
	if _, err := tr.Translate(context.Background(), TranslateRequest{Text: "hi"}); err == nil {
		t.Fatalf("expected error for missing target_lang")
	}
	resp, err := tr.Translate(context.Background(), TranslateRequest{Text: "Good job", TargetLang: "es"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.TargetLang != "es" || !strings.Contains(resp.TranslatedText, "Good job") {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPrompts_TopicFallback(t *testing.T) {
	p := DefaultPrompts()
	if p.For("safety") == p.Default {
		t.Fatalf("expected topic-specific prompt for safety")
	}
	if p.For("unknown_topic") != p.Default {
		t.Fatalf("expected fallback to default prompt")
	}
}
