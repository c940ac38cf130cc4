package http

import (
	"strings"
	"testing"
)

func TestSummarizeBodyRedactsPasswords(t *testing.T) {
	summary := summarizeBody([]byte(`{"id":"u1","password":"hunter22222"}`))
	m, ok := summary.(map[string]any)
	if !ok {
		t.Fatalf("expected a map summary, got %T", summary)
	}
	if m["password"] != "redacted" {
		t.Fatalf("password not redacted: %v", m["password"])
	}
	if m["id"] != "u1" {
		t.Fatalf("unexpected id field: %v", m["id"])
	}
}

func TestSummarizeBodyClampsLongText(t *testing.T) {
	long := strings.Repeat("a", maxLoggedBody+100)
	summary := summarizeBody([]byte(long))
	s, ok := summary.(string)
	if !ok {
		t.Fatalf("expected a string summary, got %T", summary)
	}
	if !strings.HasSuffix(s, "...(truncated)") {
		t.Fatal("expected truncation marker")
	}
}

func TestSummarizeBodyBinary(t *testing.T) {
	if got := summarizeBody([]byte{0xff, 0x00, 0x01}); got != "binary" {
		t.Fatalf("expected binary marker, got %v", got)
	}
	if got := summarizeBody(nil); got != nil {
		t.Fatalf("expected nil for empty body, got %v", got)
	}
}
