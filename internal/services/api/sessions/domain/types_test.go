package domain

import (
	"testing"
	"time"
)

func TestSessao_IsOpen(t *testing.T) {
	t.Parallel()

	closesAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	s := Sessao{ID: "s1", ClosesAt: closesAt}

	if !s.IsOpen(closesAt.Add(-time.Second)) {
		t.Fatalf("session must be open before closes_at")
	}
	// the closing instant itself is already closed
	if s.IsOpen(closesAt) {
		t.Fatalf("session must be closed at closes_at exactly")
	}
	if s.IsOpen(closesAt.Add(time.Second)) {
		t.Fatalf("session must be closed after closes_at")
	}
}
