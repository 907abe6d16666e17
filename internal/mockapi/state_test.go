package mockapi

import (
	"testing"
	"time"
)

func TestState_Register(t *testing.T) {
	s := NewState()

	r := s.Register("runner-1", "self-hosted,linux,x64")
	if r.Name != "runner-1" {
		t.Errorf("expected name runner-1, got %q", r.Name)
	}
	if r.ID < 1000 || r.ID >= 10000 {
		t.Errorf("expected id in [1000, 10000), got %d", r.ID)
	}
	if r.OS != "linux" {
		t.Errorf("expected os linux, got %q", r.OS)
	}
	if r.Status != "online" {
		t.Errorf("expected status online, got %q", r.Status)
	}
	if r.Busy {
		t.Error("expected busy false at creation")
	}
	if len(r.Labels) != 3 || r.Labels[0] != "self-hosted" || r.Labels[2] != "x64" {
		t.Errorf("unexpected labels %v", r.Labels)
	}
	if _, err := time.Parse(time.RFC3339, r.CreatedAt); err != nil {
		t.Errorf("created_at %q not RFC 3339: %v", r.CreatedAt, err)
	}
}

func TestState_LabelsAreNotTrimmed(t *testing.T) {
	s := NewState()
	r := s.Register("runner-1", "a, b ,c")
	if len(r.Labels) != 3 || r.Labels[1] != " b " {
		t.Errorf("labels must be split verbatim, got %v", r.Labels)
	}
}

func TestState_DuplicateNamesAllowed(t *testing.T) {
	s := NewState()
	s.Register("dup", "linux")
	s.Register("dup", "linux")

	count, runners := s.List()
	if count != 2 {
		t.Fatalf("expected both duplicate registrations kept, got %d", count)
	}
	if runners[0].Name != "dup" || runners[1].Name != "dup" {
		t.Errorf("unexpected runners %v", runners)
	}
}

func TestState_ListPreservesOrder(t *testing.T) {
	s := NewState()
	names := []string{"a", "b", "c", "d"}
	for _, n := range names {
		s.Register(n, "linux")
	}

	count, runners := s.List()
	if count != len(names) {
		t.Fatalf("expected %d runners, got %d", len(names), count)
	}
	for i, n := range names {
		if runners[i].Name != n {
			t.Errorf("position %d: expected %q, got %q", i, n, runners[i].Name)
		}
	}
}

func TestState_ListReturnsCopy(t *testing.T) {
	s := NewState()
	s.Register("a", "linux")

	_, runners := s.List()
	runners[0].Name = "mutated"

	_, again := s.List()
	if again[0].Name != "a" {
		t.Error("List must not expose internal state to mutation")
	}
}

func TestState_Reset(t *testing.T) {
	s := NewState()
	s.Register("a", "linux")
	s.CountRequest()
	s.CountRequest()

	s.Reset()
	if n := s.RunnerCount(); n != 0 {
		t.Errorf("expected empty registry after reset, got %d", n)
	}
	if n := s.RequestCount(); n != 0 {
		t.Errorf("expected zero request count after reset, got %d", n)
	}

	// Idempotent on an already-empty state.
	s.Reset()
	if n := s.RunnerCount(); n != 0 {
		t.Errorf("expected reset to stay empty, got %d", n)
	}
}

func TestState_CountRequest(t *testing.T) {
	s := NewState()
	for i := int64(1); i <= 5; i++ {
		if got := s.CountRequest(); got != i {
			t.Fatalf("expected count %d, got %d", i, got)
		}
	}
}
