package parse

import "testing"

func TestStack(t *testing.T) {
	s := stack[string]{}

	if v := s.pop(); v != "" {
		t.Error("expected empty value from an empty stack")
		return
	}

	if !s.empty() {
		t.Error("expected a fresh stack to be empty")
		return
	}

	s.push("1")
	s.push("3")
	s.push("2")

	if s.empty() {
		t.Error("expected stack to be non-empty after pushes")
		return
	}

	for _, want := range []string{"2", "3", "1"} {
		if v := s.pop(); v != want {
			t.Errorf("expected %q, but got %q", want, v)
			return
		}
	}

	if v := s.pop(); v != "" {
		t.Error("expected empty value from an empty stack")
	}
}
