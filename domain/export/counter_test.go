package export

import "testing"

func TestCounter_PeekDoesNotAdvance(t *testing.T) {
	c := NewCounter()
	if c.Peek("a") != 1 || c.Peek("a") != 1 {
		t.Fatal("peek must not advance the counter")
	}
	if c.Count("a") != 0 {
		t.Fatalf("expected zero committed, got %d", c.Count("a"))
	}
}

func TestCounter_CommitAdvancesPerSource(t *testing.T) {
	c := NewCounter()
	if n := c.Commit("a"); n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}
	if n := c.Commit("a"); n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
	if n := c.Commit("b"); n != 1 {
		t.Fatalf("sources must be independent, got %d", n)
	}
	if c.Peek("a") != 3 || c.Peek("b") != 2 {
		t.Fatalf("peek mismatch: a=%d b=%d", c.Peek("a"), c.Peek("b"))
	}
}

func TestCounter_ZeroValueUsable(t *testing.T) {
	var c Counter
	if c.Peek("x") != 1 {
		t.Fatalf("zero value peek must be 1, got %d", c.Peek("x"))
	}
	if n := c.Commit("x"); n != 1 {
		t.Fatalf("zero value commit must work, got %d", n)
	}
}
