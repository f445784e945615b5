package utils

import "testing"

func TestURLSetNoDuplicates(t *testing.T) {
	s := NewURLSet()

	if !s.Add("/hotel/example-resort") {
		t.Error("first Add should return true")
	}
	if s.Add("/hotel/example-resort") {
		t.Error("second Add of same URL should return false")
	}
	if s.Size() != 1 {
		t.Errorf("size: got %d, want 1", s.Size())
	}
}

func TestURLSetContains(t *testing.T) {
	s := NewURLSet()
	s.Add("/hotel/a")

	if !s.Contains("/hotel/a") {
		t.Error("Contains should report an added URL")
	}
	if s.Contains("/hotel/b") {
		t.Error("Contains should not report an unseen URL")
	}
}
