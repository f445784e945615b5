package utils

import (
	"errors"
	"testing"
)

var errFake = errors.New("element not found")

func TestRetryStopsAfterSuccess(t *testing.T) {
	r := &RetryConfig{MaxAttempts: 5, BaseDelay: 0, Logger: NewLogger(false)}

	calls := 0
	err := r.Do("flaky-op", func() error {
		calls++
		if calls < 3 {
			return errFake
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("calls: got %d, want 3", calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	r := &RetryConfig{MaxAttempts: 2, BaseDelay: 0, Logger: NewLogger(false)}

	calls := 0
	err := r.Do("always-fails", func() error {
		calls++
		return errFake
	})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if !errors.Is(err, errFake) {
		t.Errorf("returned error should wrap the last failure: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls: got %d, want 2", calls)
	}
}
