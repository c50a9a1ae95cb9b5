package limiter

import (
	"testing"
	"time"
)

func TestLimiterAllowsUnderThreshold(t *testing.T) {
	l := NewMemoryLimiter(time.Minute, 3)

	l.Fail("203.0.113.7")
	l.Fail("203.0.113.7")

	if l.TooMany("203.0.113.7") {
		t.Fatalf("expected key under the threshold to pass")
	}
}

func TestLimiterBlocksAtThreshold(t *testing.T) {
	l := NewMemoryLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		l.Fail("203.0.113.7")
	}

	if !l.TooMany("203.0.113.7") {
		t.Fatalf("expected key at the threshold to be blocked")
	}

	if l.TooMany("198.51.100.1") {
		t.Fatalf("expected other keys to be unaffected")
	}
}

func TestLimiterExpiresOldFailures(t *testing.T) {
	l := NewMemoryLimiter(50*time.Millisecond, 1)

	l.Fail("203.0.113.7")

	if !l.TooMany("203.0.113.7") {
		t.Fatalf("expected key to be blocked inside the window")
	}

	time.Sleep(80 * time.Millisecond)

	if l.TooMany("203.0.113.7") {
		t.Fatalf("expected failures outside the window to be pruned")
	}
}
