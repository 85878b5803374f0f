// ABOUTME: Tests for the event ID tracker
// ABOUTME: Covers replay detection, TTL expiry, and size-based eviction

package dedupe

import (
	"testing"
	"time"
)

func TestSeen(t *testing.T) {
	tr := NewTracker(time.Minute, 100)
	defer tr.Close()

	if tr.Seen("$event1") {
		t.Error("first sighting should not be a replay")
	}
	if !tr.Seen("$event1") {
		t.Error("second sighting should be a replay")
	}
	if tr.Seen("$event2") {
		t.Error("different ID should not be a replay")
	}
}

func TestTTLExpiry(t *testing.T) {
	tr := NewTracker(20*time.Millisecond, 100)
	defer tr.Close()

	tr.Seen("$event1")
	time.Sleep(40 * time.Millisecond)

	if tr.Seen("$event1") {
		t.Error("expired ID should not count as a replay")
	}
}

func TestSizeEviction(t *testing.T) {
	tr := NewTracker(time.Hour, 3)
	defer tr.Close()

	tr.Seen("$a")
	tr.Seen("$b")
	tr.Seen("$c")
	tr.Seen("$d") // evicts $a

	if tr.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tr.Len())
	}
	if tr.Seen("$a") {
		t.Error("evicted ID should not count as a replay")
	}
	if !tr.Seen("$d") {
		t.Error("recent ID should still be tracked")
	}
}

func TestSweepRemovesExpired(t *testing.T) {
	tr := NewTracker(10*time.Millisecond, 100)
	defer tr.Close()

	tr.Seen("$old")
	time.Sleep(20 * time.Millisecond)
	tr.sweep()

	if tr.Len() != 0 {
		t.Errorf("Len() after sweep = %d, want 0", tr.Len())
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	tr := NewTracker(time.Minute, 10)
	tr.Close()
	tr.Close()
}
