// ABOUTME: TTL tracker for already-processed Matrix event IDs
// ABOUTME: The sync stream can replay events; the tracker keeps each one single-shot

package dedupe

import (
	"sync"
	"time"
)

type record struct {
	id   string
	when time.Time
}

// Tracker remembers event IDs for a bounded time and count. Seen is the
// single entry point: it marks unseen IDs and reports replays.
type Tracker struct {
	mu      sync.Mutex
	byID    map[string]time.Time
	fifo    []record // oldest first
	ttl     time.Duration
	maxSize int
	done    chan struct{}
	once    sync.Once
}

// NewTracker creates a tracker. A background goroutine sweeps expired
// entries once a minute until Close is called.
func NewTracker(ttl time.Duration, maxSize int) *Tracker {
	t := &Tracker{
		byID:    make(map[string]time.Time),
		ttl:     ttl,
		maxSize: maxSize,
		done:    make(chan struct{}),
	}
	go t.sweepLoop()
	return t
}

// Seen reports whether the event ID was already processed within the TTL,
// marking it as processed if not. The check and the mark are atomic.
func (t *Tracker) Seen(eventID string) bool {
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	if when, ok := t.byID[eventID]; ok && now.Sub(when) < t.ttl {
		return true
	}

	if _, exists := t.byID[eventID]; !exists && len(t.byID) >= t.maxSize {
		t.dropOldestLocked()
	}
	t.byID[eventID] = now
	t.fifo = append(t.fifo, record{id: eventID, when: now})
	return false
}

// Len returns the number of tracked IDs.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.byID)
}

// dropOldestLocked evicts the oldest still-live entry. Must hold mu.
func (t *Tracker) dropOldestLocked() {
	for len(t.fifo) > 0 {
		oldest := t.fifo[0]
		t.fifo = t.fifo[1:]
		// Skip stale queue entries superseded by a re-mark of the same ID.
		if when, ok := t.byID[oldest.id]; ok && when.Equal(oldest.when) {
			delete(t.byID, oldest.id)
			return
		}
	}
}

func (t *Tracker) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.sweep()
		case <-t.done:
			return
		}
	}
}

// sweep drops every entry past its TTL.
func (t *Tracker) sweep() {
	now := time.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	cut := 0
	for cut < len(t.fifo) && now.Sub(t.fifo[cut].when) >= t.ttl {
		oldest := t.fifo[cut]
		if when, ok := t.byID[oldest.id]; ok && when.Equal(oldest.when) {
			delete(t.byID, oldest.id)
		}
		cut++
	}
	t.fifo = t.fifo[cut:]
}

// Close stops the sweep goroutine. Safe to call more than once.
func (t *Tracker) Close() {
	t.once.Do(func() { close(t.done) })
}
