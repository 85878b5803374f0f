// ABOUTME: Package documentation for dedupe
// ABOUTME: Event replay suppression for the Matrix bridge

// Package dedupe suppresses duplicate Matrix events. A sync restart can
// redeliver recent events, so the bridge runs every incoming event ID
// through a Tracker before acting on it.
package dedupe
