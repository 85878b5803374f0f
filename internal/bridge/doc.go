// ABOUTME: Package documentation for bridge
// ABOUTME: Matrix front-end: sync loop, session ownership, reply formatting

// Package bridge connects the agent to Matrix. It owns the sync loop, the
// per-room session map, event deduplication, and reply rendering. One
// message per room is processed at a time; extra messages arriving while a
// turn is in flight are dropped.
package bridge
