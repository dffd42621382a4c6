package main

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

const activityLogCap = 100

// ActivityEntry is one admin action in the recent-activity feed.
type ActivityEntry struct {
	ID        string `json:"id"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
}

// ActivityLog keeps the most recent admin actions, newest first, capped at
// activityLogCap entries. It is in-memory only and lost on restart.
type ActivityLog struct {
	mu      sync.Mutex
	entries []ActivityEntry
}

// NewActivityLog creates an empty log.
func NewActivityLog() *ActivityLog {
	return &ActivityLog{}
}

// Record prepends an entry, dropping the oldest past the cap.
func (l *ActivityLog) Record(action, details string) {
	entry := ActivityEntry{
		ID:        uuid.NewString(),
		Action:    action,
		Details:   details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	l.mu.Lock()
	l.entries = append([]ActivityEntry{entry}, l.entries...)
	if len(l.entries) > activityLogCap {
		l.entries = l.entries[:activityLogCap]
	}
	l.mu.Unlock()
}

// Entries returns a copy of the log, newest first.
func (l *ActivityLog) Entries() []ActivityEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.entries)
}
