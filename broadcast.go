package main

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// updateKey is the backend key holding a resource type's last-update
// timestamp, kept separate from the collection-data key.
func updateKey(rt ResourceType) string {
	return "barangay:" + string(rt) + ":last_update"
}

// Broadcaster records per-type last-update timestamps so polling clients can
// detect stale collections. Recording is best-effort: a failed durable write
// never affects the write that triggered it.
type Broadcaster struct {
	kv     KV // nil in memory-only mode
	logger zerolog.Logger

	mu          sync.Mutex
	lastUpdates map[ResourceType]int64
}

// NewBroadcaster seeds every known resource type with the current time so
// the updates endpoint always serves a complete map.
func NewBroadcaster(kv KV, logger zerolog.Logger) *Broadcaster {
	now := time.Now().UnixMilli()
	seeds := make(map[ResourceType]int64, len(ResourceTypes))
	for _, rt := range ResourceTypes {
		seeds[rt] = now
	}
	return &Broadcaster{kv: kv, logger: logger, lastUpdates: seeds}
}

// RecordUpdate marks rt as updated now. Call it after a successful
// collection write; failures are swallowed.
func (b *Broadcaster) RecordUpdate(ctx context.Context, rt ResourceType) {
	now := time.Now().UnixMilli()
	b.mu.Lock()
	if now > b.lastUpdates[rt] {
		b.lastUpdates[rt] = now
	}
	b.mu.Unlock()

	if b.kv == nil {
		return
	}
	if err := b.kv.Set(ctx, updateKey(rt), strconv.FormatInt(now, 10)); err != nil {
		b.logger.Warn().Err(err).Str("type", string(rt)).Msg("failed to record update timestamp")
	}
}

// Timestamps returns the last-update timestamp for every resource type,
// always with all known types present. Backend values are merged in per
// type; a single type's backend failure or unparsable value is ignored, and
// a timestamp never moves backward.
func (b *Broadcaster) Timestamps(ctx context.Context) map[ResourceType]int64 {
	if b.kv != nil {
		for _, rt := range ResourceTypes {
			raw, err := b.kv.Get(ctx, updateKey(rt))
			if err != nil {
				continue
			}
			ts, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				b.logger.Debug().Str("type", string(rt)).Str("value", raw).Msg("ignoring unparsable update timestamp")
				continue
			}
			b.mu.Lock()
			if ts > b.lastUpdates[rt] {
				b.lastUpdates[rt] = ts
			}
			b.mu.Unlock()
		}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	out := make(map[ResourceType]int64, len(b.lastUpdates))
	for rt, ts := range b.lastUpdates {
		out[rt] = ts
	}
	return out
}
