package main

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

// Store is the persistence facade over the durable KV backend with an
// in-memory fallback. Collections are stored whole, JSON-serialized under
// their resource-type name. The fallback always reflects the most recent
// write made by this process; durable persistence is best-effort, so a
// backend outage degrades cross-instance visibility but never local
// read-after-write correctness.
//
// Without a durable backend each process instance has an independent view of
// the data. That is an accepted limitation of memory-only mode.
type Store struct {
	kv     KV // nil in memory-only mode
	logger zerolog.Logger

	mu            sync.RWMutex
	announcements []Announcement
	hotlines      []Hotline
	officials     []Official
	applications  []Application
	reports       []Report
}

// NewStore creates a Store pre-seeded with the default collections. kv may
// be nil, in which case all reads and writes stay in memory.
func NewStore(kv KV, logger zerolog.Logger) *Store {
	return &Store{
		kv:            kv,
		logger:        logger,
		announcements: defaultAnnouncements(),
		hotlines:      defaultHotlines(),
		officials:     defaultOfficials(),
	}
}

// Announcements returns the announcements collection.
func (s *Store) Announcements(ctx context.Context) []Announcement {
	s.mu.RLock()
	fallback := slices.Clone(s.announcements)
	s.mu.RUnlock()
	return readCollection(ctx, s, TypeAnnouncements, fallback)
}

// SetAnnouncements replaces the announcements collection.
func (s *Store) SetAnnouncements(ctx context.Context, items []Announcement) {
	s.mu.Lock()
	s.announcements = slices.Clone(items)
	s.mu.Unlock()
	writeCollection(ctx, s, TypeAnnouncements, items)
}

// Hotlines returns the hotlines collection.
func (s *Store) Hotlines(ctx context.Context) []Hotline {
	s.mu.RLock()
	fallback := slices.Clone(s.hotlines)
	s.mu.RUnlock()
	return readCollection(ctx, s, TypeHotlines, fallback)
}

// SetHotlines replaces the hotlines collection.
func (s *Store) SetHotlines(ctx context.Context, items []Hotline) {
	s.mu.Lock()
	s.hotlines = slices.Clone(items)
	s.mu.Unlock()
	writeCollection(ctx, s, TypeHotlines, items)
}

// Officials returns the officials collection.
func (s *Store) Officials(ctx context.Context) []Official {
	s.mu.RLock()
	fallback := slices.Clone(s.officials)
	s.mu.RUnlock()
	return readCollection(ctx, s, TypeOfficials, fallback)
}

// SetOfficials replaces the officials collection.
func (s *Store) SetOfficials(ctx context.Context, items []Official) {
	s.mu.Lock()
	s.officials = slices.Clone(items)
	s.mu.Unlock()
	writeCollection(ctx, s, TypeOfficials, items)
}

// Applications returns the document applications collection.
func (s *Store) Applications(ctx context.Context) []Application {
	s.mu.RLock()
	fallback := slices.Clone(s.applications)
	s.mu.RUnlock()
	return readCollection(ctx, s, TypeApplications, fallback)
}

// SetApplications replaces the document applications collection.
func (s *Store) SetApplications(ctx context.Context, items []Application) {
	s.mu.Lock()
	s.applications = slices.Clone(items)
	s.mu.Unlock()
	writeCollection(ctx, s, TypeApplications, items)
}

// Reports returns the issue reports collection.
func (s *Store) Reports(ctx context.Context) []Report {
	s.mu.RLock()
	fallback := slices.Clone(s.reports)
	s.mu.RUnlock()
	return readCollection(ctx, s, TypeReports, fallback)
}

// SetReports replaces the issue reports collection.
func (s *Store) SetReports(ctx context.Context, items []Report) {
	s.mu.Lock()
	s.reports = slices.Clone(items)
	s.mu.Unlock()
	writeCollection(ctx, s, TypeReports, items)
}

// readCollection reads the collection stored under rt, serving fallback when
// the backend is absent, has no value, fails, or holds data that does not
// parse. Storage trouble is a degraded-mode event, never an error to the
// caller.
func readCollection[T any](ctx context.Context, s *Store, rt ResourceType, fallback []T) []T {
	if s.kv == nil {
		return fallback
	}
	raw, err := s.kv.Get(ctx, string(rt))
	if err != nil {
		if !errors.Is(err, ErrNoValue) {
			s.logger.Warn().Err(err).Str("type", string(rt)).Msg("backend read failed, serving fallback")
		}
		return fallback
	}
	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn().Err(err).Str("type", string(rt)).Msg("corrupt collection payload, serving fallback")
		return fallback
	}
	return items
}

// writeCollection persists items under rt, best-effort. The in-memory copy
// was already updated by the caller, so a failure here only loses durable
// persistence, never the local view.
func writeCollection[T any](ctx context.Context, s *Store, rt ResourceType, items []T) {
	if s.kv == nil {
		return
	}
	data, err := json.Marshal(items)
	if err != nil {
		s.logger.Error().Err(err).Str("type", string(rt)).Msg("failed to marshal collection")
		return
	}
	if err := s.kv.Set(ctx, string(rt), string(data)); err != nil {
		s.logger.Warn().Err(err).Str("type", string(rt)).Msg("backend write failed, kept in memory only")
	}
}
