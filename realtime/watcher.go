// Package realtime polls the portal's updates endpoint and invokes a
// callback when a watched collection has changed since the last observation.
// Each Watcher keeps its own observation state, so independent consumers can
// run their own loops side by side.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// DefaultInterval is the poll cadence used when Config.Interval is zero.
const DefaultInterval = 3 * time.Second

// Config configures a Watcher.
type Config struct {
	// Endpoint is the absolute URL of the updates endpoint.
	Endpoint string

	// Types limits watching to the named resource types. Empty watches
	// every type present in the endpoint's response.
	Types []string

	// Interval between polls. Zero means DefaultInterval.
	Interval time.Duration

	// OnUpdate is invoked at most once per poll when any watched type has a
	// newer timestamp than previously observed.
	OnUpdate func()

	// Client is the HTTP client used for polls. Nil means http.DefaultClient.
	Client *http.Client

	// Logger, when set, receives poll failures at warn level.
	Logger *zerolog.Logger
}

// Watcher is a handle on a running poll loop.
type Watcher struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Start launches the poll loop. The first poll happens immediately rather
// than after the first interval. The loop runs until ctx is cancelled or
// Stop is called.
func Start(ctx context.Context, cfg Config) (*Watcher, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("realtime: endpoint is required")
	}
	if cfg.OnUpdate == nil {
		return nil, errors.New("realtime: OnUpdate callback is required")
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Client == nil {
		cfg.Client = http.DefaultClient
	}

	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{cancel: cancel, done: make(chan struct{})}
	go w.run(ctx, cfg)
	return w, nil
}

// Stop tears the loop down. When it returns no further polls or callbacks
// will happen; the result of a poll in flight at teardown is discarded.
func (w *Watcher) Stop() {
	w.cancel()
	<-w.done
}

func (w *Watcher) run(ctx context.Context, cfg Config) {
	defer close(w.done)

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	// The fetch runs inline in this goroutine, so ticks are strictly
	// sequential and can never overlap; a slow fetch delays the next tick.
	observed := make(map[string]int64)
	for {
		w.tick(ctx, cfg, observed)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// tick fetches the timestamp map and fires OnUpdate at most once when any
// watched type shows a strict increase over a previous observation. A type
// seen for the first time only establishes its baseline. Fetch failures are
// logged and skipped; the loop keeps its schedule.
func (w *Watcher) tick(ctx context.Context, cfg Config, observed map[string]int64) {
	timestamps, err := fetchTimestamps(ctx, cfg)
	if err != nil {
		if ctx.Err() == nil && cfg.Logger != nil {
			cfg.Logger.Warn().Err(err).Msg("update poll failed")
		}
		return
	}
	if ctx.Err() != nil {
		// Torn down while the fetch was in flight.
		return
	}

	types := cfg.Types
	if len(types) == 0 {
		types = make([]string, 0, len(timestamps))
		for t := range timestamps {
			types = append(types, t)
		}
	}

	stale := false
	for _, t := range types {
		ts, ok := timestamps[t]
		if !ok {
			continue
		}
		if prev, seen := observed[t]; seen && ts > prev {
			stale = true
		}
		observed[t] = ts
	}
	if stale {
		cfg.OnUpdate()
	}
}

func fetchTimestamps(ctx context.Context, cfg Config) (map[string]int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.Endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := cfg.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var timestamps map[string]int64
	if err := json.NewDecoder(resp.Body).Decode(&timestamps); err != nil {
		return nil, err
	}
	return timestamps, nil
}
