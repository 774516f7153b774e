// Package poll owns the "which snapshot is current" state: it refreshes
// the store on a fixed cadence, publishes each new snapshot atomically,
// and lets consumers pull the current one or wait for replacement
// notifications. Loads are serialized on a single goroutine, so at most
// one is ever in flight.
package poll

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/scasella/AgentPulse/internal/models"
	"github.com/scasella/AgentPulse/internal/store"
)

// DefaultInterval is the refresh cadence when none is configured
const DefaultInterval = 5 * time.Second

// watchQuiet is how long the filesystem must stay quiet after an event
// before a watch-triggered refresh fires. The agent-team system writes
// several files in bursts.
const watchQuiet = 250 * time.Millisecond

// Poller periodically reloads the store and hands out snapshots
type Poller struct {
	loader   *store.Loader
	interval time.Duration
	watch    bool

	mu      sync.RWMutex
	current *store.Snapshot

	refreshCh chan struct{}
	updates   chan *store.Snapshot
}

// New creates a poller around the loader. interval <= 0 selects
// DefaultInterval. When watch is true the poller also listens for
// filesystem events under the store root and refreshes early.
func New(loader *store.Loader, interval time.Duration, watch bool) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		loader:    loader,
		interval:  interval,
		watch:     watch,
		refreshCh: make(chan struct{}, 1),
		updates:   make(chan *store.Snapshot, 1),
	}
}

// Current returns the most recently published snapshot, or an empty one
// if the poller has not completed a load yet. Never nil.
func (p *Poller) Current() *store.Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.current == nil {
		return &store.Snapshot{TasksByTeam: make(map[string][]models.Task)}
	}
	return p.current
}

// Updates returns a channel that receives each newly published snapshot.
// The channel is buffered and sends are dropped when the consumer lags;
// a consumer that misses a send still sees the latest state via Current.
func (p *Poller) Updates() <-chan *store.Snapshot {
	return p.updates
}

// Refresh requests an immediate reload. Concurrent requests coalesce
// into at most one pending refresh; none of them race the poll ticker.
func (p *Poller) Refresh() {
	select {
	case p.refreshCh <- struct{}{}:
	default:
	}
}

// Run loads once immediately, then refreshes on every tick or refresh
// request until the context is cancelled. It is the only goroutine that
// invokes the loader.
func (p *Poller) Run(ctx context.Context) {
	var watcher *fsnotify.Watcher
	if p.watch {
		if w, err := fsnotify.NewWatcher(); err == nil {
			watcher = w
			defer watcher.Close()
			go p.watchLoop(ctx, watcher)
		}
		// Watcher setup failure falls back to plain interval polling
	}

	p.reload(watcher)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.reload(watcher)
		case <-p.refreshCh:
			p.reload(watcher)
		}
	}
}

// reload runs one load cycle and publishes the result
func (p *Poller) reload(watcher *fsnotify.Watcher) {
	snap := p.loader.Load()

	p.mu.Lock()
	p.current = snap
	p.mu.Unlock()

	select {
	case p.updates <- snap:
	default:
	}

	if watcher != nil {
		p.updateWatchDirs(watcher, snap)
	}
}

// updateWatchDirs keeps the watcher covering the store's directory tree:
// the teams/ and tasks/ roots plus each team's subdirectory. fsnotify is
// not recursive, and team directories appear and vanish between polls.
// Add errors are ignored; a directory that disappeared is caught by the
// next interval tick anyway.
func (p *Poller) updateWatchDirs(watcher *fsnotify.Watcher, snap *store.Snapshot) {
	root := p.loader.Root()
	watcher.Add(filepath.Join(root, "teams"))
	watcher.Add(filepath.Join(root, "tasks"))
	for _, team := range snap.Teams {
		watcher.Add(filepath.Join(root, "teams", team.Name))
		watcher.Add(filepath.Join(root, "tasks", team.Name))
	}
}

// watchLoop turns bursts of filesystem events into single refresh
// requests: each relevant event resets a quiet timer, and the refresh
// fires once the burst settles.
func (p *Poller) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	var quiet *time.Timer
	defer func() {
		if quiet != nil {
			quiet.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !relevantEvent(event) {
				continue
			}
			if quiet == nil {
				quiet = time.NewTimer(watchQuiet)
				continue
			}
			if !quiet.Stop() {
				select {
				case <-quiet.C:
				default:
				}
			}
			quiet.Reset(watchQuiet)
		case <-timerC(quiet):
			quiet = nil
			p.Refresh()
		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; interval polling still runs
		}
	}
}

// timerC returns the timer's channel, or a nil channel that never fires
func timerC(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

// relevantEvent filters out chmod noise and editor droppings; only JSON
// documents and directory-level changes can alter the snapshot
func relevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	return true
}
