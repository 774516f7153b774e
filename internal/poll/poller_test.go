package poll

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/scasella/AgentPulse/internal/store"
)

func writeTeamConfig(t *testing.T, root, name string, createdAt int64) {
	t.Helper()
	dir := filepath.Join(root, "teams", name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	data := []byte(`{"name": "` + name + `", "description": "", "createdAt": ` +
		strconv.FormatInt(createdAt, 10) + `, "members": []}`)
	if err := os.WriteFile(filepath.Join(dir, "config.json"), data, 0644); err != nil {
		t.Fatal(err)
	}
}

func waitForSnapshot(t *testing.T, p *Poller, cond func(*store.Snapshot) bool) *store.Snapshot {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		select {
		case snap := <-p.Updates():
			if cond(snap) {
				return snap
			}
		case <-deadline:
			t.Fatal("timed out waiting for snapshot")
			return nil
		}
	}
}

func TestPollerInitialLoad(t *testing.T) {
	root := t.TempDir()
	writeTeamConfig(t, root, "demo", 1000)

	p := New(store.NewLoader(root), time.Hour, false)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	snap := waitForSnapshot(t, p, func(s *store.Snapshot) bool { return len(s.Teams) == 1 })
	if snap.Teams[0].Name != "demo" {
		t.Errorf("expected team 'demo', got %q", snap.Teams[0].Name)
	}
	if p.Current() != snap {
		t.Error("Current() should return the published snapshot")
	}
}

func TestPollerCurrentBeforeRun(t *testing.T) {
	p := New(store.NewLoader(t.TempDir()), time.Hour, false)

	snap := p.Current()
	if snap == nil {
		t.Fatal("Current() must never return nil")
	}
	if len(snap.Teams) != 0 {
		t.Errorf("expected empty snapshot, got %d teams", len(snap.Teams))
	}
}

func TestPollerManualRefresh(t *testing.T) {
	root := t.TempDir()

	p := New(store.NewLoader(root), time.Hour, false)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	waitForSnapshot(t, p, func(s *store.Snapshot) bool { return len(s.Teams) == 0 })

	writeTeamConfig(t, root, "late", 2000)
	p.Refresh()

	waitForSnapshot(t, p, func(s *store.Snapshot) bool { return len(s.Teams) == 1 })
}

func TestPollerRefreshCoalesces(t *testing.T) {
	p := New(store.NewLoader(t.TempDir()), time.Hour, false)

	// Many requests before Run drains any of them must not block
	for i := 0; i < 10; i++ {
		p.Refresh()
	}
	if len(p.refreshCh) != 1 {
		t.Errorf("expected 1 pending refresh, got %d", len(p.refreshCh))
	}
}

func TestPollerIntervalTick(t *testing.T) {
	root := t.TempDir()

	p := New(store.NewLoader(root), 20*time.Millisecond, false)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	waitForSnapshot(t, p, func(s *store.Snapshot) bool { return len(s.Teams) == 0 })

	// No manual refresh: the next tick should pick this up
	writeTeamConfig(t, root, "ticked", 3000)

	waitForSnapshot(t, p, func(s *store.Snapshot) bool { return len(s.Teams) == 1 })
}

func TestPollerWatchTriggersRefresh(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "teams"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "tasks"), 0755); err != nil {
		t.Fatal(err)
	}

	// Interval far beyond the test deadline: only the watcher can trigger
	p := New(store.NewLoader(root), time.Hour, true)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	waitForSnapshot(t, p, func(s *store.Snapshot) bool { return len(s.Teams) == 0 })

	writeTeamConfig(t, root, "watched", 4000)

	waitForSnapshot(t, p, func(s *store.Snapshot) bool { return len(s.Teams) == 1 })
}

func TestPollerDefaultInterval(t *testing.T) {
	p := New(store.NewLoader(t.TempDir()), 0, false)
	if p.interval != DefaultInterval {
		t.Errorf("interval = %v, want %v", p.interval, DefaultInterval)
	}
}
