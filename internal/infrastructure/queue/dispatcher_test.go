package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

type recordingRepo struct {
	mu      sync.Mutex
	entries []*domain.AccessLog
	done    chan struct{}
	expect  int
}

func newRecordingRepo(expect int) *recordingRepo {
	return &recordingRepo{done: make(chan struct{}), expect: expect}
}

func (r *recordingRepo) Insert(_ context.Context, entry *domain.AccessLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	if len(r.entries) == r.expect {
		close(r.done)
	}
	return nil
}

func (r *recordingRepo) ListRecent(context.Context, int) ([]*domain.AccessLog, error) {
	return nil, nil
}

func (r *recordingRepo) wait(t *testing.T) []*domain.AccessLog {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %d entries", r.expect)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*domain.AccessLog(nil), r.entries...)
}

func entry(username string, artifactID int64) *domain.AccessLog {
	return &domain.AccessLog{
		ID:         fmt.Sprintf("%s-%d", username, artifactID),
		Username:   username,
		ArtifactID: artifactID,
		Action:     domain.ActionView,
		Timestamp:  time.Now().UTC(),
	}
}

func TestDispatcher_PersistsEntries(t *testing.T) {
	repo := newRecordingRepo(3)
	d := NewDispatcher(2, repo, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Record(entry("alice", 1))
	d.Record(entry("bob", 2))
	d.Record(entry("alice", 3))

	got := repo.wait(t)
	if len(got) != 3 {
		t.Fatalf("persisted %d entries, want 3", len(got))
	}
}

func TestDispatcher_PerUserOrdering(t *testing.T) {
	const n = 50
	repo := newRecordingRepo(n)
	d := NewDispatcher(4, repo, zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 1; i <= n; i++ {
		d.Record(entry("alice", int64(i)))
	}

	got := repo.wait(t)
	// Same username always lands on the same worker, so the trail stays in
	// submission order.
	for i, e := range got {
		if e.ArtifactID != int64(i+1) {
			t.Fatalf("entry %d has artifact id %d, want %d", i, e.ArtifactID, i+1)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, newRecordingRepo(0), zerolog.Nop())

	for _, username := range []string{"alice", "bob", "demo_hr"} {
		first := d.shardIndex(username)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(username); got != first {
				t.Fatalf("shard for %q changed: %d then %d", username, first, got)
			}
		}
	}
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	// Never started, so the single worker's buffer fills and overflow must
	// not block.
	d := NewDispatcher(1, newRecordingRepo(0), zerolog.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < channelBuffer+10; i++ {
			d.Record(entry("alice", int64(i)))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked on a full queue")
	}
}
