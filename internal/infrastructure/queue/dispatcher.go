// Package queue provides the asynchronous audit-log writer. Reads never
// block on audit persistence: services hand entries to the dispatcher and
// sharded workers write them through the audit repository.
package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
	"github.com/knowledgehub/knowledge-platform/internal/core/ports"
	"github.com/knowledgehub/knowledge-platform/internal/metrics"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes access-log entries to a fixed set of workers using
// consistent hashing on the username, so one user's audit trail is written
// in the order it was produced.
type Dispatcher struct {
	workers []chan *domain.AccessLog
	repo    ports.AuditRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.AuditRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan *domain.AccessLog, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan *domain.AccessLog, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an entry for persistence. When the responsible worker's
// buffer is full the entry is dropped with a warning: the audit trail is
// best-effort and must never stall a read.
func (d *Dispatcher) Record(entry *domain.AccessLog) {
	i := d.shardIndex(entry.Username)
	select {
	case d.workers[i] <- entry:
		metrics.AuditQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
	default:
		d.log.Warn().
			Str("username", entry.Username).
			Int64("artifact_id", entry.ArtifactID).
			Msg("audit queue full, entry dropped")
	}
}

// shardIndex maps a username deterministically to a worker index.
func (d *Dispatcher) shardIndex(username string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(username))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan *domain.AccessLog) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case entry, ok := <-ch:
			if !ok {
				return
			}
			metrics.AuditQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.repo.Insert(ctx, entry); err != nil {
				d.log.Error().Err(err).
					Str("username", entry.Username).
					Int64("artifact_id", entry.ArtifactID).
					Int("worker_id", id).
					Msg("audit write failed")
			}
		}
	}
}
