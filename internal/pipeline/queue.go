package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/luis-carvajal/invoice-extractor/internal/common"
)

const (
	defaultWorkers    = 4
	defaultQueueSize  = 64
	defaultJobTimeout = 2 * time.Minute
)

type QueueOption func(*Queue)

func WithWorkers(n int) QueueOption {
	return func(q *Queue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) QueueOption {
	return func(q *Queue) {
		if n > 0 {
			q.queueSize = n
		}
	}
}

func WithJobTimeout(d time.Duration) QueueOption {
	return func(q *Queue) {
		if d > 0 {
			q.jobTimeout = d
		}
	}
}

// Queue fans document parsing out over a fixed pool of workers. Each job is
// one file path; results and per-document failures are collected and read
// back after Shutdown.
type Queue struct {
	pipeline   *Pipeline
	log        *slog.Logger
	workers    int
	queueSize  int
	jobTimeout time.Duration

	jobs chan string
	wg   sync.WaitGroup

	// sendMu serializes sends with close so Shutdown can never close the
	// channel while an Enqueue is mid-send. It must stay separate from mu:
	// a producer blocked on a full buffer holds sendMu, and workers need
	// mu to record results before they free a slot.
	sendMu sync.Mutex
	closed bool

	mu      sync.Mutex
	results []*DocumentResult
	failed  []string
}

func NewQueue(p *Pipeline, log *slog.Logger, opts ...QueueOption) *Queue {
	if log == nil {
		log = slog.Default()
	}
	q := &Queue{
		pipeline:   p,
		log:        log,
		workers:    defaultWorkers,
		queueSize:  defaultQueueSize,
		jobTimeout: defaultJobTimeout,
	}
	for _, opt := range opts {
		opt(q)
	}
	q.jobs = make(chan string, q.queueSize)
	return q
}

func (q *Queue) Start(ctx context.Context) {
	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i)
	}
	q.log.Info("parse queue started", "workers", q.workers, "queue_size", q.queueSize)
}

func (q *Queue) worker(ctx context.Context, id int) {
	defer q.wg.Done()
	for path := range q.jobs {
		jobCtx, cancel := common.WithTimeout(ctx, q.jobTimeout)
		res, err := q.pipeline.ParseFile(jobCtx, path)
		cancel()

		q.mu.Lock()
		if err != nil {
			q.failed = append(q.failed, path)
		} else {
			q.results = append(q.results, res)
		}
		q.mu.Unlock()

		if err != nil {
			q.log.Warn("document failed", "worker", id, "path", path, "error", err)
		}
	}
}

// Enqueue blocks while the buffer is full and returns false once ctx is
// done or the queue has shut down, so callers can stop feeding. A context
// that is already done always returns false without touching the queue.
func (q *Queue) Enqueue(ctx context.Context, path string) bool {
	if ctx.Err() != nil {
		return false
	}

	q.sendMu.Lock()
	defer q.sendMu.Unlock()
	if q.closed {
		return false
	}
	select {
	case q.jobs <- path:
		return true
	case <-ctx.Done():
		return false
	}
}

// Shutdown stops accepting jobs, drains the queue and waits for workers.
func (q *Queue) Shutdown() {
	q.sendMu.Lock()
	if q.closed {
		q.sendMu.Unlock()
		return
	}
	q.closed = true
	close(q.jobs)
	q.sendMu.Unlock()
	q.wg.Wait()
}

// Results returns parsed documents collected so far. Call after Shutdown
// for the complete batch.
func (q *Queue) Results() []*DocumentResult {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]*DocumentResult, len(q.results))
	copy(out, q.results)
	return out
}

// Failed returns the paths of documents that did not parse.
func (q *Queue) Failed() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]string, len(q.failed))
	copy(out, q.failed)
	return out
}
