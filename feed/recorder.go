package feed

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/SaintCentral/models"
)

const (
	recorderWorkers  = 2
	recorderQueueCap = 64
	writeTimeout     = 10 * time.Second
)

// Recorder persists interactions without ever blocking feed
// navigation. Terminal and reaction kinds go through a bounded
// fire-and-forget queue drained by a small worker pool; failures are
// logged, never surfaced to the browsing flow. Saves are synchronous
// because the caller needs the authoritative toggle outcome.
type Recorder struct {
	store InteractionStore

	jobs      chan writeJob
	wg        sync.WaitGroup
	closeOnce sync.Once
}

type writeJob struct {
	itemID  int
	actorID int
	kind    models.ActionKind
	at      time.Time
}

func NewRecorder(store InteractionStore) *Recorder {
	r := &Recorder{
		store: store,
		jobs:  make(chan writeJob, recorderQueueCap),
	}
	for i := 0; i < recorderWorkers; i++ {
		r.wg.Add(1)
		go r.writer()
	}
	return r
}

func (r *Recorder) writer() {
	defer r.wg.Done()
	for job := range r.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := r.store.Upsert(ctx, job.itemID, job.actorID, job.kind, job.at); err != nil {
			log.Printf("feed: ledger write failed (prayer=%d user=%d kind=%s): %v", job.itemID, job.actorID, job.kind, err)
		}
		cancel()
	}
}

// Record enqueues one idempotent upsert. When the queue is full the
// write is dropped with a log line instead of blocking or growing
// without bound.
func (r *Recorder) Record(itemID, actorID int, kind models.ActionKind) {
	select {
	case r.jobs <- writeJob{itemID: itemID, actorID: actorID, kind: kind, at: time.Now()}:
	default:
		log.Printf("feed: ledger queue full, dropping write (prayer=%d user=%d kind=%s)", itemID, actorID, kind)
	}
}

// ToggleSave deletes an existing saved record or inserts one, and
// reports which happened: true for saved, false for unsaved.
func (r *Recorder) ToggleSave(ctx context.Context, itemID, actorID int) (bool, error) {
	deleted, err := r.store.Delete(ctx, itemID, actorID, models.ActionSaved)
	if err != nil {
		return false, err
	}
	if deleted {
		return false, nil
	}
	if err := r.store.Upsert(ctx, itemID, actorID, models.ActionSaved, time.Now()); err != nil {
		return false, err
	}
	return true, nil
}

// Close stops accepting writes and drains what is already queued. Call
// on shutdown only.
func (r *Recorder) Close() {
	r.closeOnce.Do(func() { close(r.jobs) })
	r.wg.Wait()
}
