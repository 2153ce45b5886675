// Package feed implements the session-consistent prayer queue: one
// randomized batch at a time, a never-repeat guarantee within a session,
// an idempotent interaction ledger behind it, and the streak math that
// reads the same ledger. The HTTP layer consumes it through Session and
// Manager; persistence is reached only through the two interfaces below.
package feed

import (
	"context"
	"errors"
	"time"

	"github.com/SaintCentral/models"
)

// DefaultBatchSize bounds staleness versus freshness for one fetch.
const DefaultBatchSize = 10

// ErrSourceUnavailable wraps item-source and ledger-read failures.
// Retryable; session state is left untouched when it occurs.
var ErrSourceUnavailable = errors.New("feed: item source unavailable")

// ErrNoCurrentItem is returned by operations that need an item on deck.
var ErrNoCurrentItem = errors.New("feed: no current item")

// ItemSource is a paginated catalog of candidate prayer requests.
// Implementations must exclude the actor's own submissions, every id in
// exclude, and anything not yet approved. An empty result means the
// actor is caught up; it is not an error.
type ItemSource interface {
	FetchBatch(ctx context.Context, actorID int, exclude map[int]struct{}, limit int) ([]models.PrayerItem, error)
}

// InteractionStore is the persistent ledger of (item, actor, kind)
// records. Upsert must be idempotent on that tuple: a retry after a
// timed-out write whose effect landed is a no-op. Delete reports
// whether a row actually existed. A nil or empty kinds slice on
// ListByActor means all kinds.
type InteractionStore interface {
	Upsert(ctx context.Context, itemID, actorID int, kind models.ActionKind, at time.Time) error
	Delete(ctx context.Context, itemID, actorID int, kind models.ActionKind) (bool, error)
	ListByActor(ctx context.Context, actorID int, kinds []models.ActionKind) ([]models.InteractionRecord, error)
}
