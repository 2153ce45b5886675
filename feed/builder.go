package feed

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/SaintCentral/models"
)

// fetchBatch produces one randomized batch for the actor. The exclusion
// set handed to the source is the union of every id the ledger knows for
// this actor (all action kinds count as acted-on) and every id this
// session has already surfaced.
func fetchBatch(ctx context.Context, source ItemSource, store InteractionStore, rng *rand.Rand, actorID int, seen map[int]struct{}, size int) ([]models.PrayerItem, error) {
	acted, err := store.ListByActor(ctx, actorID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	exclude := make(map[int]struct{}, len(acted)+len(seen))
	for _, rec := range acted {
		exclude[rec.Prayer_Request_ID] = struct{}{}
	}
	for id := range seen {
		exclude[id] = struct{}{}
	}

	items, err := source.FetchBatch(ctx, actorID, exclude, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	shuffle(rng, items)
	return items, nil
}

// shuffle runs a uniform Fisher-Yates pass so batch order carries no
// signal from source ordering or submission time.
func shuffle(rng *rand.Rand, items []models.PrayerItem) {
	for i := len(items) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
