package feed

import (
	"context"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/SaintCentral/models"
	"github.com/stretchr/testify/assert"
)

func TestShuffleIsAPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, size := range []int{0, 1, 2, 10, 50} {
		items := makeItems(size)
		want := make([]int, 0, size)
		for _, item := range items {
			want = append(want, item.Prayer_Request_ID)
		}

		shuffle(rng, items)

		got := make([]int, 0, size)
		for _, item := range items {
			got = append(got, item.Prayer_Request_ID)
		}
		sort.Ints(got)
		assert.Equal(t, want, got, "size %d", size)
	}
}

func TestFetchBatchExcludesLedgerAndSeen(t *testing.T) {
	source := &fakeSource{pool: makeItems(20)}
	store := newFakeStore()

	// items 1-3 acted on in the ledger, with different kinds; all count
	assert.NoError(t, store.Upsert(context.Background(), 1, testActor, models.ActionPrayed, time.Now()))
	assert.NoError(t, store.Upsert(context.Background(), 2, testActor, models.ActionSaved, time.Now()))
	assert.NoError(t, store.Upsert(context.Background(), 3, testActor, models.ActionKind("reaction:love"), time.Now()))

	// items 4-5 already surfaced this session
	seen := map[int]struct{}{4: {}, 5: {}}

	rng := rand.New(rand.NewSource(2))
	items, err := fetchBatch(context.Background(), source, store, rng, testActor, seen, 10)
	assert.NoError(t, err)
	assert.Len(t, items, 10)
	for _, item := range items {
		assert.Greater(t, item.Prayer_Request_ID, 5)
	}
}

func TestFetchBatchEmptyIsNotAnError(t *testing.T) {
	source := &fakeSource{}
	store := newFakeStore()

	items, err := fetchBatch(context.Background(), source, store, rand.New(rand.NewSource(3)), testActor, nil, 10)
	assert.NoError(t, err)
	assert.Empty(t, items)
}
