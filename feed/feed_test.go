package feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SaintCentral/models"
)

// In-memory fakes implementing ItemSource and InteractionStore for
// session and recorder tests.

type fakeStore struct {
	mu      sync.Mutex
	records map[string]models.InteractionRecord
	upserts int
	nextID  int

	failUpsert error
	failList   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string]models.InteractionRecord)}
}

func tupleKey(itemID, actorID int, kind models.ActionKind) string {
	return fmt.Sprintf("%d|%d|%s", itemID, actorID, kind)
}

func (s *fakeStore) Upsert(_ context.Context, itemID, actorID int, kind models.ActionKind, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failUpsert != nil {
		return s.failUpsert
	}
	s.upserts++
	key := tupleKey(itemID, actorID, kind)
	if _, exists := s.records[key]; exists {
		return nil
	}
	s.nextID++
	s.records[key] = models.InteractionRecord{
		Prayer_Interaction_ID: s.nextID,
		Prayer_Request_ID:     itemID,
		User_Profile_ID:       actorID,
		Action_Kind:           kind,
		Datetime_Create:       at,
	}
	return nil
}

func (s *fakeStore) Delete(_ context.Context, itemID, actorID int, kind models.ActionKind) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := tupleKey(itemID, actorID, kind)
	if _, exists := s.records[key]; !exists {
		return false, nil
	}
	delete(s.records, key)
	return true, nil
}

func (s *fakeStore) ListByActor(_ context.Context, actorID int, kinds []models.ActionKind) ([]models.InteractionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failList != nil {
		return nil, s.failList
	}
	var out []models.InteractionRecord
	for _, rec := range s.records {
		if rec.User_Profile_ID != actorID {
			continue
		}
		if len(kinds) > 0 && !containsKind(kinds, rec.Action_Kind) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func containsKind(kinds []models.ActionKind, kind models.ActionKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (s *fakeStore) count(itemID, actorID int, kind models.ActionKind) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[tupleKey(itemID, actorID, kind)]; exists {
		return 1
	}
	return 0
}

type fakeSource struct {
	mu      sync.Mutex
	pool    []models.PrayerItem
	err     error
	fetches int
}

func (s *fakeSource) FetchBatch(_ context.Context, actorID int, exclude map[int]struct{}, limit int) ([]models.PrayerItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	s.fetches++
	var out []models.PrayerItem
	for _, item := range s.pool {
		if len(out) == limit {
			break
		}
		if _, skip := exclude[item.Prayer_Request_ID]; skip {
			continue
		}
		if item.Owner_ID != nil && *item.Owner_ID == actorID {
			continue
		}
		if item.Approved != models.ApprovalYes {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func makeItems(n int) []models.PrayerItem {
	items := make([]models.PrayerItem, 0, n)
	for i := 1; i <= n; i++ {
		items = append(items, models.PrayerItem{
			Prayer_Request_ID: i,
			Title:             fmt.Sprintf("Prayer %d", i),
			Body:              "Please pray",
			Category:          "personal",
			Approved:          models.ApprovalYes,
			Datetime_Create:   time.Now(),
		})
	}
	return items
}
