package feed

import (
	"context"
	"time"

	"github.com/SaintCentral/models"
)

// StreakCalculator derives the consecutive-day prayer streak from the
// ledger. Nothing is cached; every call re-reads the store, so there is
// no invalidation to get wrong.
type StreakCalculator struct {
	store InteractionStore
	loc   *time.Location
}

func NewStreakCalculator(store InteractionStore, loc *time.Location) *StreakCalculator {
	if loc == nil {
		loc = time.Local
	}
	return &StreakCalculator{store: store, loc: loc}
}

func (c *StreakCalculator) Streak(ctx context.Context, actorID int, asOf time.Time) (int, error) {
	records, err := c.store.ListByActor(ctx, actorID, []models.ActionKind{models.ActionPrayed})
	if err != nil {
		return 0, err
	}
	return StreakFromRecords(records, asOf, c.loc), nil
}

const dayKey = "2006-01-02"

// StreakFromRecords reduces prayed records to distinct calendar days in
// loc, then walks backward from asOf counting consecutive present days.
// A miss on asOf itself yields zero.
func StreakFromRecords(records []models.InteractionRecord, asOf time.Time, loc *time.Location) int {
	days := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if rec.Action_Kind != models.ActionPrayed {
			continue
		}
		days[rec.Datetime_Create.In(loc).Format(dayKey)] = struct{}{}
	}

	streak := 0
	day := asOf.In(loc)
	for {
		if _, ok := days[day.Format(dayKey)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
