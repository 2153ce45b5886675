package services

import (
	"context"

	"github.com/SaintCentral/initializers"
	"github.com/SaintCentral/models"
	"github.com/doug-martin/goqu/v9"
)

// PrayerItemSource serves feed candidates from the prayer_request
// table. It implements feed.ItemSource.
type PrayerItemSource struct{}

func NewPrayerItemSource() *PrayerItemSource {
	return &PrayerItemSource{}
}

// FetchBatch returns up to limit approved requests the actor does not
// own and has not acted on or seen, newest first. The queue builder
// shuffles; ordering here is not part of the contract. An empty result
// means the actor is caught up.
func (s *PrayerItemSource) FetchBatch(ctx context.Context, actorID int, exclude map[int]struct{}, limit int) ([]models.PrayerItem, error) {
	query := initializers.DB.From("prayer_request").
		Select("prayer_request_id", "title", "body", "category", "owner_id", "approved", "datetime_create").
		Where(
			goqu.C("approved").Eq(models.ApprovalYes),
			goqu.Or(
				goqu.C("owner_id").IsNull(),
				goqu.C("owner_id").Neq(actorID),
			),
		).
		Order(goqu.C("datetime_create").Desc()).
		Limit(uint(limit))

	if len(exclude) > 0 {
		ids := make([]int, 0, len(exclude))
		for id := range exclude {
			ids = append(ids, id)
		}
		query = query.Where(goqu.C("prayer_request_id").NotIn(ids))
	}

	var items []models.PrayerItem
	if err := query.ScanStructsContext(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
