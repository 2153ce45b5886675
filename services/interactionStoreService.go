package services

import (
	"context"
	"time"

	"github.com/SaintCentral/initializers"
	"github.com/SaintCentral/models"
	"github.com/doug-martin/goqu/v9"
)

// InteractionLedger persists interaction records in the
// prayer_interaction table. The unique constraint on
// (prayer_request_id, user_profile_id, action_kind) is the idempotency
// and double-tap protection; no client-side debouncing is assumed. It
// implements feed.InteractionStore.
type InteractionLedger struct{}

func NewInteractionLedger() *InteractionLedger {
	return &InteractionLedger{}
}

// Upsert inserts one record. A duplicate tuple is a silent no-op so
// retries after timed-out writes stay safe.
func (l *InteractionLedger) Upsert(ctx context.Context, itemID, actorID int, kind models.ActionKind, at time.Time) error {
	insert := initializers.DB.Insert("prayer_interaction").
		Rows(goqu.Record{
			"prayer_request_id": itemID,
			"user_profile_id":   actorID,
			"action_kind":       string(kind),
			"datetime_create":   at,
		}).
		OnConflict(goqu.DoNothing()).
		Executor()

	_, err := insert.ExecContext(ctx)
	return err
}

// Delete removes the record for one tuple and reports whether a row
// existed. Only the saved kind is deletable by callers; the restriction
// lives in the recorder, not here.
func (l *InteractionLedger) Delete(ctx context.Context, itemID, actorID int, kind models.ActionKind) (bool, error) {
	del := initializers.DB.Delete("prayer_interaction").
		Where(
			goqu.C("prayer_request_id").Eq(itemID),
			goqu.C("user_profile_id").Eq(actorID),
			goqu.C("action_kind").Eq(string(kind)),
		).
		Executor()

	result, err := del.ExecContext(ctx)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ListByActor returns the actor's records newest first, optionally
// narrowed to the given kinds.
func (l *InteractionLedger) ListByActor(ctx context.Context, actorID int, kinds []models.ActionKind) ([]models.InteractionRecord, error) {
	query := initializers.DB.From("prayer_interaction").
		Select("prayer_interaction_id", "prayer_request_id", "user_profile_id", "action_kind", "datetime_create").
		Where(goqu.C("user_profile_id").Eq(actorID)).
		Order(goqu.C("datetime_create").Desc())

	if len(kinds) > 0 {
		vals := make([]string, 0, len(kinds))
		for _, kind := range kinds {
			vals = append(vals, string(kind))
		}
		query = query.Where(goqu.C("action_kind").In(vals))
	}

	var records []models.InteractionRecord
	if err := query.ScanStructsContext(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
