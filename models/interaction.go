package models

import (
	"fmt"
	"strings"
	"time"
)

// ActionKind categorizes one interaction with a prayer. Kinds are
// append-only history except for ActionSaved, which may be toggled off.
type ActionKind string

const (
	ActionPrayed  ActionKind = "prayed"
	ActionSkipped ActionKind = "skipped"
	ActionSaved   ActionKind = "saved"
)

const reactionPrefix = "reaction:"

// ReactionPresets is the closed set of preset reaction keys offered by
// the client's reaction sheet.
var ReactionPresets = []string{"love", "praying", "morning", "night"}

// ReactionKind builds the action kind for a preset reaction key.
func ReactionKind(key string) (ActionKind, error) {
	for _, preset := range ReactionPresets {
		if key == preset {
			return ActionKind(reactionPrefix + key), nil
		}
	}
	return "", fmt.Errorf("unknown reaction key %q", key)
}

// IsReaction reports whether the kind is a preset reaction.
func (k ActionKind) IsReaction() bool {
	return strings.HasPrefix(string(k), reactionPrefix)
}

// Valid reports whether the kind is one the ledger accepts.
func (k ActionKind) Valid() bool {
	switch k {
	case ActionPrayed, ActionSkipped, ActionSaved:
		return true
	}
	if key, ok := strings.CutPrefix(string(k), reactionPrefix); ok {
		_, err := ReactionKind(key)
		return err == nil
	}
	return false
}

// InteractionRecord is one ledger row. At most one record exists per
// (prayer, user, kind) tuple; the unique constraint on the
// prayer_interaction table enforces it.
type InteractionRecord struct {
	Prayer_Interaction_ID int        `json:"prayerInteractionId" db:"prayer_interaction_id" goqu:"skipinsert"`
	Prayer_Request_ID     int        `json:"prayerRequestId" db:"prayer_request_id"`
	User_Profile_ID       int        `json:"userProfileId" db:"user_profile_id"`
	Action_Kind           ActionKind `json:"actionKind" db:"action_kind"`
	Datetime_Create       time.Time  `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
}
