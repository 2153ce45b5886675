package models

import "time"

// Approval states assigned by the submission pipeline. Only approved
// requests are eligible for the feed.
const (
	ApprovalYes     = "yes"
	ApprovalNo      = "no"
	ApprovalPending = "pending"
)

// PrayerItem is one prayer request as served into a feed session.
// Immutable once fetched; the feed never writes back to prayer_request.
type PrayerItem struct {
	Prayer_Request_ID int       `json:"prayerRequestId" db:"prayer_request_id" goqu:"skipinsert"`
	Title             string    `json:"title" db:"title"`
	Body              string    `json:"body" db:"body"`
	Category          string    `json:"category" db:"category"`
	Owner_ID          *int      `json:"ownerId" db:"owner_id"`
	Approved          string    `json:"approved" db:"approved"`
	Datetime_Create   time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
}
