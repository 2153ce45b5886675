package models

import "time"

// Reflection is a private journal entry a user writes about a prayer.
type Reflection struct {
	Reflection_ID     int       `json:"reflectionId" db:"reflection_id" goqu:"skipinsert"`
	Prayer_Request_ID int       `json:"prayerRequestId" db:"prayer_request_id"`
	User_Profile_ID   int       `json:"userProfileId" db:"user_profile_id"`
	Content           string    `json:"content" db:"content"`
	Datetime_Create   time.Time `json:"datetimeCreate" db:"datetime_create" goqu:"skipinsert"`
	Datetime_Update   time.Time `json:"datetimeUpdate" db:"datetime_update" goqu:"skipinsert"`
}

type ReflectionCreate struct {
	Content string `json:"content" binding:"required"`
}
