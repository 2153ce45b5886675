package models

import "time"

type UserProfile struct {
	User_Profile_ID int       `json:"userProfileId" goqu:"skipinsert"`
	Username        string    `json:"username"`
	Password        string    `json:"-"`
	Display_Name    *string   `json:"displayName"`
	Email           string    `json:"email"`
	Admin           bool      `json:"admin" goqu:"skipinsert"`
	Datetime_Create time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type UserProfileSignup struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	Email        string `json:"email"`
	Display_Name string `json:"displayName"`
}

type Login struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
