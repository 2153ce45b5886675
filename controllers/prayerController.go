package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SaintCentral/initializers"
	"github.com/SaintCentral/models"
	"github.com/doug-martin/goqu/v9"
)

type ownPrayerRow struct {
	Prayer_Request_ID int       `db:"prayer_request_id"`
	Title             string    `db:"title"`
	Body              string    `db:"body"`
	Category          string    `db:"category"`
	Approved          string    `db:"approved"`
	Datetime_Create   time.Time `db:"datetime_create"`
	Reflection_Count  int       `db:"reflection_count"`
}

// GetUserPrayers lists the authenticated user's own submissions with
// their reflection counts, newest first. Own submissions never appear
// in the user's feed; this is the only place they surface.
// GET /users/me/prayers
func GetUserPrayers(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var rows []ownPrayerRow
	err := initializers.DB.From("prayer_request").
		LeftJoin(
			goqu.T("reflection"),
			goqu.On(goqu.I("reflection.prayer_request_id").Eq(goqu.I("prayer_request.prayer_request_id"))),
		).
		Select(
			goqu.I("prayer_request.prayer_request_id"),
			goqu.I("prayer_request.title"),
			goqu.I("prayer_request.body"),
			goqu.I("prayer_request.category"),
			goqu.I("prayer_request.approved"),
			goqu.I("prayer_request.datetime_create"),
			goqu.COUNT(goqu.I("reflection.reflection_id")).As("reflection_count"),
		).
		Where(goqu.I("prayer_request.owner_id").Eq(user.User_Profile_ID)).
		GroupBy(
			goqu.I("prayer_request.prayer_request_id"),
			goqu.I("prayer_request.title"),
			goqu.I("prayer_request.body"),
			goqu.I("prayer_request.category"),
			goqu.I("prayer_request.approved"),
			goqu.I("prayer_request.datetime_create"),
		).
		Order(goqu.I("prayer_request.datetime_create").Desc()).
		ScanStructs(&rows)
	if err != nil {
		log.Printf("Failed to fetch user prayers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch prayers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prayers": rows})
}
