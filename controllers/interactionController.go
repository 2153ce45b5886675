package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SaintCentral/initializers"
	"github.com/SaintCentral/models"
	"github.com/doug-martin/goqu/v9"
)

type interactionRow struct {
	Prayer_Interaction_ID int       `db:"prayer_interaction_id"`
	Prayer_Request_ID     int       `db:"prayer_request_id"`
	Action_Kind           string    `db:"action_kind"`
	Action_Datetime       time.Time `db:"action_datetime"`
	Title                 string    `db:"title"`
	Body                  string    `db:"body"`
	Category              string    `db:"category"`
}

type interactionEntry struct {
	ActionKind string    `json:"actionKind"`
	CreatedAt  time.Time `json:"createdAt"`
}

// GroupedPrayerInteractions is one prayer with every action the user
// took on it, newest action first.
type GroupedPrayerInteractions struct {
	PrayerRequestID int                `json:"prayerRequestId"`
	Title           string             `json:"title"`
	Body            string             `json:"body"`
	Category        string             `json:"category"`
	Latest          time.Time          `json:"latestInteraction"`
	Actions         []interactionEntry `json:"actions"`
}

// GetUserInteractions lists the ledger for the authenticated user,
// grouped per prayer. filter=prayed (default) hides skips; filter=skipped
// shows only skips. Going back and re-acting leaves multiple actions per
// prayer, which is why the grouping exists at all.
// GET /users/me/interactions
func GetUserInteractions(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	filter := c.DefaultQuery("filter", "prayed")
	if filter != "prayed" && filter != "skipped" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "filter must be prayed or skipped"})
		return
	}

	query := initializers.DB.From("prayer_interaction").
		Join(
			goqu.T("prayer_request"),
			goqu.On(goqu.I("prayer_interaction.prayer_request_id").Eq(goqu.I("prayer_request.prayer_request_id"))),
		).
		Select(
			goqu.I("prayer_interaction.prayer_interaction_id"),
			goqu.I("prayer_interaction.prayer_request_id"),
			goqu.I("prayer_interaction.action_kind"),
			goqu.I("prayer_interaction.datetime_create").As("action_datetime"),
			goqu.I("prayer_request.title"),
			goqu.I("prayer_request.body"),
			goqu.I("prayer_request.category"),
		).
		Where(goqu.I("prayer_interaction.user_profile_id").Eq(user.User_Profile_ID)).
		Order(goqu.I("prayer_interaction.datetime_create").Desc())

	if filter == "skipped" {
		query = query.Where(goqu.I("prayer_interaction.action_kind").Eq(string(models.ActionSkipped)))
	} else {
		query = query.Where(goqu.I("prayer_interaction.action_kind").Neq(string(models.ActionSkipped)))
	}

	var rows []interactionRow
	if err := query.ScanStructs(&rows); err != nil {
		log.Printf("Failed to fetch interactions: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch interactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prayers": groupInteractionRows(rows)})
}

// groupInteractionRows folds ledger rows into one entry per prayer.
// Input is newest-first, so groups come out ordered by latest action and
// actions within a group stay newest-first.
func groupInteractionRows(rows []interactionRow) []GroupedPrayerInteractions {
	grouped := make([]GroupedPrayerInteractions, 0)
	index := make(map[int]int)

	for _, row := range rows {
		i, ok := index[row.Prayer_Request_ID]
		if !ok {
			i = len(grouped)
			index[row.Prayer_Request_ID] = i
			grouped = append(grouped, GroupedPrayerInteractions{
				PrayerRequestID: row.Prayer_Request_ID,
				Title:           row.Title,
				Body:            row.Body,
				Category:        row.Category,
				Latest:          row.Action_Datetime,
			})
		}
		grouped[i].Actions = append(grouped[i].Actions, interactionEntry{
			ActionKind: row.Action_Kind,
			CreatedAt:  row.Action_Datetime,
		})
	}
	return grouped
}

type savedPrayerRow struct {
	Prayer_Request_ID int       `db:"prayer_request_id"`
	Title             string    `db:"title"`
	Body              string    `db:"body"`
	Category          string    `db:"category"`
	Saved_At          time.Time `db:"saved_at"`
}

// GetSavedPrayers lists the user's saved prayers, most recently saved
// first.
// GET /users/me/saved
func GetSavedPrayers(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	var rows []savedPrayerRow
	err := initializers.DB.From("prayer_interaction").
		Join(
			goqu.T("prayer_request"),
			goqu.On(goqu.I("prayer_interaction.prayer_request_id").Eq(goqu.I("prayer_request.prayer_request_id"))),
		).
		Select(
			goqu.I("prayer_request.prayer_request_id"),
			goqu.I("prayer_request.title"),
			goqu.I("prayer_request.body"),
			goqu.I("prayer_request.category"),
			goqu.I("prayer_interaction.datetime_create").As("saved_at"),
		).
		Where(
			goqu.I("prayer_interaction.user_profile_id").Eq(user.User_Profile_ID),
			goqu.I("prayer_interaction.action_kind").Eq(string(models.ActionSaved)),
		).
		Order(goqu.I("prayer_interaction.datetime_create").Desc()).
		ScanStructs(&rows)
	if err != nil {
		log.Printf("Failed to fetch saved prayers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch saved prayers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": rows})
}

// UnsavePrayer removes a saved record from outside the live session,
// e.g. the saved-prayers list. Other action kinds are append-only and
// have no delete route.
// DELETE /users/me/saved/:prayer_request_id
func UnsavePrayer(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	prayerID, err := strconv.Atoi(c.Param("prayer_request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer ID", "details": err.Error()})
		return
	}

	result, err := initializers.DB.Delete("prayer_interaction").
		Where(
			goqu.C("prayer_request_id").Eq(prayerID),
			goqu.C("user_profile_id").Eq(user.User_Profile_ID),
			goqu.C("action_kind").Eq(string(models.ActionSaved)),
		).
		Executor().Exec()
	if err != nil {
		log.Printf("Failed to unsave prayer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsave prayer"})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer is not saved"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Prayer unsaved."})
}

// GetStreak reports the user's consecutive-day prayer streak as of the
// given date (default today). A day without a prayed record ends the
// streak, including the asOf day itself.
// GET /users/me/streak
func GetStreak(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	asOf := time.Now()
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "asOf must be YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	streak, err := streakCalc.Streak(c.Request.Context(), user.User_Profile_ID, asOf)
	if err != nil {
		log.Printf("Failed to compute streak: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute streak"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"streak": streak})
}
