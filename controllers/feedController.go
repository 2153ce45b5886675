package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SaintCentral/feed"
	"github.com/SaintCentral/models"
	"github.com/SaintCentral/services"
)

var (
	feedManager *feed.Manager
	streakCalc  *feed.StreakCalculator
)

// InitFeed wires the feed core to the goqu-backed stores. Call once at
// startup, after the database connection exists.
func InitFeed() {
	ledger := services.NewInteractionLedger()
	feedManager = feed.NewManager(services.NewPrayerItemSource(), feed.NewRecorder(ledger))
	streakCalc = feed.NewStreakCalculator(ledger, time.Local)
}

func currentSession(c *gin.Context) *feed.Session {
	user := c.MustGet("currentUser").(models.UserProfile)
	return feedManager.Session(c.Request.Context(), user.User_Profile_ID)
}

// GetFeed returns the actor's session snapshot: state, current item,
// progress, canGoBack, hasMore.
// GET /feed
func GetFeed(c *gin.Context) {
	session := currentSession(c)
	c.JSON(http.StatusOK, session.Snapshot())
}

type advanceRequest struct {
	Action models.ActionKind `json:"action" binding:"required"`
}

// AdvanceFeed records the action for the current item and steps
// forward. Advancement is local and immediate; the ledger write rides a
// background queue and never gates the response.
// POST /feed/advance
func AdvanceFeed(c *gin.Context) {
	var req advanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Action.Valid() || req.Action == models.ActionSaved {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid action kind"})
		return
	}

	session := currentSession(c)
	session.Advance(req.Action)
	c.JSON(http.StatusOK, session.Snapshot())
}

// GoBackFeed steps to the previous item without touching the ledger.
// POST /feed/back
func GoBackFeed(c *gin.Context) {
	session := currentSession(c)
	if session.GoBack() == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "nothing to go back to"})
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

// ToggleSaveFeed flips the saved record for the current item. The
// response is the ledger's word, not the client's guess.
// POST /feed/save
func ToggleSaveFeed(c *gin.Context) {
	session := currentSession(c)

	saved, err := session.ToggleSave(c.Request.Context())
	if err == feed.ErrNoCurrentItem {
		c.JSON(http.StatusConflict, gin.H{"error": "no current item"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle save"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

type reactRequest struct {
	Key     string `json:"key" binding:"required"`
	Advance bool   `json:"advance"`
}

// ReactFeed records a preset reaction for the current item. Reactions
// never advance by themselves; when the client wants pray-like
// advancement it sends advance=true and the step happens after the
// reaction is recorded, without writing a second record.
// POST /feed/react
func ReactFeed(c *gin.Context) {
	var req reactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session := currentSession(c)
	if err := session.React(req.Key); err != nil {
		if err == feed.ErrNoCurrentItem {
			c.JSON(http.StatusConflict, gin.H{"error": "no current item"})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}
	if req.Advance {
		session.StepForward()
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

// RequestMoreFeed fetches the next batch. The queue never refetches on
// its own when it runs dry; exhaustion is surfaced and the client asks
// for more explicitly.
// POST /feed/more
func RequestMoreFeed(c *gin.Context) {
	session := currentSession(c)
	if err := session.RequestMore(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch feed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}

// RefreshFeed performs a full reset: the seen-id set is cleared and a
// fresh batch fetched, so items skipped this session may reappear.
// POST /feed/refresh
func RefreshFeed(c *gin.Context) {
	session := currentSession(c)
	if err := session.Reset(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh feed", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session.Snapshot())
}
