package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SaintCentral/initializers"
	"github.com/SaintCentral/models"
	"github.com/doug-martin/goqu/v9"
)

// GetReflections lists the user's journal entries for one prayer,
// newest first. Reflections are private to their author.
// GET /prayers/:prayer_request_id/reflections
func GetReflections(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	prayerID, err := strconv.Atoi(c.Param("prayer_request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer ID", "details": err.Error()})
		return
	}

	var reflections []models.Reflection
	err = initializers.DB.From("reflection").
		Where(
			goqu.C("prayer_request_id").Eq(prayerID),
			goqu.C("user_profile_id").Eq(user.User_Profile_ID),
		).
		Order(goqu.C("datetime_create").Desc()).
		ScanStructs(&reflections)
	if err != nil {
		log.Printf("Failed to fetch reflections: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reflections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reflections": reflections})
}

// CreateReflection adds a journal entry to a prayer.
// POST /prayers/:prayer_request_id/reflections
func CreateReflection(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	prayerID, err := strconv.Atoi(c.Param("prayer_request_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid prayer ID", "details": err.Error()})
		return
	}

	var body models.ReflectionCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var prayerCount int64
	_, err = initializers.DB.From("prayer_request").
		Select(goqu.COUNT("*")).
		Where(goqu.C("prayer_request_id").Eq(prayerID)).
		ScanVal(&prayerCount)
	if err != nil || prayerCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prayer not found"})
		return
	}

	var created models.Reflection
	insert := initializers.DB.Insert("reflection").
		Rows(goqu.Record{
			"prayer_request_id": prayerID,
			"user_profile_id":   user.User_Profile_ID,
			"content":           body.Content,
		}).
		Returning("reflection_id", "prayer_request_id", "user_profile_id", "content", "datetime_create", "datetime_update")

	if _, err := insert.Executor().ScanStruct(&created); err != nil {
		log.Printf("Failed to create reflection: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reflection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Reflection created.",
		"reflection": created,
	})
}

// UpdateReflection edits an entry. Only the author may edit.
// PUT /prayers/:prayer_request_id/reflections/:reflection_id
func UpdateReflection(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	reflectionID, err := strconv.Atoi(c.Param("reflection_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reflection ID", "details": err.Error()})
		return
	}

	var body models.ReflectionCreate
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := initializers.DB.Update("reflection").
		Set(goqu.Record{
			"content":         body.Content,
			"datetime_update": goqu.L("NOW()"),
		}).
		Where(
			goqu.C("reflection_id").Eq(reflectionID),
			goqu.C("user_profile_id").Eq(user.User_Profile_ID),
		).
		Executor().Exec()
	if err != nil {
		log.Printf("Failed to update reflection: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reflection"})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reflection not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reflection updated."})
}

// DeleteReflection removes an entry. Only the author may delete.
// DELETE /prayers/:prayer_request_id/reflections/:reflection_id
func DeleteReflection(c *gin.Context) {
	user := c.MustGet("currentUser").(models.UserProfile)

	reflectionID, err := strconv.Atoi(c.Param("reflection_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reflection ID", "details": err.Error()})
		return
	}

	result, err := initializers.DB.Delete("reflection").
		Where(
			goqu.C("reflection_id").Eq(reflectionID),
			goqu.C("user_profile_id").Eq(user.User_Profile_ID),
		).
		Executor().Exec()
	if err != nil {
		log.Printf("Failed to delete reflection: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reflection"})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reflection not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reflection deleted."})
}
