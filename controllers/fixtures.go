package controllers

import (
	"time"

	"github.com/SaintCentral/models"
	"golang.org/x/crypto/bcrypt"
)

// Test fixture data for use in tests

// MockUser creates a sample user profile for testing
func MockUser() models.UserProfile {
	display := "Test User"
	return models.UserProfile{
		User_Profile_ID: 1,
		Username:        "testuser",
		Display_Name:    &display,
		Email:           "test@example.com",
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockUserWithPassword creates a sample user with a bcrypt hashed password
// Password is "password123" - use this in tests
func MockUserWithPassword() models.UserProfile {
	display := "Test User"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	return models.UserProfile{
		User_Profile_ID: 1,
		Username:        "testuser",
		Password:        string(hashedPassword),
		Display_Name:    &display,
		Email:           "test@example.com",
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockPrayerItem creates a sample feed item for testing
func MockPrayerItem(id int) models.PrayerItem {
	owner := 99
	return models.PrayerItem{
		Prayer_Request_ID: id,
		Title:             "Test Prayer",
		Body:              "Please pray for this",
		Category:          "personal",
		Owner_ID:          &owner,
		Approved:          models.ApprovalYes,
		Datetime_Create:   time.Now(),
	}
}
