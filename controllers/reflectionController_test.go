package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func reflectionColumns() []string {
	return []string{"reflection_id", "prayer_request_id", "user_profile_id", "content", "datetime_create", "datetime_update"}
}

func reflectionBody(t *testing.T, content string) *http.Request {
	raw, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		t.Fatalf("failed to marshal reflection body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/prayers/5/reflections", bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestGetReflections(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	rows := sqlmock.NewRows(reflectionColumns()).
		AddRow(2, 5, 1, "Grateful for answered prayer", now, now).
		AddRow(1, 5, 1, "Still waiting on this one", now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT .* FROM "reflection" WHERE \(\("prayer_request_id" = 5\) AND \("user_profile_id" = 1\)\)`).
		WillReturnRows(rows)

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockUser())
	c.Params = gin.Params{{Key: "prayer_request_id", Value: "5"}}

	GetReflections(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Grateful for answered prayer")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReflection(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "prayer_request" WHERE \("prayer_request_id" = 5\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO "reflection" .* RETURNING`).
		WillReturnRows(sqlmock.NewRows(reflectionColumns()).
			AddRow(3, 5, 1, "He is faithful", now, now))

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockUser())
	c.Params = gin.Params{{Key: "prayer_request_id", Value: "5"}}
	c.Request = reflectionBody(t, "He is faithful")

	CreateReflection(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Reflection created")
	assert.Contains(t, w.Body.String(), "He is faithful")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReflectionPrayerNotFound(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "prayer_request"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockUser())
	c.Params = gin.Params{{Key: "prayer_request_id", Value: "404"}}
	c.Request = reflectionBody(t, "He is faithful")

	CreateReflection(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateReflection(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantStatus   int
	}{
		{"own reflection is updated", 1, http.StatusOK},
		{"missing or foreign reflection", 0, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			mock.ExpectExec(`UPDATE "reflection" SET`).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockUser())
			c.Params = gin.Params{{Key: "reflection_id", Value: "3"}}
			c.Request = reflectionBody(t, "Updated entry")

			UpdateReflection(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestDeleteReflection(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantStatus   int
	}{
		{"own reflection is deleted", 1, http.StatusOK},
		{"missing or foreign reflection", 0, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			mock.ExpectExec(`DELETE FROM "reflection" WHERE`).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockUser())
			c.Params = gin.Params{{Key: "reflection_id", Value: "3"}}

			DeleteReflection(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
