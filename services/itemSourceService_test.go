package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func prayerItemColumns() []string {
	return []string{
		"prayer_request_id", "title", "body", "category", "owner_id", "approved", "datetime_create",
	}
}

func TestPrayerItemSourceFetchBatch(t *testing.T) {
	mock := setupMockDB(t)
	source := NewPrayerItemSource()

	now := time.Now()
	rows := sqlmock.NewRows(prayerItemColumns()).
		AddRow(3, "Healing for mom", "She goes in for surgery Friday", "health", 21, "yes", now).
		AddRow(2, "New job", "Interviewing all week", "work", nil, "yes", now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT .* FROM "prayer_request" WHERE \(\("approved" = 'yes'\) AND \(\("owner_id" IS NULL\) OR \("owner_id" != 7\)\)\) ORDER BY "datetime_create" DESC LIMIT 10`).
		WillReturnRows(rows)

	items, err := source.FetchBatch(context.Background(), 7, nil, 10)
	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Prayer_Request_ID)
	assert.Equal(t, "Healing for mom", items[0].Title)
	assert.NotNil(t, items[0].Owner_ID)
	assert.Equal(t, 21, *items[0].Owner_ID)
	assert.Nil(t, items[1].Owner_ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrayerItemSourceFetchBatchWithExclusions(t *testing.T) {
	mock := setupMockDB(t)
	source := NewPrayerItemSource()

	rows := sqlmock.NewRows(prayerItemColumns()).
		AddRow(9, "Travel mercies", "Long drive home Sunday", "personal", nil, "yes", time.Now())

	mock.ExpectQuery(`SELECT .* FROM "prayer_request" WHERE .*"prayer_request_id" NOT IN \(4\).* LIMIT 10`).
		WillReturnRows(rows)

	items, err := source.FetchBatch(context.Background(), 7, map[int]struct{}{4: {}}, 10)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 9, items[0].Prayer_Request_ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPrayerItemSourceFetchBatchEmpty(t *testing.T) {
	mock := setupMockDB(t)
	source := NewPrayerItemSource()

	mock.ExpectQuery(`SELECT .* FROM "prayer_request"`).
		WillReturnRows(sqlmock.NewRows(prayerItemColumns()))

	items, err := source.FetchBatch(context.Background(), 7, nil, 10)
	assert.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}
