package contact

import (
	"context"
	"testing"

	"portfolio/internal/apperr"
	"portfolio/internal/jobs"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testService(t *testing.T, notifyEmail string) *Service {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(&Contact{}, &jobs.Job{}))
	return NewService(gdb, notifyEmail)
}

func jobCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&jobs.Job{}).Count(&n).Error)
	return n
}

func TestSubmit_EnqueuesNotification(t *testing.T) {
	s := testService(t, "owner@example.com")
	ctx := context.Background()

	c := Contact{Name: "Sam", Email: "sam@example.com", Subject: "Hi", Message: "Hello there"}
	require.NoError(t, s.Submit(ctx, &c))
	assert.NotZero(t, c.ID)
	assert.False(t, c.Read)

	assert.EqualValues(t, 1, jobCount(t, s.DB))
}

func TestSubmit_NoNotifyAddress(t *testing.T) {
	s := testService(t, "")

	c := Contact{Name: "Sam", Email: "sam@example.com", Subject: "Hi", Message: "Hello"}
	require.NoError(t, s.Submit(context.Background(), &c))

	assert.Zero(t, jobCount(t, s.DB), "no owner address, no notification")
}

func TestMarkAsRead(t *testing.T) {
	s := testService(t, "")
	ctx := context.Background()

	c := Contact{Name: "Sam", Email: "sam@example.com", Subject: "Hi", Message: "Hello"}
	require.NoError(t, s.Submit(ctx, &c))

	n, err := s.UnreadCount(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := s.MarkAsRead(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, got.Read)

	n, err = s.UnreadCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestMarkAsRead_NotFound(t *testing.T) {
	s := testService(t, "")

	_, err := s.MarkAsRead(context.Background(), 404)
	assert.Equal(t, apperr.CodeNotFound, apperr.From(err).Code)
}
