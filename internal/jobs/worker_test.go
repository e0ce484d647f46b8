package jobs

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMailer struct {
	sent []string
	err  error
}

func (m *fakeMailer) Send(to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, to)
	return nil
}

func testWorker(t *testing.T) (*Worker, *fakeMailer, *gorm.DB) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(&Job{}))
	m := &fakeMailer{}
	return &Worker{ID: "test-worker", Repo: &Repo{DB: gdb}, Mailer: m}, m, gdb
}

func enqueue(t *testing.T, db *gorm.DB, to string) *Job {
	t.Helper()
	require.NoError(t, EnqueueEmail(db, to, "Subject", "<p>body</p>"))
	var job Job
	require.NoError(t, db.Order("id desc").First(&job).Error)
	return &job
}

func reload(t *testing.T, db *gorm.DB, id uint64) Job {
	t.Helper()
	var job Job
	require.NoError(t, db.First(&job, "id = ?", id).Error)
	return job
}

func TestHandle_DeliversAndMarksDone(t *testing.T) {
	w, m, db := testWorker(t)

	job := enqueue(t, db, "reader@example.com")
	assert.Equal(t, "PENDING", job.Status)
	assert.EqualValues(t, 8, job.MaxAttempts)

	w.Handle(job)

	assert.Equal(t, []string{"reader@example.com"}, m.sent)
	assert.Equal(t, "DONE", reload(t, db, job.ID).Status)
}

func TestHandle_SendFailureSchedulesRetry(t *testing.T) {
	w, m, db := testWorker(t)
	m.err = errors.New("smtp: connection refused")

	job := enqueue(t, db, "reader@example.com")
	w.Handle(job)

	got := reload(t, db, job.ID)
	assert.Equal(t, "PENDING", got.Status, "failed sends go back in the queue")
	assert.Equal(t, 1, got.Attempts)
	assert.True(t, got.RunAt.After(time.Now()), "the retry is due in the future")
	require.NotNil(t, got.LastError)
	assert.Contains(t, *got.LastError, "connection refused")
}

func TestHandle_LastAttemptFails(t *testing.T) {
	w, m, db := testWorker(t)
	m.err = errors.New("smtp: permanent failure")

	job := enqueue(t, db, "reader@example.com")
	job.Attempts = job.MaxAttempts - 1
	w.Handle(job)

	assert.Equal(t, "FAILED", reload(t, db, job.ID).Status)
}

func TestHandle_BadPayload(t *testing.T) {
	w, _, db := testWorker(t)

	job := &Job{Type: TypeEmailDispatch, Payload: []byte("{not json"), RunAt: time.Now(), Status: "PENDING"}
	require.NoError(t, db.Create(job).Error)
	w.Handle(job)

	assert.Equal(t, "FAILED", reload(t, db, job.ID).Status)
}

func TestHandle_MissingRecipient(t *testing.T) {
	w, m, db := testWorker(t)

	job := enqueue(t, db, "")
	w.Handle(job)

	got := reload(t, db, job.ID)
	assert.Equal(t, "FAILED", got.Status)
	assert.Empty(t, m.sent)
}

func TestHandle_UnknownType(t *testing.T) {
	w, _, db := testWorker(t)

	job := &Job{Type: "REINDEX", Payload: []byte("{}"), RunAt: time.Now(), Status: "PENDING"}
	require.NoError(t, db.Create(job).Error)
	w.Handle(job)

	assert.Equal(t, "FAILED", reload(t, db, job.ID).Status)
}

func TestBackoff(t *testing.T) {
	assert.Equal(t, 2*time.Second, Backoff(1))
	assert.Equal(t, 8*time.Second, Backoff(3))
	assert.Equal(t, 600*time.Second, Backoff(20), "capped at ten minutes")
}
