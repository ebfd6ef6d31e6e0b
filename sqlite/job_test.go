package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourfame/tourpipe"
	"github.com/tourfame/tourpipe/sqlite"
)

func TestJobService_CreateJob(t *testing.T) {
	t.Parallel()

	t.Run("creates pending job with generated ID", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewJobService(db)

		job := &tourpipe.Job{ListingURL: "https://example.com/turlar"}
		require.NoError(t, s.CreateJob(context.Background(), job))

		assert.NotEmpty(t, job.ID)
		assert.Equal(t, tourpipe.JobPending, job.Status)
		assert.False(t, job.CreatedAt.IsZero())

		got, err := s.FindJobByID(context.Background(), job.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/turlar", got.ListingURL)
		assert.Equal(t, tourpipe.JobPending, got.Status)
	})

	t.Run("rejects job without listing URL", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewJobService(db)

		err := s.CreateJob(context.Background(), &tourpipe.Job{})

		assert.Equal(t, tourpipe.EINVALID, tourpipe.ErrorCode(err))
	})
}

func TestJobService_FindJobByID_NotFound(t *testing.T) {
	t.Parallel()

	db := MustOpenDB(t)
	s := sqlite.NewJobService(db)

	_, err := s.FindJobByID(context.Background(), "does-not-exist")

	assert.Equal(t, tourpipe.ENOTFOUND, tourpipe.ErrorCode(err))
}

func TestJobService_FindJobs(t *testing.T) {
	t.Parallel()

	t.Run("filters by status", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewJobService(db)

		a := MustCreateJob(t, db, "https://a.example.com/turlar")
		MustCreateJob(t, db, "https://b.example.com/turlar")

		running := tourpipe.JobRunning
		_, err := s.UpdateJob(context.Background(), a.ID, tourpipe.JobUpdate{Status: &running})
		require.NoError(t, err)

		jobs, err := s.FindJobs(context.Background(), tourpipe.JobFilter{Status: &running})
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, a.ID, jobs[0].ID)
	})

	t.Run("respects limit", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewJobService(db)

		MustCreateJob(t, db, "https://a.example.com/turlar")
		MustCreateJob(t, db, "https://b.example.com/turlar")
		MustCreateJob(t, db, "https://c.example.com/turlar")

		jobs, err := s.FindJobs(context.Background(), tourpipe.JobFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})
}

func TestJobService_UpdateJob(t *testing.T) {
	t.Parallel()

	t.Run("updates status, error and counters", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewJobService(db)
		job := MustCreateJob(t, db, "https://example.com/turlar")

		failed := tourpipe.JobFailed
		errMsg := "no tours extracted"
		records := 0
		documents := 3

		got, err := s.UpdateJob(context.Background(), job.ID, tourpipe.JobUpdate{
			Status:    &failed,
			Error:     &errMsg,
			Records:   &records,
			Documents: &documents,
		})

		require.NoError(t, err)
		assert.Equal(t, tourpipe.JobFailed, got.Status)
		assert.Equal(t, "no tours extracted", got.Error)
		assert.Equal(t, 3, got.Documents)

		reloaded, err := s.FindJobByID(context.Background(), job.ID)
		require.NoError(t, err)
		assert.Equal(t, tourpipe.JobFailed, reloaded.Status)
	})

	t.Run("missing job is ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		db := MustOpenDB(t)
		s := sqlite.NewJobService(db)

		_, err := s.UpdateJob(context.Background(), "does-not-exist", tourpipe.JobUpdate{})

		assert.Equal(t, tourpipe.ENOTFOUND, tourpipe.ErrorCode(err))
	})
}
