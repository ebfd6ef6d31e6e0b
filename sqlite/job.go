package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tourfame/tourpipe"
)

// Compile-time interface verification.
var _ tourpipe.JobService = (*JobService)(nil)

// JobService implements tourpipe.JobService using SQLite.
type JobService struct {
	db *DB
}

// NewJobService creates a new JobService.
func NewJobService(db *DB) *JobService {
	return &JobService{db: db}
}

// CreateJob creates a new job in the pending state.
func (s *JobService) CreateJob(ctx context.Context, job *tourpipe.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}

	job.ID = uuid.New().String()
	job.Status = tourpipe.JobPending
	job.CreatedAt = time.Now().UTC()
	job.UpdatedAt = job.CreatedAt

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO jobs (id, listing_url, status, error, records, documents, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, job.ID, job.ListingURL, job.Status, job.Error, job.Records, job.Documents,
		job.CreatedAt.Format(time.RFC3339), job.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindJobByID retrieves a job by ID.
func (s *JobService) FindJobByID(ctx context.Context, id string) (*tourpipe.Job, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, listing_url, status, error, records, documents, created_at, updated_at
		FROM jobs
		WHERE id = ?
	`, id)

	job, err := scanJob(row.Scan)
	if err == sql.ErrNoRows {
		return nil, tourpipe.Errorf(tourpipe.ENOTFOUND, "job not found")
	}
	if err != nil {
		return nil, err
	}

	return job, nil
}

// FindJobs retrieves jobs matching the filter, newest first.
func (s *JobService) FindJobs(ctx context.Context, filter tourpipe.JobFilter) ([]*tourpipe.Job, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, listing_url, status, error, records, documents, created_at, updated_at FROM jobs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, *filter.Status)
	}
	if filter.ListingURL != nil {
		query.WriteString(" AND listing_url = ?")
		args = append(args, *filter.ListingURL)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*tourpipe.Job
	for rows.Next() {
		job, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

// UpdateJob updates an existing job.
func (s *JobService) UpdateJob(ctx context.Context, id string, upd tourpipe.JobUpdate) (*tourpipe.Job, error) {
	job, err := s.FindJobByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Status != nil {
		job.Status = *upd.Status
	}
	if upd.Error != nil {
		job.Error = *upd.Error
	}
	if upd.Records != nil {
		job.Records = *upd.Records
	}
	if upd.Documents != nil {
		job.Documents = *upd.Documents
	}
	job.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE jobs
		SET status = ?, error = ?, records = ?, documents = ?, updated_at = ?
		WHERE id = ?
	`, job.Status, job.Error, job.Records, job.Documents,
		job.UpdatedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return job, nil
}

// scanJob scans one jobs row using the given scan function.
func scanJob(scan func(...any) error) (*tourpipe.Job, error) {
	var job tourpipe.Job
	var createdAt, updatedAt string

	if err := scan(&job.ID, &job.ListingURL, &job.Status, &job.Error,
		&job.Records, &job.Documents, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if job.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if job.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &job, nil
}
