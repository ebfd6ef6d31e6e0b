package tourpipe

import (
	"context"
	"time"
)

// JobStatus is the lifecycle state of a pipeline job.
type JobStatus string

// Job lifecycle states.
const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Job is one pipeline invocation against one listing URL. It is the unit
// of retry and of partial-failure isolation: entities created by a job are
// owned exclusively by it and are never shared across concurrent jobs.
type Job struct {
	ID         string    `json:"id"`
	ListingURL string    `json:"listingUrl"`
	Status     JobStatus `json:"status"`
	Error      string    `json:"error"`
	Records    int       `json:"records"`
	Documents  int       `json:"documents"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Validate returns an error if the job contains invalid fields.
func (j *Job) Validate() error {
	if j.ListingURL == "" {
		return Errorf(EINVALID, "job listing URL required")
	}
	return nil
}

// JobUpdate represents fields that can be updated on a job.
type JobUpdate struct {
	Status    *JobStatus `json:"status"`
	Error     *string    `json:"error"`
	Records   *int       `json:"records"`
	Documents *int       `json:"documents"`
}

// JobFilter represents a filter for FindJobs.
type JobFilter struct {
	ID         *string    `json:"id"`
	Status     *JobStatus `json:"status"`
	ListingURL *string    `json:"listingUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// JobService represents a service for managing pipeline jobs.
type JobService interface {
	// CreateJob creates a new job in the pending state.
	CreateJob(ctx context.Context, job *Job) error

	// FindJobByID retrieves a job by ID.
	// Returns ENOTFOUND if the job does not exist.
	FindJobByID(ctx context.Context, id string) (*Job, error)

	// FindJobs retrieves jobs matching the filter, newest first.
	FindJobs(ctx context.Context, filter JobFilter) ([]*Job, error)

	// UpdateJob updates an existing job.
	// Returns ENOTFOUND if the job does not exist.
	UpdateJob(ctx context.Context, id string, upd JobUpdate) (*Job, error)
}
