package mock

import (
	"context"

	"github.com/tourfame/tourpipe"
)

var _ tourpipe.JobService = (*JobService)(nil)

// JobService is a mock implementation of tourpipe.JobService.
type JobService struct {
	CreateJobFn   func(ctx context.Context, job *tourpipe.Job) error
	FindJobByIDFn func(ctx context.Context, id string) (*tourpipe.Job, error)
	FindJobsFn    func(ctx context.Context, filter tourpipe.JobFilter) ([]*tourpipe.Job, error)
	UpdateJobFn   func(ctx context.Context, id string, upd tourpipe.JobUpdate) (*tourpipe.Job, error)
}

func (s *JobService) CreateJob(ctx context.Context, job *tourpipe.Job) error {
	return s.CreateJobFn(ctx, job)
}

func (s *JobService) FindJobByID(ctx context.Context, id string) (*tourpipe.Job, error) {
	return s.FindJobByIDFn(ctx, id)
}

func (s *JobService) FindJobs(ctx context.Context, filter tourpipe.JobFilter) ([]*tourpipe.Job, error) {
	return s.FindJobsFn(ctx, filter)
}

func (s *JobService) UpdateJob(ctx context.Context, id string, upd tourpipe.JobUpdate) (*tourpipe.Job, error) {
	return s.UpdateJobFn(ctx, id, upd)
}

var _ tourpipe.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of tourpipe.DocumentService.
type DocumentService struct {
	CreateDocumentFn     func(ctx context.Context, doc *tourpipe.StoredDocument) error
	FindDocumentsByJobFn func(ctx context.Context, jobID string) ([]*tourpipe.StoredDocument, error)
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *tourpipe.StoredDocument) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentsByJob(ctx context.Context, jobID string) ([]*tourpipe.StoredDocument, error) {
	return s.FindDocumentsByJobFn(ctx, jobID)
}

var _ tourpipe.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of tourpipe.RecordService.
type RecordService struct {
	CreateRecordsFn    func(ctx context.Context, records []*tourpipe.TourRecord) error
	FindRecordsByJobFn func(ctx context.Context, jobID string) ([]*tourpipe.TourRecord, error)
}

func (s *RecordService) CreateRecords(ctx context.Context, records []*tourpipe.TourRecord) error {
	return s.CreateRecordsFn(ctx, records)
}

func (s *RecordService) FindRecordsByJob(ctx context.Context, jobID string) ([]*tourpipe.TourRecord, error) {
	return s.FindRecordsByJobFn(ctx, jobID)
}
