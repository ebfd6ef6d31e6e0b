package tourpipe

import (
	"context"
	"time"
)

// StoredDocument records one attempt to download a PDF and persist it to
// object storage. Failures are recorded, not raised, so batch downloads
// continue past individual failures.
type StoredDocument struct {
	ID         string    `json:"id"`
	JobID      string    `json:"jobId"`
	SourceURL  string    `json:"sourceUrl"`
	StorageKey string    `json:"storageKey"`
	StorageURL string    `json:"storageUrl"`
	TourID     string    `json:"tourId"`
	Success    bool      `json:"success"`
	Error      string    `json:"error"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate returns an error if the stored document contains invalid fields.
func (d *StoredDocument) Validate() error {
	if d.JobID == "" {
		return Errorf(EINVALID, "document job ID required")
	}
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	return nil
}

// DocumentDownloader downloads a PDF and persists it to object storage.
// The returned StoredDocument reports failure via Success/Error rather
// than an error return, so batch callers can continue past bad items.
type DocumentDownloader interface {
	Download(ctx context.Context, link DocumentLink, jobID string) *StoredDocument
}

// DocumentService persists download results.
type DocumentService interface {
	// CreateDocument records a download attempt.
	CreateDocument(ctx context.Context, doc *StoredDocument) error

	// FindDocumentsByJob retrieves all download records for a job,
	// in creation order.
	FindDocumentsByJob(ctx context.Context, jobID string) ([]*StoredDocument, error)
}
