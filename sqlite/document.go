package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tourfame/tourpipe"
)

// Compile-time interface verification.
var _ tourpipe.DocumentService = (*DocumentService)(nil)

// DocumentService implements tourpipe.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// CreateDocument records a download attempt, successful or not.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *tourpipe.StoredDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO stored_documents (id, job_id, source_url, storage_key, storage_url, tour_id, success, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.JobID, doc.SourceURL, doc.StorageKey, doc.StorageURL, doc.TourID,
		doc.Success, doc.Error, doc.CreatedAt.Format(time.RFC3339))

	return err
}

// FindDocumentsByJob retrieves all download records for a job in creation order.
func (s *DocumentService) FindDocumentsByJob(ctx context.Context, jobID string) ([]*tourpipe.StoredDocument, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, job_id, source_url, storage_key, storage_url, tour_id, success, error, created_at
		FROM stored_documents
		WHERE job_id = ?
		ORDER BY created_at ASC, id ASC
	`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*tourpipe.StoredDocument
	for rows.Next() {
		var doc tourpipe.StoredDocument
		var createdAt string

		if err := rows.Scan(&doc.ID, &doc.JobID, &doc.SourceURL, &doc.StorageKey,
			&doc.StorageURL, &doc.TourID, &doc.Success, &doc.Error, &createdAt); err != nil {
			return nil, err
		}

		if doc.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}
