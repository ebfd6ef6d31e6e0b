package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tourfame/tourpipe"
)

// Compile-time interface verification.
var _ tourpipe.RecordService = (*RecordService)(nil)

// RecordService implements tourpipe.RecordService using SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// CreateRecords persists a batch of sanitized tour records.
func (s *RecordService) CreateRecords(ctx context.Context, records []*tourpipe.TourRecord) error {
	for _, rec := range records {
		if err := rec.Validate(); err != nil {
			return err
		}
	}

	for _, rec := range records {
		rec.ID = uuid.New().String()
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = time.Now().UTC()
		}

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO tour_records (id, job_id, title, description, days, nights, price, currency,
				destinations, includes, excludes, whatsapp, phone, source_url, method, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, rec.ID, rec.JobID, rec.Title, rec.Description, rec.Days, rec.Nights, rec.Price, rec.Currency,
			marshalStrings(rec.Destinations), marshalStrings(rec.Includes), marshalStrings(rec.Excludes),
			rec.Whatsapp, rec.Phone, rec.SourceURL, rec.Method, rec.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return err
		}
	}

	return nil
}

// FindRecordsByJob retrieves all records produced by a job in creation order.
func (s *RecordService) FindRecordsByJob(ctx context.Context, jobID string) ([]*tourpipe.TourRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, job_id, title, description, days, nights, price, currency,
			destinations, includes, excludes, whatsapp, phone, source_url, method, created_at
		FROM tour_records
		WHERE job_id = ?
		ORDER BY created_at ASC, id ASC
	`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*tourpipe.TourRecord
	for rows.Next() {
		var rec tourpipe.TourRecord
		var destinations, includes, excludes, createdAt string

		if err := rows.Scan(&rec.ID, &rec.JobID, &rec.Title, &rec.Description,
			&rec.Days, &rec.Nights, &rec.Price, &rec.Currency,
			&destinations, &includes, &excludes,
			&rec.Whatsapp, &rec.Phone, &rec.SourceURL, &rec.Method, &createdAt); err != nil {
			return nil, err
		}

		rec.Destinations = unmarshalStrings(destinations)
		rec.Includes = unmarshalStrings(includes)
		rec.Excludes = unmarshalStrings(excludes)

		if rec.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		records = append(records, &rec)
	}

	return records, rows.Err()
}
