package tourpipe

import (
	"context"
	"strconv"
	"strings"
	"time"
)

// TourRecord is one candidate tour offer extracted from page or brochure
// text. Records reaching downstream consumers always have a non-empty
// Title; every other field is coerced to a safe default during
// sanitization rather than propagating type errors.
type TourRecord struct {
	ID           string        `json:"id"`
	JobID        string        `json:"jobId"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Days         int           `json:"days"`
	Nights       int           `json:"nights"`
	Price        float64       `json:"price"`
	Currency     string        `json:"currency"`
	Destinations []string      `json:"destinations"`
	Includes     []string      `json:"includes"`
	Excludes     []string      `json:"excludes"`
	Whatsapp     string        `json:"whatsapp,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	SourceURL    string        `json:"sourceUrl"`
	Method       ExtractMethod `json:"method"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// Validate returns an error if the record contains invalid fields.
func (r *TourRecord) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return Errorf(EINVALID, "tour record title required")
	}
	return nil
}

// RecordService persists sanitized tour records for downstream consumers.
type RecordService interface {
	// CreateRecords persists a batch of records.
	CreateRecords(ctx context.Context, records []*TourRecord) error

	// FindRecordsByJob retrieves all records produced by a job.
	FindRecordsByJob(ctx context.Context, jobID string) ([]*TourRecord, error)
}

// SanitizeRecords converts repaired model output into tour records.
// The input is whatever RepairJSON produced: a []any of candidate objects
// or a single object, which is treated as a one-element list. Items
// without a non-empty title are dropped. All other fields are coerced:
// strings default to "", numbers to 0, lists to empty.
func SanitizeRecords(data any) []*TourRecord {
	var items []any
	switch v := data.(type) {
	case []any:
		items = v
	case map[string]any:
		items = []any{v}
	default:
		return nil
	}

	var records []*TourRecord
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		title := strings.TrimSpace(coerceString(obj["title"]))
		if title == "" {
			continue
		}
		records = append(records, &TourRecord{
			Title:        title,
			Description:  coerceString(obj["description"]),
			Days:         coerceInt(obj["days"]),
			Nights:       coerceInt(obj["nights"]),
			Price:        coerceFloat(obj["price"]),
			Currency:     coerceString(obj["currency"]),
			Destinations: coerceStringSlice(obj["destinations"]),
			Includes:     coerceStringSlice(obj["includes"]),
			Excludes:     coerceStringSlice(obj["excludes"]),
		})
	}
	return records
}

func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}

func coerceInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

func coerceFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		// Prices often arrive as "1.250,00" or "1250 TL"; keep the
		// leading numeric run, normalizing a decimal comma.
		cleaned := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' || r == '.' || r == ',' {
				return r
			}
			return -1
		}, n)
		if strings.Contains(cleaned, ",") {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		}
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func coerceStringSlice(v any) []string {
	switch s := v.(type) {
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			if str := strings.TrimSpace(coerceString(item)); str != "" {
				out = append(out, str)
			}
		}
		return out
	case string:
		if strings.TrimSpace(s) == "" {
			return []string{}
		}
		parts := strings.Split(s, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	default:
		return []string{}
	}
}
