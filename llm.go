package tourpipe

import "context"

// TourExtractor asks a language model to extract tour records from plain
// text. The returned string is the model's raw output: it is expected to
// contain a JSON array but may be truncated, wrapped in prose, or broken.
// Callers pass it through RepairJSON and SanitizeRecords before use.
type TourExtractor interface {
	ExtractTours(ctx context.Context, text string) (string, error)
}

// ContactExtractor pulls contact numbers out of free text using a language
// model with a strict output schema. Extraction failures degrade to absent
// fields, never to an error that would abort the pipeline: implementations
// return a zero ContactInfo and a nil error when the model call or its
// output parsing fails.
type ContactExtractor interface {
	ExtractContacts(ctx context.Context, text string) (ContactInfo, error)
}
