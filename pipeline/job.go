package pipeline

import (
	"context"
	"log/slog"

	"github.com/tourfame/tourpipe"
)

// BatchDownloader downloads a batch of document links for a job.
type BatchDownloader interface {
	DownloadAll(ctx context.Context, links []tourpipe.DocumentLink, jobID string) ([]*tourpipe.StoredDocument, error)
}

// Runner executes one pipeline job end to end: discover links, download
// brochures, recover text, extract records, persist everything under the
// job. Stages degrade independently; only discovery failure or a
// persistence failure fails the job.
type Runner struct {
	jobs       tourpipe.JobService
	documents  tourpipe.DocumentService
	records    tourpipe.RecordService
	discoverer LinkDiscoverer
	downloader BatchDownloader
	texts      tourpipe.TextExtractor
	extractor  tourpipe.Extractor
	converter  tourpipe.Converter
	tours      tourpipe.TourExtractor
	contacts   tourpipe.ContactExtractor
	logger     *slog.Logger
}

// RunnerParams collects the Runner's dependencies.
type RunnerParams struct {
	Jobs       tourpipe.JobService
	Documents  tourpipe.DocumentService
	Records    tourpipe.RecordService
	Discoverer LinkDiscoverer
	Downloader BatchDownloader
	Texts      tourpipe.TextExtractor
	Extractor  tourpipe.Extractor
	Converter  tourpipe.Converter
	Tours      tourpipe.TourExtractor
	Contacts   tourpipe.ContactExtractor
	Logger     *slog.Logger
}

// NewRunner creates a Runner.
func NewRunner(p RunnerParams) *Runner {
	return &Runner{
		jobs:       p.Jobs,
		documents:  p.Documents,
		records:    p.Records,
		discoverer: p.Discoverer,
		downloader: p.Downloader,
		texts:      p.Texts,
		extractor:  p.Extractor,
		converter:  p.Converter,
		tours:      p.Tours,
		contacts:   p.Contacts,
		logger:     p.Logger,
	}
}

// Run creates a job for the listing URL and executes it. The returned
// job reflects the final state; the error mirrors job failure.
func (r *Runner) Run(ctx context.Context, listingURL string) (*tourpipe.Job, error) {
	job := &tourpipe.Job{ListingURL: listingURL}
	if err := r.jobs.CreateJob(ctx, job); err != nil {
		return nil, err
	}

	if err := r.execute(ctx, job); err != nil {
		r.fail(ctx, job, err)
		return job, err
	}

	return job, nil
}

// execute runs the pipeline stages against a created job.
func (r *Runner) execute(ctx context.Context, job *tourpipe.Job) error {
	if err := r.setStatus(ctx, job, tourpipe.JobRunning); err != nil {
		return err
	}

	discovery, err := r.discoverer.Discover(ctx, job.ListingURL)
	if err != nil {
		return err
	}

	docs, err := r.downloader.DownloadAll(ctx, discovery.Links, job.ID)
	if err != nil {
		return err
	}

	downloaded := 0
	for _, doc := range docs {
		if err := r.documents.CreateDocument(ctx, doc); err != nil {
			return err
		}
		if doc.Success {
			downloaded++
		}
	}

	texts := r.collectTexts(ctx, job, discovery, docs)
	records := r.extractRecords(ctx, job, texts)

	if len(records) > 0 {
		if err := r.records.CreateRecords(ctx, records); err != nil {
			return err
		}
	}

	status := tourpipe.JobCompleted
	recordCount := len(records)
	_, err = r.jobs.UpdateJob(ctx, job.ID, tourpipe.JobUpdate{
		Status:    &status,
		Records:   &recordCount,
		Documents: &downloaded,
	})
	if err != nil {
		return err
	}

	job.Status = status
	job.Records = recordCount
	job.Documents = downloaded
	return nil
}

// collectTexts recovers text from every successfully stored brochure,
// falling back to the crawled pages themselves when no brochure yielded
// text. Duplicate content (the same brochure linked from several pages)
// is dropped by content hash.
func (r *Runner) collectTexts(ctx context.Context, job *tourpipe.Job, discovery *DiscoveryResult, docs []*tourpipe.StoredDocument) []*tourpipe.ExtractedText {
	var texts []*tourpipe.ExtractedText
	seen := make(map[string]bool)

	add := func(text *tourpipe.ExtractedText) {
		if text == nil || seen[text.ContentHash] {
			return
		}
		seen[text.ContentHash] = true
		texts = append(texts, text)
	}

	for _, doc := range docs {
		if !doc.Success {
			continue
		}
		text, err := r.texts.Extract(ctx, doc.SourceURL, job.ID)
		if err != nil {
			r.logger.Warn("document text extraction failed",
				"url", doc.SourceURL,
				"err", err,
			)
			continue
		}
		add(text)
	}

	if len(texts) > 0 {
		return texts
	}

	for _, page := range discovery.Pages {
		extracted, err := r.extractor.Extract(page.HTML)
		if err != nil {
			r.logger.Warn("page content extraction failed",
				"url", page.URL,
				"err", err,
			)
			continue
		}
		markdown, err := r.converter.Convert(extracted.ContentHTML)
		if err != nil {
			r.logger.Warn("page conversion failed",
				"url", page.URL,
				"err", err,
			)
			continue
		}
		add(&tourpipe.ExtractedText{
			Content:     markdown,
			Method:      tourpipe.MethodHTML,
			SourceURL:   page.URL,
			ContentHash: hashContent(markdown),
		})
	}

	return texts
}

// extractRecords turns each recovered text into sanitized tour records,
// enriched with best-effort contact info from the same text.
func (r *Runner) extractRecords(ctx context.Context, job *tourpipe.Job, texts []*tourpipe.ExtractedText) []*tourpipe.TourRecord {
	var all []*tourpipe.TourRecord

	for _, text := range texts {
		raw, err := r.tours.ExtractTours(ctx, text.Content)
		if err != nil {
			r.logger.Warn("tour extraction failed",
				"url", text.SourceURL,
				"err", err,
			)
			continue
		}

		records := tourpipe.SanitizeRecords(tourpipe.RepairJSON(raw))
		if len(records) == 0 {
			continue
		}

		contacts, _ := r.contacts.ExtractContacts(ctx, text.Content)

		for _, rec := range records {
			rec.JobID = job.ID
			rec.SourceURL = text.SourceURL
			rec.Method = text.Method
			rec.Whatsapp = contacts.Whatsapp
			rec.Phone = contacts.Phone
		}
		all = append(all, records...)
	}

	return all
}

// setStatus transitions the job and mirrors the change locally.
func (r *Runner) setStatus(ctx context.Context, job *tourpipe.Job, status tourpipe.JobStatus) error {
	_, err := r.jobs.UpdateJob(ctx, job.ID, tourpipe.JobUpdate{Status: &status})
	if err != nil {
		return err
	}
	job.Status = status
	return nil
}

// fail marks the job failed with the error message. A failure to record
// the failure is only logged; the original error matters more.
func (r *Runner) fail(ctx context.Context, job *tourpipe.Job, cause error) {
	status := tourpipe.JobFailed
	msg := cause.Error()
	if _, err := r.jobs.UpdateJob(context.WithoutCancel(ctx), job.ID, tourpipe.JobUpdate{
		Status: &status,
		Error:  &msg,
	}); err != nil {
		r.logger.Error("failed to mark job failed",
			"job", job.ID,
			"err", err,
		)
	}
	job.Status = status
	job.Error = msg
}
