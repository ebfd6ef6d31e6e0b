package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/tourfame/tourpipe"
	"github.com/tourfame/tourpipe/pipeline"
	"github.com/tourfame/tourpipe/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	DB        *sqlite.DB
	Jobs      tourpipe.JobService
	Documents tourpipe.DocumentService
	Records   tourpipe.RecordService
	Sitemaps  tourpipe.SitemapService

	Discoverer pipeline.LinkDiscoverer
	Runner     *pipeline.Runner
	Texts      tourpipe.TextExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run      RunCmd      `cmd:"" help:"Run the full pipeline against listing URLs"`
	Discover DiscoverCmd `cmd:"" help:"Show PDF links discovered behind a listing URL"`
	Extract  ExtractCmd  `cmd:"" help:"Extract text from a single PDF URL"`
	Jobs     JobsCmd     `cmd:"" help:"List pipeline jobs"`
	Records  RecordsCmd  `cmd:"" help:"List tour records extracted by a job"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	URLs        []string `arg:"" help:"Listing page URLs, one job each"`
	Concurrency int      `short:"c" default:"2" help:"Concurrent job limit"`
}

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	URL     string `arg:"" help:"Listing page URL"`
	Sitemap bool   `short:"s" help:"Also list tour URLs from the site's sitemap"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" help:"PDF URL"`
}

// JobsCmd is the "jobs" subcommand.
type JobsCmd struct {
	Status string `help:"Filter by status (pending, running, completed, failed)"`
	Limit  int    `default:"20" help:"Maximum jobs to show"`
}

// RecordsCmd is the "records" subcommand.
type RecordsCmd struct {
	JobID string `arg:"" help:"Job ID"`
	JSON  bool   `help:"Print records as JSON"`
}
