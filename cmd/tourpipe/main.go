package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/tourfame/tourpipe"
	"github.com/tourfame/tourpipe/fs"
	"github.com/tourfame/tourpipe/gemini"
	"github.com/tourfame/tourpipe/goquery"
	tphttp "github.com/tourfame/tourpipe/http"
	"github.com/tourfame/tourpipe/pdf"
	"github.com/tourfame/tourpipe/pipeline"
	"github.com/tourfame/tourpipe/rod"
	tpslog "github.com/tourfame/tourpipe/slog"
	"github.com/tourfame/tourpipe/sqlite"
	"github.com/tourfame/tourpipe/trafilatura"

	"github.com/tourfame/tourpipe/htmltomarkdown"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Directory for downloaded brochures and OCR images.
	DataDir string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	JobService      tourpipe.JobService
	DocumentService tourpipe.DocumentService
	RecordService   tourpipe.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:  defaultDBPath(),
		DataDir: defaultDataDir(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tourpipe"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tourpipe --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set TOURPIPE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.JobService = sqlite.NewJobService(m.DB)
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	m.RecordService = sqlite.NewRecordService(m.DB)
	deps.DB = m.DB
	deps.Jobs = m.JobService
	deps.Documents = m.DocumentService
	deps.Records = m.RecordService
	deps.Sitemaps = tpslog.NewLoggingSitemapService(tphttp.NewSitemapService(nil), logger)

	storage := fs.NewStorage(m.DataDir, os.Getenv("TOURPIPE_BASE_URL"))
	binary := tphttp.NewBinaryFetcher()

	if cmd == "run" || cmd == "discover" {
		rendered, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		selector := pipeline.NewSelector(tphttp.NewFetcher(), rendered)
		defer selector.Close()

		pageFetcher := tpslog.NewLoggingPageFetcher(selector, logger)

		deps.Discoverer = pipeline.NewDiscoverer(
			pageFetcher,
			goquery.NewDetailSelector(),
			goquery.NewPDFSelector(),
			logger,
			pipeline.WithDomainLimiter(pipeline.NewDomainLimiter(pipeline.DefaultRequestsPerSecond)),
		)
	}

	if cmd == "run" || cmd == "extract" {
		client, err := geminiClient(ctx, stderr)
		if err != nil {
			return err
		}

		engine := pipeline.NewTextEngine(
			binary,
			pdf.NewTextLayerExtractor(),
			pdf.NewRasterizer(),
			gemini.NewTranscriber(client),
			storage,
			logger,
		)
		deps.Texts = tpslog.NewLoggingTextExtractor(engine, logger)

		if cmd == "run" {
			deps.Runner = pipeline.NewRunner(pipeline.RunnerParams{
				Jobs:       deps.Jobs,
				Documents:  deps.Documents,
				Records:    deps.Records,
				Discoverer: deps.Discoverer,
				Downloader: pipeline.NewDownloader(binary, storage, logger),
				Texts:      deps.Texts,
				Extractor:  trafilatura.NewExtractor(),
				Converter:  htmltomarkdown.NewConverter(),
				Tours:      gemini.NewTourExtractor(client),
				Contacts:   gemini.NewContactExtractor(client),
				Logger:     logger,
			})
		}
	}

	return kongCtx.Run(deps)
}

// geminiClient creates a Gemini API client from the environment.
func geminiClient(ctx context.Context, stderr io.Writer) (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
	}
	return client, nil
}

func defaultDBPath() string {
	if path := os.Getenv("TOURPIPE_DB"); path != "" {
		return path
	}
	return filepath.Join(defaultDataDir(), "tourpipe.db")
}

func defaultDataDir() string {
	if dir := os.Getenv("TOURPIPE_DATA"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "tourpipe-data"
	}
	dir := filepath.Join(home, ".tourpipe")
	_ = os.MkdirAll(dir, 0755)
	return dir
}
