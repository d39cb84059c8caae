package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/Vikramardham/mcplibrary"
	"github.com/Vikramardham/mcplibrary/crawl"
	"github.com/Vikramardham/mcplibrary/fs"
	"github.com/Vikramardham/mcplibrary/gemini"
	"github.com/Vikramardham/mcplibrary/goquery"
	"github.com/Vikramardham/mcplibrary/htmltomarkdown"
	mcphttp "github.com/Vikramardham/mcplibrary/http"
	"github.com/Vikramardham/mcplibrary/readability"
	mcpslog "github.com/Vikramardham/mcplibrary/slog"
	"github.com/Vikramardham/mcplibrary/trafilatura"
	"google.golang.org/genai"
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
	// CacheDir is where crawl results are stored. Set before calling Run().
	CacheDir string

	// Store is exposed for end-to-end testing.
	Store mcplibrary.CrawlStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		CacheDir: defaultCacheDir(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mcplibrary"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'mcplibrary --help' to see available commands")
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

	logger := newLogger(stderr, cli.Verbose)

	if m.Store == nil {
		m.Store = fs.NewStore(m.CacheDir)
	}
	deps.Store = m.Store
	deps.Logger = logger

	// The Gemini capabilities are optional: without an API key both the
	// enhanced tree and query ranking fall back to their deterministic
	// paths.
	var client *genai.Client
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
	}

	if cmd == "crawl" {
		fetcher := mcphttp.NewFetcher()

		var categorizer mcplibrary.Categorizer
		if client != nil {
			categorizer = mcpslog.NewLoggingCategorizer(gemini.NewCategorizer(client), logger)
		} else {
			fmt.Fprintln(stderr, "GEMINI_API_KEY not set; building the enhanced tree from URL paths")
		}

		deps.Crawler = &crawl.Crawler{
			Fetcher:   mcpslog.NewLoggingFetcher(fetcher, logger),
			Links:     goquery.NewLinkExtractor(),
			Extractor: trafilatura.NewExtractor(),
			Fallbacks: []mcplibrary.Extractor{
				readability.NewExtractor(),
				goquery.NewBodyTextExtractor(),
			},
			Converter:   htmltomarkdown.NewConverter(),
			Categorizer: categorizer,
			Sitemaps:    mcphttp.NewSitemapService(nil),
			RateLimiter: crawl.NewDomainLimiter(1.0),
		}
		deps.Images = mcphttp.NewImageDownloader(nil)
	}

	if cmd == "query" && client != nil {
		deps.Ranker = mcpslog.NewLoggingRanker(gemini.NewRanker(client), logger)
	}

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultCacheDir() string {
	if path := os.Getenv("MCPLIBRARY_CACHE"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mcplibrary"
	}
	return filepath.Join(home, ".mcplibrary")
}
