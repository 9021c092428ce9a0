package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"docdex"
	"docdex/cache"
	"docdex/crawl"
	"docdex/goquery"
	dochttp "docdex/http"
	"docdex/htmltomarkdown"
	"docdex/mcp"
	"docdex/relevance"
	"docdex/search"
	docdexslog "docdex/slog"
	"docdex/tool"
)

const version = "0.1.0"

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
	// Site configuration. Set before calling Run().
	Config *docdex.Config

	// Operation service, exposed for end-to-end testing.
	Service *tool.Service
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Config: docdex.DefaultConfig(),
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
		kong.Name("docdex"),
		kong.Description("Documentation crawler and search for docs.acquia.com"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docdex --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.BaseURL != "" {
		m.Config.BaseURL = cli.BaseURL
	}
	if cli.CacheSize > 0 {
		m.Config.CacheSize = cli.CacheSize
	}
	if cli.RequestDelay > 0 {
		m.Config.RequestDelay = cli.RequestDelay
	}

	// Logs go to stderr: the serve command owns stdout for MCP framing.
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m.Service = buildService(m.Config, logger)
	deps.Service = m.Service
	deps.Server = mcp.NewServer(m.Service, version, logger)

	return kongCtx.Run(deps)
}

// buildService wires the fetch, crawl, and search pipeline behind the
// operation service.
func buildService(cfg *docdex.Config, logger *slog.Logger) *tool.Service {
	scope := cfg.Scope()
	registry := docdex.NewRegistry()
	pages := cache.New(cfg.CacheSize)

	httpFetcher := dochttp.NewFetcher(
		goquery.NewParser(scope),
		htmltomarkdown.NewConverter(),
		dochttp.WithReferer(cfg.BaseURL),
		dochttp.WithRegistry(registry),
	)
	fetcher := docdexslog.NewLoggingFetcher(cache.NewFetcher(pages, httpFetcher), logger)

	limiter := crawl.NewHostLimiter(cfg.RequestDelay)
	crawler := docdexslog.NewLoggingCrawler(crawl.NewCrawler(fetcher, scope, limiter, logger, cfg), logger)

	scorer := relevance.NewScorer(cfg.Topics)
	scorer.MinBlockLength = cfg.MinBlockLength
	searcher := docdexslog.NewLoggingSearcher(
		search.NewSearcher(cfg, fetcher, scorer, dochttp.NewSiteSearch(cfg), logger),
		logger,
	)

	return tool.NewService(cfg, pages, fetcher, searcher, crawler, registry, logger)
}
