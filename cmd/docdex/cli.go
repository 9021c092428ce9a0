package main

import (
	"context"
	"io"
	"time"

	"docdex/mcp"
	"docdex/tool"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Service *tool.Service
	Server  *mcp.Server
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose      bool          `short:"v" help:"Enable debug logging"`
	BaseURL      string        `env:"DOCDEX_BASE_URL" help:"Documentation site base URL"`
	CacheSize    int           `env:"DOCDEX_CACHE_SIZE" help:"Page cache capacity"`
	RequestDelay time.Duration `env:"DOCDEX_REQUEST_DELAY" help:"Minimum delay between requests to the same host"`

	Serve  ServeCmd  `cmd:"" help:"Serve tools and resources over MCP stdio"`
	Search SearchCmd `cmd:"" help:"Search the documentation"`
	Guide  GuideCmd  `cmd:"" help:"Get implementation guidance for a requirement"`
	Crawl  CrawlCmd  `cmd:"" help:"Crawl the documentation site into the cache"`
	Stats  StatsCmd  `cmd:"" help:"Show cached page statistics by product category"`
	List   ListCmd   `cmd:"" help:"List cached documentation pages"`
	Clear  ClearCmd  `cmd:"" help:"Clear the page cache"`
	Source SourceCmd `cmd:"" help:"Resolve the official source link for a query"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Search query"`
}

// GuideCmd is the "guide" subcommand.
type GuideCmd struct {
	Context      string   `short:"c" required:"" help:"Project context, such as platform and stack"`
	Requirements []string `arg:"" help:"What needs to be implemented"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	MaxDepth int `short:"d" default:"-1" help:"Maximum crawl depth (defaults to the configured depth)"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct{}

// SourceCmd is the "source" subcommand.
type SourceCmd struct {
	Query []string `arg:"" help:"The topic or query to resolve"`
}
