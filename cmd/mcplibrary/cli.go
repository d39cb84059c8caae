package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/Vikramardham/mcplibrary"
	"github.com/Vikramardham/mcplibrary/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Store   mcplibrary.CrawlStore
	Crawler *crawl.Crawler
	Images  mcplibrary.ImageDownloader
	Ranker  mcplibrary.Ranker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Crawl  CrawlCmd  `cmd:"" help:"Crawl a documentation site and build its trees"`
	Query  QueryCmd  `cmd:"" help:"Query a crawled site for relevant pages"`
	List   ListCmd   `cmd:"" help:"List crawled sites"`
	Delete DeleteCmd `cmd:"" help:"Delete a crawled site from the cache"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL      string   `arg:"" help:"Root URL of the documentation site"`
	MaxPages int      `short:"n" default:"30" help:"Page budget for the crawl"`
	Include  []string `short:"i" help:"Only crawl URLs matching this regex (repeatable)"`
	Exclude  []string `short:"e" help:"Skip URLs matching this regex (repeatable)"`
	Images   bool     `help:"Download page images into the cache"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	URL        string `arg:"" help:"Root URL of a previously crawled site"`
	Query      string `arg:"" help:"Free-text query"`
	MaxResults int    `short:"n" default:"5" help:"Maximum number of results"`
	Content    bool   `short:"c" help:"Include page content in results"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	URL string `arg:"" help:"Root URL of the crawled site to delete"`
}
