// Command fetch runs one fetch sequence and prints the resulting state as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"hackerstories/config"
	"hackerstories/hn"
	"hackerstories/hn/hnfake"
	"hackerstories/search"
	"hackerstories/stories"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run returns the process exit status: 0 on success, 1 when the fetch or
// the configuration failed, 2 on bad flags.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", config.DefaultConfigPath, "YAML config file (optional)")
	feed := fs.String("feed", "", "feed preset ("+strings.Join(config.PresetNames(), ", ")+") or identifier-list URL")
	offline := fs.Bool("offline", false, "serve sample stories from an in-process fake API")
	limit := fs.Int("limit", -1, "truncate the identifier list (overrides story_limit)")
	term := fs.String("search", "", "title filter (defaults to the saved search term)")
	sortBy := fs.String("sort", "none", "sort by none, title, author, comments or points")
	reverse := fs.Bool("reverse", false, "reverse the sort order")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		return 1
	}
	if *feed != "" {
		cfg.Feed = *feed
	}
	if *limit >= 0 {
		cfg.StoryLimit = *limit
	}

	key, err := stories.ParseSortKey(*sortBy)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	if *offline {
		fake := hnfake.NewSample()
		defer fake.Close()
		cfg.APIBase = fake.APIBase()
	}

	filter := *term
	if !flagSet(fs, "search") {
		filter = savedTerm(ctx, cfg, logger)
	}

	ctrl := stories.NewController(hn.NewClient(cfg.ItemBaseURL(), cfg.HTTPTimeout), stories.Options{
		Limit:         cfg.StoryLimit,
		MaxConcurrent: cfg.MaxConcurrent,
		StaleGuard:    cfg.StaleGuard,
		Logger:        logger,
	})
	state, _ := ctrl.Fetch(ctx, cfg.ListURL())
	state.Data = stories.Visible(state.Data, filter, stories.Sort{Key: key, Reverse: *reverse})

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		logger.Error("encoding output failed", "error", err)
		return 1
	}
	if state.IsError {
		return 1
	}
	return 0
}

// savedTerm reads the persisted search term, falling back to the default
func savedTerm(ctx context.Context, cfg config.Config, logger *slog.Logger) string {
	store, err := search.Open(cfg)
	if err != nil {
		logger.Warn("search store unavailable", "store", cfg.Store, "error", err)
		return cfg.DefaultSearch
	}
	defer store.Close()

	t, err := search.Load(ctx, store, cfg.SearchKey, cfg.DefaultSearch)
	if err != nil {
		logger.Warn("loading search term failed", "error", err)
		return cfg.DefaultSearch
	}
	return t.Value()
}

func flagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
