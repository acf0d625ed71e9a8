package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"hackerstories/config"
	"hackerstories/hn"
	"hackerstories/hn/hnfake"
	"hackerstories/preview"
	"hackerstories/scheduler"
	"hackerstories/search"
	"hackerstories/stories"
	"hackerstories/tui"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", config.DefaultConfigPath, "YAML config file (optional)")
	feed := flag.String("feed", "", "feed preset ("+strings.Join(config.PresetNames(), ", ")+") or identifier-list URL")
	offline := flag.Bool("offline", false, "serve sample stories from an in-process fake API")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *feed != "" {
		cfg.Feed = *feed
	}

	// The TUI owns the terminal, so logs go to a file
	logFile, err := tea.LogToFile(cfg.LogFile, "hackerstories")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if *offline {
		fake := hnfake.NewSample()
		defer fake.Close()
		cfg.APIBase = fake.APIBase()
		logger.Info("offline mode", "api_base", cfg.APIBase)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := search.Open(cfg)
	if err != nil {
		logger.Warn("search store unavailable, term will not persist", "store", cfg.Store, "error", err)
		store = search.NewMemoryStore()
	}
	defer store.Close()

	term, err := search.Load(ctx, store, cfg.SearchKey, cfg.DefaultSearch)
	if err != nil {
		logger.Warn("loading search term failed, using default", "error", err)
		term, _ = search.Load(ctx, search.NewMemoryStore(), cfg.SearchKey, cfg.DefaultSearch)
	}

	ctrl := stories.NewController(hn.NewClient(cfg.ItemBaseURL(), cfg.HTTPTimeout), stories.Options{
		Limit:         cfg.StoryLimit,
		MaxConcurrent: cfg.MaxConcurrent,
		StaleGuard:    cfg.StaleGuard,
		Logger:        logger,
	})

	var refresh chan struct{}
	if cfg.RefreshCron != "" {
		refresh = make(chan struct{}, 1)
		sched, err := scheduler.New(cfg.RefreshCron, ctrl.Busy, func() {
			select {
			case refresh <- struct{}{}:
			default:
			}
		}, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		sched.Start()
		defer sched.Stop()
	}

	// Create TUI model
	m := tui.NewModel(tui.Options{
		Ctx:        ctx,
		Controller: ctrl,
		Term:       term,
		Previewer:  preview.NewExtractor(cfg.HTTPTimeout, cfg.PreviewMaxChars),
		Refresh:    refresh,
		APIBase:    cfg.APIBase,
		Feed:       cfg.Feed,
		Logger:     logger,
	})

	// Create the tea program
	program := tea.NewProgram(m, tea.WithAltScreen())

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	// Run the program
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
