package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hackerstories/config"
	"hackerstories/preview"
	"hackerstories/search"
	"hackerstories/stories"
	"hackerstories/types"
)

// Mode is the input mode of the client
type Mode string

const (
	ModeBrowse Mode = "browse"
	ModeSearch Mode = "search"
)

// maxLogs bounds the Recent Activity list
const maxLogs = 6

// Previewer extracts readable text from an article URL
type Previewer interface {
	Extract(ctx context.Context, rawURL string) (*preview.Preview, error)
}

// Options wires the model to its collaborators
type Options struct {
	Ctx        context.Context
	Controller *stories.Controller
	Term       *search.Term
	Previewer  Previewer
	Refresh    <-chan struct{}
	APIBase    string
	Feed       string
	Logger     *slog.Logger
}

// Model renders the controller's FetchState and routes input to it
type Model struct {
	ctx       context.Context
	ctrl      *stories.Controller
	term      *search.Term
	previewer Previewer
	updates   <-chan stories.FetchState
	refresh   <-chan struct{}
	log       *slog.Logger

	APIBase string
	Feed    string
	ListURL string

	State  stories.FetchState
	Sort   stories.Sort
	Mode   Mode
	Query  string
	Cursor int

	PreviewID      int
	Preview        *preview.Preview
	PreviewErr     error
	PreviewLoading bool

	Logs   []string
	Err    error
	Width  int
	Height int
}

// NewModel creates a new TUI model subscribed to the controller
func NewModel(opts Options) Model {
	ctx := opts.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	query := ""
	if opts.Term != nil {
		query = opts.Term.Value()
	}

	return Model{
		ctx:       ctx,
		ctrl:      opts.Controller,
		term:      opts.Term,
		previewer: opts.Previewer,
		updates:   opts.Controller.Subscribe(),
		refresh:   opts.Refresh,
		log:       logger,
		APIBase:   opts.APIBase,
		Feed:      opts.Feed,
		ListURL:   config.ResolveFeedURL(opts.APIBase, opts.Feed),
		State:     opts.Controller.State(),
		Mode:      ModeBrowse,
		Query:     query,
		Logs:      make([]string, 0, maxLogs),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForState(m.updates),
		fetchStories(m.ctx, m.ctrl, m.ListURL),
		waitForRefresh(m.refresh),
	)
}

// Visible returns the stories currently shown, filtered and sorted
func (m Model) Visible() []types.Story {
	return stories.Visible(m.State.Data, m.Query, m.Sort)
}

// Selected returns the story under the cursor
func (m Model) Selected() (types.Story, bool) {
	visible := m.Visible()
	if m.Cursor < 0 || m.Cursor >= len(visible) {
		return types.Story{}, false
	}
	return visible[m.Cursor], true
}

// AddLog appends a timestamped line to Recent Activity
func (m Model) AddLog(msg string) Model {
	line := fmt.Sprintf("%s %s", time.Now().Format("15:04:05"), msg)
	logs := append(append([]string(nil), m.Logs...), line)
	if len(logs) > maxLogs {
		logs = logs[len(logs)-maxLogs:]
	}
	m.Logs = logs
	return m
}

// clampCursor keeps the cursor inside the visible list
func (m Model) clampCursor() Model {
	n := len(m.Visible())
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	return m
}

// feedLabel names the current feed for display
func (m Model) feedLabel() string {
	if _, ok := config.FeedPresets[m.Feed]; ok {
		return m.Feed
	}
	return m.ListURL
}

// lastLog returns the newest Recent Activity line
func lastLog(logs []string) string {
	if len(logs) == 0 {
		return ""
	}
	return logs[len(logs)-1]
}
