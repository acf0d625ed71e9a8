package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"hackerstories/config"
	"hackerstories/preview"
	"hackerstories/stories"
)

// sortKeys maps browse-mode keys to sort columns
var sortKeys = map[string]stories.SortKey{
	"n": stories.SortNone,
	"t": stories.SortTitle,
	"a": stories.SortBy,
	"c": stories.SortComments,
	"p": stories.SortPoints,
}

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.Mode == ModeSearch {
			return m.handleSearchKey(msg)
		}
		return m.handleKeyPress(msg)
	case StateMsg:
		return m.handleState(msg)
	case FetchDoneMsg:
		return m.handleFetchDone(msg), nil
	case RefreshMsg:
		return m.handleRefresh()
	case PreviewMsg:
		return m.handlePreview(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input in browse mode
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "j", "down":
		m.Cursor++
		return m.clampCursor(), nil
	case "k", "up":
		m.Cursor--
		return m.clampCursor(), nil
	case "x", "delete":
		return m.dismissSelected()
	case "r":
		m = m.AddLog("Refreshing " + m.feedLabel())
		return m, fetchStories(m.ctx, m.ctrl, m.ListURL)
	case "v", "enter":
		return m.openPreview()
	case "esc":
		m.PreviewID, m.Preview, m.PreviewErr, m.PreviewLoading = 0, nil, nil, false
		return m, nil
	case "/":
		m.Mode = ModeSearch
		return m, nil
	}

	if sk, ok := sortKeys[key]; ok {
		m.Sort = m.Sort.Toggle(sk)
		return m.clampCursor(), nil
	}
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		if idx := int(key[0] - '1'); idx < len(config.FeedOrder) {
			return m.switchFeed(config.FeedOrder[idx])
		}
	}
	return m, nil
}

// handleSearchKey edits the search term; every edit is persisted
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.Mode = ModeBrowse
		return m, nil
	case tea.KeyEnter:
		// submitting the form issues a new fetch for the current list;
		// an empty term cannot be submitted
		if m.Query == "" {
			return m, nil
		}
		m.Mode = ModeBrowse
		m = m.AddLog(fmt.Sprintf("Searching %q in %s", m.Query, m.feedLabel()))
		return m, fetchStories(m.ctx, m.ctrl, m.ListURL)
	case tea.KeyBackspace:
		if m.Query == "" {
			return m, nil
		}
		runes := []rune(m.Query)
		return m.setQuery(string(runes[:len(runes)-1]))
	case tea.KeyCtrlU:
		return m.setQuery("")
	case tea.KeySpace:
		return m.setQuery(m.Query + " ")
	case tea.KeyRunes:
		return m.setQuery(m.Query + string(msg.Runes))
	}
	return m, nil
}

// setQuery writes the term through before the next key is handled, so
// the stored value always matches the last edit.
func (m Model) setQuery(q string) (tea.Model, tea.Cmd) {
	m.Query = q
	m.Cursor = 0
	if m.term == nil {
		return m, nil
	}
	if err := m.term.Set(m.ctx, q); err != nil {
		m.log.Error("saving search term failed", "term", q, "error", err)
		if m.Err == nil {
			m = m.AddLog("Could not save search term")
		}
		m.Err = err
		return m, nil
	}
	m.Err = nil
	return m, nil
}

// switchFeed changes the list URL, which starts a new fetch sequence.
// Selecting the current feed changes nothing.
func (m Model) switchFeed(feed string) (tea.Model, tea.Cmd) {
	url := config.ResolveFeedURL(m.APIBase, feed)
	if url == m.ListURL {
		return m, nil
	}
	m.Feed = feed
	m.ListURL = url
	m.Cursor = 0
	m = m.AddLog("Switched to " + feed)
	return m, fetchStories(m.ctx, m.ctrl, url)
}

func (m Model) dismissSelected() (tea.Model, tea.Cmd) {
	story, ok := m.Selected()
	if !ok {
		return m, nil
	}
	m.ctrl.Remove(story.ID)
	m = m.AddLog(fmt.Sprintf("Dismissed %q", story.Title))
	return m, nil
}

func (m Model) openPreview() (tea.Model, tea.Cmd) {
	story, ok := m.Selected()
	if !ok || m.previewer == nil {
		return m, nil
	}
	m.PreviewID = story.ID
	m.Preview = nil
	m.PreviewErr = nil
	if story.URL == "" {
		m.PreviewErr = preview.ErrNoURL
		return m, nil
	}
	m.PreviewLoading = true
	return m, loadPreview(m.ctx, m.previewer, story.ID, story.URL)
}

// handleState processes a controller transition
func (m Model) handleState(msg StateMsg) (tea.Model, tea.Cmd) {
	m.State = msg.State
	return m.clampCursor(), waitForState(m.updates)
}

// handleFetchDone records how a fetch sequence ended. The state channel may
// skip transitions, so the outcome is taken from the sequence itself.
func (m Model) handleFetchDone(msg FetchDoneMsg) Model {
	switch {
	case !msg.Applied:
		m.log.Debug("fetch superseded", "url", msg.URL)
		return m
	case msg.State.IsError:
		return m.AddLog("Fetch failed")
	}
	return m.AddLog(fmt.Sprintf("Loaded %d stories", len(msg.State.Data)))
}

// handleRefresh processes a scheduled refresh
func (m Model) handleRefresh() (tea.Model, tea.Cmd) {
	m = m.AddLog("Scheduled refresh")
	return m, tea.Batch(
		fetchStories(m.ctx, m.ctrl, m.ListURL),
		waitForRefresh(m.refresh),
	)
}

// handlePreview processes a finished extraction; stale results are dropped
func (m Model) handlePreview(msg PreviewMsg) (tea.Model, tea.Cmd) {
	if msg.ID != m.PreviewID {
		return m, nil
	}
	m.PreviewLoading = false
	m.Preview = msg.Preview
	m.PreviewErr = msg.Err
	if msg.Err != nil {
		m.log.Warn("preview failed", "id", msg.ID, "error", msg.Err)
	}
	return m, nil
}
