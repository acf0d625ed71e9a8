package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"hackerstories/stories"
)

// waitForState blocks until the controller publishes a new state
func waitForState(updates <-chan stories.FetchState) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-updates
		if !ok {
			return nil
		}
		return StateMsg{State: s}
	}
}

// waitForRefresh blocks until the refresh schedule fires
func waitForRefresh(ticks <-chan struct{}) tea.Cmd {
	if ticks == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ticks; !ok {
			return nil
		}
		return RefreshMsg{}
	}
}

// fetchStories runs one fetch sequence; its transitions arrive as StateMsg
// and its outcome as FetchDoneMsg
func fetchStories(ctx context.Context, ctrl *stories.Controller, listURL string) tea.Cmd {
	return func() tea.Msg {
		s, applied := ctrl.Fetch(ctx, listURL)
		return FetchDoneMsg{URL: listURL, State: s, Applied: applied}
	}
}

// loadPreview extracts the article behind a story
func loadPreview(ctx context.Context, p Previewer, id int, url string) tea.Cmd {
	return func() tea.Msg {
		pv, err := p.Extract(ctx, url)
		return PreviewMsg{ID: id, Preview: pv, Err: err}
	}
}
