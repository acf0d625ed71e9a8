package tui

import (
	"hackerstories/preview"
	"hackerstories/stories"
)

// Messages for the tea program

// StateMsg carries the controller state after a transition
type StateMsg struct {
	State stories.FetchState
}

// FetchDoneMsg is sent when a fetch sequence has returned. State is the
// result of its terminal transition; Applied is false for a superseded one.
type FetchDoneMsg struct {
	URL     string
	State   stories.FetchState
	Applied bool
}

// RefreshMsg is sent when the refresh schedule fires
type RefreshMsg struct{}

// PreviewMsg carries an extracted article for the story with ID
type PreviewMsg struct {
	ID      int
	Preview *preview.Preview
	Err     error
}
