package types

import (
	"fmt"
	"time"
)

// Story is a single Hacker News item as returned by the item endpoint
type Story struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	By          string `json:"by"`
	Score       int    `json:"score"`
	Descendants int    `json:"descendants"`
	Time        int64  `json:"time"`
	Type        string `json:"type"`
}

// PostedAt converts the unix timestamp to a time.Time
func (s Story) PostedAt() time.Time {
	return time.Unix(s.Time, 0)
}

// DiscussionURL links to the story's comment page on news.ycombinator.com
func (s Story) DiscussionURL() string {
	return fmt.Sprintf("https://news.ycombinator.com/item?id=%d", s.ID)
}

// Link returns the story URL, falling back to the discussion page for
// self posts (Ask HN, jobs) that carry no URL
func (s Story) Link() string {
	if s.URL != "" {
		return s.URL
	}
	return s.DiscussionURL()
}
