package config

import (
	"sort"
	"strings"
)

// FeedPresets maps friendly names to identifier-list paths under the API base
var FeedPresets = map[string]string{
	"top":  "topstories.json",
	"new":  "newstories.json",
	"best": "beststories.json",
	"ask":  "askstories.json",
	"show": "showstories.json",
	"job":  "jobstories.json",
}

// FeedOrder is the display order of the presets (used for number keys in the TUI)
var FeedOrder = []string{"top", "new", "best", "ask", "show", "job"}

// ResolveFeedURL resolves a feed identifier to a URL
// If the input is a preset name, returns the preset path under apiBase
// Otherwise, returns the input as-is (assuming it's a direct URL)
func ResolveFeedURL(apiBase, feedInput string) string {
	if path, exists := FeedPresets[feedInput]; exists {
		return strings.TrimRight(apiBase, "/") + "/" + path
	}
	return feedInput
}

// ItemBaseURL returns the prefix item requests are issued against
func ItemBaseURL(apiBase string) string {
	return strings.TrimRight(apiBase, "/") + "/item"
}

// PresetNames returns the preset names sorted alphabetically
func PresetNames() []string {
	names := make([]string, 0, len(FeedPresets))
	for name := range FeedPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
