package hnfake

import (
	"time"

	"hackerstories/types"
)

// sampleStories is a small fixed catalogue used by offline mode
var sampleStories = []types.Story{
	{ID: 1001, Title: "React 19 is now stable", URL: "https://react.dev/blog/2024/12/05/react-19", By: "acdlite", Score: 812, Descendants: 402, Type: "story"},
	{ID: 1002, Title: "Show HN: A terminal client for Hacker News written in Go", URL: "https://github.com/example/hn-tui", By: "gopher", Score: 214, Descendants: 61, Type: "story"},
	{ID: 1003, Title: "Redux is not dead: reducers in 2025", URL: "https://redux.js.org/", By: "markerikson", Score: 133, Descendants: 88, Type: "story"},
	{ID: 1004, Title: "The Go memory model, explained", URL: "https://go.dev/ref/mem", By: "rsc", Score: 566, Descendants: 120, Type: "story"},
	{ID: 1005, Title: "Ask HN: How do you structure state in React apps?", By: "curious", Score: 97, Descendants: 143, Type: "story"},
	{ID: 1006, Title: "SQLite is not a toy database", URL: "https://antonz.org/sqlite-is-not-a-toy-database/", By: "nalgeon", Score: 701, Descendants: 255, Type: "story"},
	{ID: 1007, Title: "Why React Server Components matter", URL: "https://vercel.com/blog/understanding-react-server-components", By: "leerob", Score: 188, Descendants: 176, Type: "story"},
	{ID: 1008, Title: "Bubble Tea: building TUIs with the Elm architecture", URL: "https://github.com/charmbracelet/bubbletea", By: "meowgorithm", Score: 342, Descendants: 47, Type: "story"},
	{ID: 1009, Title: "Ask HN: Who is hiring? (October 2026)", By: "whoishiring", Score: 402, Descendants: 611, Type: "story"},
	{ID: 1010, Title: "Acme Corp (YC W24) is hiring Go engineers", URL: "https://example.com/jobs/go", By: "acme", Score: 1, Type: "job"},
	{ID: 1011, Title: "Show HN: Redis-backed bloom filters in 200 lines", URL: "https://github.com/example/bloom", By: "antirez_fan", Score: 76, Descendants: 19, Type: "story"},
	{ID: 1012, Title: "Preact vs React: a size comparison", URL: "https://preactjs.com/", By: "developit", Score: 154, Descendants: 72, Type: "story"},
}

// sampleLists maps each list file name to a subset of the catalogue
var sampleLists = map[string][]int{
	"topstories":  {1001, 1004, 1006, 1008, 1002, 1007, 1003, 1012, 1011, 1005},
	"newstories":  {1012, 1011, 1010, 1009, 1008, 1007},
	"beststories": {1001, 1006, 1004, 1009, 1008},
	"askstories":  {1005, 1009},
	"showstories": {1002, 1011},
	"jobstories":  {1010},
}

// NewSample starts a fake server preloaded with the sample catalogue. Item
// responses are jittered so completion order varies between runs.
func NewSample() *Server {
	s := New()
	now := time.Now()
	for i, st := range sampleStories {
		st.Time = now.Add(-time.Duration(i+1) * 47 * time.Minute).Unix()
		s.AddStory(st)
	}
	for name, ids := range sampleLists {
		s.SetList(name, ids...)
	}
	s.SetJitter(400 * time.Millisecond)
	return s
}
