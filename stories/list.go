package stories

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"hackerstories/types"
)

// SortKey selects the column the visible list is ordered by.
type SortKey int

const (
	SortNone SortKey = iota
	SortTitle
	SortBy
	SortComments
	SortPoints
)

var sortKeyNames = map[SortKey]string{
	SortNone:     "none",
	SortTitle:    "title",
	SortBy:       "author",
	SortComments: "comments",
	SortPoints:   "points",
}

func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

// ParseSortKey accepts the names printed by String.
func ParseSortKey(name string) (SortKey, error) {
	for k, n := range sortKeyNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return SortNone, fmt.Errorf("unknown sort key %q", name)
}

// Sort is the active ordering of the visible list.
type Sort struct {
	Key     SortKey
	Reverse bool
}

// Toggle selects key. Selecting the active key again flips Reverse; any
// other key starts unreversed.
func (s Sort) Toggle(key SortKey) Sort {
	return Sort{Key: key, Reverse: s.Key == key && !s.Reverse}
}

// Apply returns a sorted copy of list. Title and author sort ascending,
// comments and points descending. Sorting is stable; descending orders are
// the ascending order reversed, ties included.
func (s Sort) Apply(list []types.Story) []types.Story {
	out := slices.Clone(list)

	switch s.Key {
	case SortTitle:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	case SortBy:
		sort.SliceStable(out, func(i, j int) bool { return out[i].By < out[j].By })
	case SortComments:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Descendants < out[j].Descendants })
		slices.Reverse(out)
	case SortPoints:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
		slices.Reverse(out)
	}

	if s.Reverse {
		slices.Reverse(out)
	}
	return out
}

// Filter keeps the stories whose title contains term, ignoring case.
func Filter(list []types.Story, term string) []types.Story {
	needle := strings.ToLower(term)
	out := make([]types.Story, 0, len(list))
	for _, st := range list {
		if strings.Contains(strings.ToLower(st.Title), needle) {
			out = append(out, st)
		}
	}
	return out
}

// Visible is the list a client renders: filtered by term, then sorted.
func Visible(list []types.Story, term string, s Sort) []types.Story {
	return s.Apply(Filter(list, term))
}
