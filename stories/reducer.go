package stories

import (
	"fmt"

	"hackerstories/types"
)

// Reduce applies a to s and returns the new state. It never modifies s or
// the action payload, and accepts every action in every state. An action
// type it does not know is a programming error and panics.
func Reduce(s FetchState, a Action) FetchState {
	switch a := a.(type) {
	case BeginFetch:
		return FetchState{Data: s.Data, IsLoading: true, IsError: false}
	case FetchSuccess:
		items := make([]types.Story, len(a.Items))
		copy(items, a.Items)
		return FetchState{Data: items, IsLoading: false, IsError: false}
	case FetchFailure:
		return FetchState{Data: s.Data, IsLoading: false, IsError: true}
	case RemoveItem:
		return FetchState{Data: without(s.Data, a.ID), IsLoading: s.IsLoading, IsError: s.IsError}
	default:
		panic(fmt.Sprintf("stories: unknown action %T", a))
	}
}

// without returns data minus entries with id, or data itself if none match.
func without(data []types.Story, id int) []types.Story {
	idx := -1
	for i := range data {
		if data[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return data
	}

	out := make([]types.Story, 0, len(data)-1)
	out = append(out, data[:idx]...)
	for _, st := range data[idx+1:] {
		if st.ID != id {
			out = append(out, st)
		}
	}
	return out
}
