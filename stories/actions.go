package stories

import "hackerstories/types"

// Action is a command applied to a FetchState by Reduce.
type Action interface {
	Kind() string
}

// BeginFetch marks a sequence as started. Data is kept as a stale snapshot.
type BeginFetch struct{}

// FetchSuccess replaces Data with Items.
type FetchSuccess struct {
	Items []types.Story
}

// FetchFailure flags the last sequence as failed. Data is kept.
type FetchFailure struct{}

// RemoveItem drops the story with ID from Data.
type RemoveItem struct {
	ID int
}

func (BeginFetch) Kind() string { return "BEGIN_FETCH" }
func (FetchSuccess) Kind() string { return "FETCH_SUCCESS" }
func (FetchFailure) Kind() string { return "FETCH_FAILURE" }
func (RemoveItem) Kind() string { return "REMOVE_ITEM" }
