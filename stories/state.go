// Package stories owns the story list lifecycle: the FetchState value, the
// actions that transition it, and the controller that runs fetch sequences.
package stories

import "hackerstories/types"

// FetchState is the single session value rendered by clients.
type FetchState struct {
	Data      []types.Story `json:"data"`
	IsLoading bool          `json:"isLoading"`
	IsError   bool          `json:"isError"`
}

// Initial returns the pristine state before any fetch.
func Initial() FetchState {
	return FetchState{Data: []types.Story{}}
}

// Phase is the derived controller phase.
type Phase int

const (
	Idle Phase = iota
	Fetching
)

func (p Phase) String() string {
	if p == Fetching {
		return "fetching"
	}
	return "idle"
}

// Phase reports Fetching while a sequence is in flight.
func (s FetchState) Phase() Phase {
	if s.IsLoading {
		return Fetching
	}
	return Idle
}

// Clone returns a copy whose Data does not alias s.Data.
func (s FetchState) Clone() FetchState {
	s.Data = append(make([]types.Story, 0, len(s.Data)), s.Data...)
	return s
}
