package stories

import (
	"reflect"
	"testing"

	"hackerstories/types"
)

func story(id int, title string) types.Story {
	return types.Story{ID: id, Title: title, By: "author", Type: "story"}
}

func sampleStates() map[string]FetchState {
	loaded := []types.Story{story(1, "A"), story(2, "B"), story(3, "C")}
	return map[string]FetchState{
		"initial":      Initial(),
		"loading":      {Data: loaded, IsLoading: true},
		"failed":       {Data: loaded, IsError: true},
		"loaded":       {Data: loaded},
		"inconsistent": {Data: loaded, IsLoading: true, IsError: true},
	}
}

func TestBeginFetchResetsFlagsAndKeepsData(t *testing.T) {
	for name, s := range sampleStates() {
		t.Run(name, func(t *testing.T) {
			got := Reduce(s, BeginFetch{})
			if !got.IsLoading || got.IsError {
				t.Fatalf("flags = loading:%v error:%v; want true/false", got.IsLoading, got.IsError)
			}
			if !reflect.DeepEqual(got.Data, s.Data) {
				t.Fatalf("data changed: %v -> %v", s.Data, got.Data)
			}
		})
	}
}

func TestFetchSuccessReplacesData(t *testing.T) {
	items := []types.Story{story(9, "Z"), story(8, "Y")}
	for name, s := range sampleStates() {
		t.Run(name, func(t *testing.T) {
			got := Reduce(s, FetchSuccess{Items: items})
			want := FetchState{Data: items}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("got %+v; want %+v", got, want)
			}
		})
	}
}

func TestFetchFailurePreservesStaleData(t *testing.T) {
	for name, s := range sampleStates() {
		t.Run(name, func(t *testing.T) {
			got := Reduce(s, FetchFailure{})
			want := FetchState{Data: s.Data, IsLoading: false, IsError: true}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("got %+v; want %+v", got, want)
			}
		})
	}
}

func TestRemoveItem(t *testing.T) {
	cases := []struct {
		name    string
		id      int
		wantIDs []int
	}{
		{"first", 1, []int{2, 3}},
		{"middle", 2, []int{1, 3}},
		{"last", 3, []int{1, 2}},
		{"absent", 42, []int{1, 2, 3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := FetchState{Data: []types.Story{story(1, "A"), story(2, "B"), story(3, "C")}, IsError: true}
			got := Reduce(s, RemoveItem{ID: c.id})

			if got.IsError != s.IsError || got.IsLoading != s.IsLoading {
				t.Fatalf("flags changed: %+v", got)
			}
			var ids []int
			for _, st := range got.Data {
				ids = append(ids, st.ID)
			}
			if !reflect.DeepEqual(ids, c.wantIDs) {
				t.Fatalf("ids = %v; want %v", ids, c.wantIDs)
			}
			if len(s.Data) != 3 || s.Data[0].ID != 1 || s.Data[1].ID != 2 || s.Data[2].ID != 3 {
				t.Fatalf("input state was modified: %+v", s.Data)
			}
		})
	}
}

func TestRemoveItemOnEmptyState(t *testing.T) {
	got := Reduce(Initial(), RemoveItem{ID: 1})
	if !reflect.DeepEqual(got, Initial()) {
		t.Fatalf("got %+v; want initial state", got)
	}
}

func TestReduceIsPure(t *testing.T) {
	actions := []Action{
		BeginFetch{},
		FetchSuccess{Items: []types.Story{story(5, "E")}},
		FetchFailure{},
		RemoveItem{ID: 2},
	}
	for name, s := range sampleStates() {
		for _, a := range actions {
			t.Run(name+"/"+a.Kind(), func(t *testing.T) {
				before := s.Clone()
				first := Reduce(s, a)
				second := Reduce(s, a)
				if !reflect.DeepEqual(first, second) {
					t.Fatalf("same input gave %+v then %+v", first, second)
				}
				if !reflect.DeepEqual(s, before) {
					t.Fatalf("input mutated: %+v -> %+v", before, s)
				}
			})
		}
	}
}

func TestFetchSuccessCopiesPayload(t *testing.T) {
	items := []types.Story{story(1, "A")}
	got := Reduce(Initial(), FetchSuccess{Items: items})
	items[0].Title = "changed"
	if got.Data[0].Title != "A" {
		t.Fatalf("state aliases the action payload")
	}
}

type bogusAction struct{}

func (bogusAction) Kind() string { return "BOGUS" }

func TestReducePanicsOnUnknownAction(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Reduce(Initial(), bogusAction{})
}

func TestPhase(t *testing.T) {
	if Initial().Phase() != Idle {
		t.Fatalf("initial phase = %s", Initial().Phase())
	}
	if Reduce(Initial(), BeginFetch{}).Phase() != Fetching {
		t.Fatalf("begin should enter fetching")
	}
	if Reduce(Reduce(Initial(), BeginFetch{}), FetchFailure{}).Phase() != Idle {
		t.Fatalf("failure should return to idle")
	}
}
