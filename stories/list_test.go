package stories

import (
	"reflect"
	"testing"

	"hackerstories/types"
)

func listFixture() []types.Story {
	return []types.Story{
		{ID: 1, Title: "React hooks", By: "dan", Descendants: 10, Score: 50},
		{ID: 2, Title: "Go generics", By: "ian", Descendants: 30, Score: 50},
		{ID: 3, Title: "Async React", By: "andrew", Descendants: 20, Score: 90},
		{ID: 4, Title: "Bubble Tea", By: "christian", Descendants: 30, Score: 10},
	}
}

func TestSortApply(t *testing.T) {
	cases := []struct {
		name string
		sort Sort
		want []int
	}{
		{"none keeps order", Sort{}, []int{1, 2, 3, 4}},
		{"none reversed", Sort{Key: SortNone, Reverse: true}, []int{4, 3, 2, 1}},
		{"title ascending", Sort{Key: SortTitle}, []int{3, 4, 2, 1}},
		{"title reversed", Sort{Key: SortTitle, Reverse: true}, []int{1, 2, 4, 3}},
		{"author ascending", Sort{Key: SortBy}, []int{3, 4, 1, 2}},
		// ties reverse along with the rest: 2 before 4 ascending, so 4 before 2
		{"comments descending", Sort{Key: SortComments}, []int{4, 2, 3, 1}},
		{"comments reversed", Sort{Key: SortComments, Reverse: true}, []int{1, 3, 2, 4}},
		{"points descending", Sort{Key: SortPoints}, []int{3, 2, 1, 4}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			list := listFixture()
			got := idsOf(c.sort.Apply(list))
			if !reflect.DeepEqual(got, c.want) {
				t.Fatalf("order = %v; want %v", got, c.want)
			}
			if !reflect.DeepEqual(idsOf(list), []int{1, 2, 3, 4}) {
				t.Fatalf("Apply modified its input")
			}
		})
	}
}

func TestSortToggle(t *testing.T) {
	s := Sort{}
	s = s.Toggle(SortTitle)
	if s != (Sort{Key: SortTitle}) {
		t.Fatalf("first select = %+v", s)
	}
	s = s.Toggle(SortTitle)
	if s != (Sort{Key: SortTitle, Reverse: true}) {
		t.Fatalf("second select = %+v", s)
	}
	s = s.Toggle(SortTitle)
	if s.Reverse {
		t.Fatalf("third select should clear reverse")
	}
	s = s.Toggle(SortTitle).Toggle(SortPoints)
	if s != (Sort{Key: SortPoints}) {
		t.Fatalf("switching key = %+v; want unreversed points", s)
	}
}

func TestFilter(t *testing.T) {
	cases := []struct {
		term string
		want []int
	}{
		{"", []int{1, 2, 3, 4}},
		{"react", []int{1, 3}},
		{"REACT", []int{1, 3}},
		{"tea", []int{4}},
		{"rust", []int{}},
	}
	for _, c := range cases {
		got := idsOf(Filter(listFixture(), c.term))
		if !reflect.DeepEqual(got, c.want) {
			t.Fatalf("Filter(%q) = %v; want %v", c.term, got, c.want)
		}
	}
}

func TestVisibleFiltersThenSorts(t *testing.T) {
	got := idsOf(Visible(listFixture(), "react", Sort{Key: SortPoints}))
	if !reflect.DeepEqual(got, []int{3, 1}) {
		t.Fatalf("Visible = %v; want [3 1]", got)
	}
}

func TestParseSortKey(t *testing.T) {
	for k, name := range sortKeyNames {
		got, err := ParseSortKey(name)
		if err != nil || got != k {
			t.Fatalf("ParseSortKey(%q) = %v, %v; want %v", name, got, err, k)
		}
	}
	if _, err := ParseSortKey("karma"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}
