package stories

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"hackerstories/hn"
	"hackerstories/types"
)

// stubFetcher is an in-memory hn.Fetcher. Lists with a gate block in
// FetchIDs until the gate is closed; entered is signalled on arrival.
type stubFetcher struct {
	mu        sync.Mutex
	lists     map[string][]int
	items     map[int]types.Story
	failItems map[int]bool
	hangItems map[int]bool
	gates     map[string]chan struct{}
	entered   chan string
	itemDelay time.Duration

	itemCalls   atomic.Int32
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func newStubFetcher() *stubFetcher {
	return &stubFetcher{
		lists:     make(map[string][]int),
		items:     make(map[int]types.Story),
		failItems: make(map[int]bool),
		hangItems: make(map[int]bool),
		gates:     make(map[string]chan struct{}),
		entered:   make(chan string, 16),
	}
}

func (f *stubFetcher) addList(url string, stories ...types.Story) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int, 0, len(stories))
	for _, st := range stories {
		ids = append(ids, st.ID)
		f.items[st.ID] = st
	}
	f.lists[url] = ids
}

func (f *stubFetcher) gate(url string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	ch := make(chan struct{})
	f.gates[url] = ch
	return ch
}

func (f *stubFetcher) FetchIDs(ctx context.Context, listURL string) ([]int, error) {
	f.mu.Lock()
	gate := f.gates[listURL]
	ids, ok := f.lists[listURL]
	f.mu.Unlock()

	if gate != nil {
		f.entered <- listURL
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, &hn.TransportError{Op: hn.OpList, URL: listURL, Err: ctx.Err()}
		}
	}
	if !ok {
		return nil, &hn.TransportError{Op: hn.OpList, URL: listURL, StatusCode: 500}
	}
	return append([]int(nil), ids...), nil
}

func (f *stubFetcher) FetchItem(ctx context.Context, id int) (*types.Story, error) {
	f.itemCalls.Add(1)
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		max := f.maxInFlight.Load()
		if n <= max || f.maxInFlight.CompareAndSwap(max, n) {
			break
		}
	}

	f.mu.Lock()
	st, ok := f.items[id]
	fail := f.failItems[id]
	hang := f.hangItems[id]
	delay := f.itemDelay
	f.mu.Unlock()

	url := fmt.Sprintf("stub/item/%d.json", id)
	if hang {
		<-ctx.Done()
		return nil, &hn.TransportError{Op: hn.OpItem, URL: url, ID: id, Err: ctx.Err()}
	}
	if delay > 0 {
		time.Sleep(delay)
	}
	if fail || !ok {
		return nil, &hn.TransportError{Op: hn.OpItem, URL: url, ID: id, StatusCode: 503}
	}
	return &st, nil
}
