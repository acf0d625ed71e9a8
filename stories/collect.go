package stories

import (
	"context"
	"errors"
	"sync"

	"hackerstories/hn"
	"hackerstories/types"
)

// errNilStory stands in for a Fetcher that reported neither a story nor an error.
var errNilStory = errors.New("fetcher returned no story")

type itemResult struct {
	id    int
	story *types.Story
	err   error
}

// Collect fetches every id concurrently and joins the results all-or-nothing.
// Stories come back in completion order with duplicate ids dropped (first
// arrival kept). If any request fails the partial results are discarded and
// an *AggregationError naming the first failure is returned. The remaining
// requests are cancelled, and Collect waits for all of them before it
// returns. maxConcurrent <= 0 issues every request at once.
func Collect(ctx context.Context, f hn.Fetcher, ids []int, maxConcurrent int) ([]types.Story, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []types.Story{}, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var sem chan struct{}
	if maxConcurrent > 0 {
		sem = make(chan struct{}, maxConcurrent)
	}

	results := make(chan itemResult, len(ids))
	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if sem != nil {
				select {
				case sem <- struct{}{}:
					defer func() { <-sem }()
				case <-ctx.Done():
					results <- itemResult{id: id, err: ctx.Err()}
					return
				}
			}
			story, err := f.FetchItem(ctx, id)
			if err == nil && story == nil {
				err = errNilStory
			}
			results <- itemResult{id: id, story: story, err: err}
		}(id)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var failed *AggregationError
	out := make([]types.Story, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for r := range results {
		if failed != nil {
			continue
		}
		if r.err != nil {
			failed = &AggregationError{ID: r.id, Total: len(ids), Err: r.err}
			cancel()
			continue
		}
		if _, dup := seen[r.story.ID]; dup {
			continue
		}
		seen[r.story.ID] = struct{}{}
		out = append(out, *r.story)
	}

	if failed != nil {
		return nil, failed
	}
	return out, nil
}

// uniqueIDs drops repeated identifiers, keeping list order.
func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
