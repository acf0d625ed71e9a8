package stories

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"hackerstories/hn"
)

// Options tune how the controller runs fetch sequences.
type Options struct {
	// Limit truncates the identifier list (0 means all)
	Limit int
	// MaxConcurrent bounds in-flight item requests (0 means unbounded)
	MaxConcurrent int
	// StaleGuard drops terminal transitions from superseded sequences.
	// Off by default: overlapping sequences race and the last one to finish wins.
	StaleGuard bool
	Logger     *slog.Logger
}

// Controller owns the session's FetchState. Every change goes through
// Dispatch and is applied atomically under its mutex.
type Controller struct {
	fetcher hn.Fetcher
	opts    Options
	log     *slog.Logger

	mu    sync.Mutex
	state FetchState
	seq   uint64 // sequences started so far
	subs  []chan FetchState
}

// NewController creates a controller holding the initial state.
func NewController(fetcher hn.Fetcher, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		fetcher: fetcher,
		opts:    opts,
		log:     logger,
		state:   Initial(),
	}
}

// State returns a snapshot of the current state.
func (c *Controller) State() FetchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Busy reports whether a fetch sequence is in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.IsLoading
}

// Dispatch applies a to the current state and returns the result.
func (c *Controller) Dispatch(a Action) FetchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyLocked(a)
	return c.state.Clone()
}

// Remove drops the story with id from the loaded list. Unknown ids are ignored.
func (c *Controller) Remove(id int) {
	c.Dispatch(RemoveItem{ID: id})
}

// Subscribe returns a channel receiving the state after every transition.
// The channel holds only the latest state: a slow reader skips intermediate
// ones but always sees the most recent.
func (c *Controller) Subscribe() <-chan FetchState {
	ch := make(chan FetchState, 1)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, ch)
	return ch
}

// Fetch runs one fetch sequence for listURL and blocks until its terminal
// transition has been applied. Failures are logged and end up in IsError;
// they are never returned. The result is the state right after this
// sequence's terminal transition. applied is false when the stale guard
// dropped it because a newer sequence had started.
func (c *Controller) Fetch(ctx context.Context, listURL string) (result FetchState, applied bool) {
	runID := uuid.New().String()
	started := time.Now()

	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.applyLocked(BeginFetch{})
	c.mu.Unlock()

	log := c.log.With("run_id", runID, "seq", seq, "url", listURL)
	log.Info("fetch started")

	ids, err := c.fetcher.FetchIDs(ctx, listURL)
	if err != nil {
		log.Error("fetching identifier list failed", "error", err)
		return c.finish(seq, FetchFailure{}, log)
	}
	if c.opts.Limit > 0 && len(ids) > c.opts.Limit {
		ids = ids[:c.opts.Limit]
	}

	items, err := Collect(ctx, c.fetcher, ids, c.opts.MaxConcurrent)
	if err != nil {
		log.Error("fetching items failed", "ids", len(ids), "error", err)
		return c.finish(seq, FetchFailure{}, log)
	}

	log.Info("fetch finished", "ids", len(ids), "stories", len(items), "elapsed", time.Since(started))
	return c.finish(seq, FetchSuccess{Items: items}, log)
}

// finish applies a sequence's terminal transition, unless the stale guard
// is on and a newer sequence has started since.
func (c *Controller) finish(seq uint64, a Action, log *slog.Logger) (FetchState, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.opts.StaleGuard && seq != c.seq {
		log.Warn("dropping result of superseded fetch", "action", a.Kind(), "latest_seq", c.seq)
		return c.state.Clone(), false
	}
	c.applyLocked(a)
	return c.state.Clone(), true
}

// applyLocked must be called with c.mu held.
func (c *Controller) applyLocked(a Action) {
	c.state = Reduce(c.state, a)
	c.log.Debug("state transition", "action", a.Kind(), "stories", len(c.state.Data),
		"loading", c.state.IsLoading, "error", c.state.IsError)
	for _, ch := range c.subs {
		// latest wins: drop an unread state before sending the new one
		select {
		case <-ch:
		default:
		}
		ch <- c.state.Clone()
	}
}
