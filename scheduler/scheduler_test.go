package scheduler

import (
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewRejectsInvalidSpec(t *testing.T) {
	for _, spec := range []string{"", "every minute", "61 * * * *", "@every nope"} {
		if _, err := New(spec, nil, func() {}, quietLogger()); err == nil {
			t.Fatalf("New(%q) accepted an invalid schedule", spec)
		}
	}
}

func TestRunSkipsWhileBusy(t *testing.T) {
	var busy atomic.Bool
	var runs atomic.Int32
	s, err := New("*/5 * * * *", busy.Load, func() { runs.Add(1) }, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	s.run()
	busy.Store(true)
	s.run()
	s.run()
	busy.Store(false)
	s.run()

	if got := runs.Load(); got != 2 {
		t.Fatalf("task ran %d times; want 2", got)
	}
}

func TestStartFiresTask(t *testing.T) {
	fired := make(chan struct{}, 1)
	s, err := New("@every 1s", nil, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	}, quietLogger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Start()
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("scheduled task did not fire")
	}
}
