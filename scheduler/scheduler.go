// Package scheduler triggers periodic refreshes on a cron schedule.
package scheduler

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// Scheduler runs a task on a cron schedule, skipping ticks while busy
// reports true.
type Scheduler struct {
	cron    *cron.Cron
	mu      sync.Mutex
	entryID cron.EntryID
	spec    string
	busy    func() bool
	task    func()
	log     *slog.Logger
}

// New validates spec (standard five-field cron or a descriptor such as
// "@every 5m") and registers task. busy may be nil.
func New(spec string, busy func() bool, task func(), logger *slog.Logger) (*Scheduler, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}

	s := &Scheduler{
		cron: cron.New(),
		spec: spec,
		busy: busy,
		task: task,
		log:  logger,
	}

	id, err := s.cron.AddFunc(spec, s.run)
	if err != nil {
		return nil, fmt.Errorf("adding cron entry: %w", err)
	}
	s.entryID = id
	return s, nil
}

// Start begins the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("refresh scheduled", "cron", s.spec)
}

// Stop halts the scheduler and waits for a running task to return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// run is the cron job body
func (s *Scheduler) run() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy != nil && s.busy() {
		s.log.Info("scheduled refresh skipped: fetch in progress")
		return
	}
	s.log.Info("scheduled refresh triggered")
	s.task()
}
