// Package scheduler refreshes the lookup service snapshot on a daily
// timetable and warns when the data goes stale.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/emi03-byte/MedAI/interfaces"
	"github.com/emi03-byte/MedAI/logging"
	"github.com/go-co-op/gocron"
)

// Compile-time check to ensure Scheduler implements Scheduler interface
var _ interfaces.Scheduler = (*Scheduler)(nil)

// staleAfter is how old data may get before the monitor warns.
const staleAfter = 25 * time.Hour

type Scheduler struct {
	dataStore interfaces.DataStore
	pipeline  interfaces.Pipeline
	refreshAt string
	scheduler *gocron.Scheduler

	mu      sync.Mutex
	job     *gocron.Job
	ctx     context.Context
	cancel  context.CancelFunc
	monitor sync.WaitGroup
}

// NewScheduler creates a scheduler that runs pipeline at the refreshAt times
// ("HH:MM;HH:MM", local time) and publishes into dataStore.
func NewScheduler(dataStore interfaces.DataStore, pipeline interfaces.Pipeline, refreshAt string) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		dataStore: dataStore,
		pipeline:  pipeline,
		refreshAt: refreshAt,
		scheduler: gocron.NewScheduler(time.Local),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Start loads the first snapshot, then schedules the refreshes. The service
// must not come up without data, so a failed initial load is returned.
func (s *Scheduler) Start() error {
	if err := s.updateData(); err != nil {
		logging.Error("Failed to perform initial data load", "error", err)
		return fmt.Errorf("initial data load failed: %w", err)
	}

	job, err := s.scheduler.Every(1).Days().At(s.refreshAt).Do(func() {
		if err := s.updateData(); err != nil {
			// keep serving the previous snapshot
			logging.Error("Failed to update data", "error", err)
		}
	})
	if err != nil {
		logging.Error("Failed to schedule updates", "error", err)
		return fmt.Errorf("failed to schedule updates at %q: %w", s.refreshAt, err)
	}

	s.mu.Lock()
	s.job = job
	s.mu.Unlock()

	s.scheduler.StartAsync()
	s.startHealthMonitoring(time.Hour)

	logging.Info("Scheduler started", "refresh_at", s.refreshAt, "next_run", s.NextRun().Format(time.RFC3339))
	return nil
}

// Stop cancels a running refresh and stops the timetable.
func (s *Scheduler) Stop() {
	s.cancel()
	s.scheduler.Stop()
	s.monitor.Wait()
}

// NextRun returns the next scheduled refresh.
func (s *Scheduler) NextRun() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.job == nil {
		return time.Time{}
	}
	return s.job.NextRun()
}

// updateData runs the pipeline and publishes the result. Overlapping calls are
// skipped rather than queued.
func (s *Scheduler) updateData() error {
	if !s.dataStore.BeginUpdate() {
		logging.Info("Update already in progress, skipping...")
		return nil
	}
	defer s.dataStore.EndUpdate()

	start := time.Now()
	snapshot, err := s.pipeline.Refresh(s.ctx)
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	s.dataStore.UpdateData(snapshot)

	logging.Info("Data update completed",
		"run_id", snapshot.RunID,
		"duration", time.Since(start).String(),
		"medication_count", len(snapshot.Medications),
		"mapped", snapshot.Stats.Mapped)
	return nil
}

func (s *Scheduler) startHealthMonitoring(interval time.Duration) {
	s.monitor.Add(1)
	go func() {
		defer s.monitor.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticker.C:
				if age := time.Since(s.dataStore.GetLastUpdated()); age > staleAfter {
					logging.Warn("Data hasn't been refreshed recently", "age", age.Round(time.Minute).String())
				}
			}
		}
	}()
}
