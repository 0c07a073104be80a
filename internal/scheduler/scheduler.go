package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"rfp-procurement-go/internal/config"
	"rfp-procurement-go/internal/metrics"
	"rfp-procurement-go/internal/model"
	"rfp-procurement-go/internal/repository"
)

// Scheduler periodically refreshes the vendor/RFP/proposal gauges from the
// data store
type Scheduler struct {
	cron      *cron.Cron
	entryID   cron.EntryID
	config    *config.SchedulerConfig
	repo      *repository.Repository
	metrics   *metrics.Metrics
	wg        sync.WaitGroup
	isRunning bool
	mu        sync.RWMutex
}

// NewScheduler creates a new scheduler
func NewScheduler(cfg *config.SchedulerConfig, repo *repository.Repository, m *metrics.Metrics) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		config:  cfg,
		repo:    repo,
		metrics: m,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}

	schedule := fmt.Sprintf("0 */%d * * * *", s.config.IntervalMinutes)

	entryID, err := s.cron.AddFunc(schedule, s.refreshGauges)
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.entryID = entryID
	s.cron.Start()
	s.isRunning = true

	logrus.Infof("Scheduler started with interval: %d minutes", s.config.IntervalMinutes)
	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	ctx := s.cron.Stop()

	select {
	case <-ctx.Done():
		logrus.Info("Scheduler stopped gracefully")
	case <-time.After(30 * time.Second):
		logrus.Warn("Scheduler stop timeout, forcing shutdown")
	}

	s.isRunning = false
	return nil
}

// IsRunning returns whether the scheduler is running
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRun returns the time of the next scheduled run
func (s *Scheduler) GetNextRun() time.Time {
	if !s.IsRunning() {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Next
}

// GetLastRun returns the time of the last run
func (s *Scheduler) GetLastRun() time.Time {
	if !s.IsRunning() {
		return time.Time{}
	}
	return s.cron.Entry(s.entryID).Prev
}

// Wait waits for any in-flight refresh to finish
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

// RunOnce refreshes the gauges immediately (for manual triggering)
func (s *Scheduler) RunOnce() {
	s.refreshGauges()
}

// refreshGauges recomputes the store-derived gauges
func (s *Scheduler) refreshGauges() {
	s.wg.Add(1)
	defer s.wg.Done()

	if vendors, err := s.repo.CountVendors(); err != nil {
		logrus.Errorf("Failed to count vendors: %v", err)
	} else {
		s.metrics.TotalVendors.Set(float64(vendors))
	}

	open := int64(0)
	for _, status := range []string{model.RFPStatusDraft, model.RFPStatusSent} {
		count, err := s.repo.CountRFPsByStatus(status)
		if err != nil {
			logrus.Errorf("Failed to count RFPs with status %s: %v", status, err)
			return
		}
		open += count
	}
	s.metrics.OpenRFPs.Set(float64(open))

	if proposals, err := s.repo.CountProposals(); err != nil {
		logrus.Errorf("Failed to count proposals: %v", err)
	} else {
		s.metrics.TotalProposals.Set(float64(proposals))
	}
}
