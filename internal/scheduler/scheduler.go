package scheduler

import (
	"time"

	"propertypulse-backend/internal/jobs"
	"propertypulse-backend/internal/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.MarkExpiredContracts, s.jobs.MarkExpiredContracts)
	if err != nil {
		logger.Error("Failed to register MarkExpiredContracts job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.ContractExpiryReminders, s.jobs.SendContractExpiryReminders)
	if err != nil {
		logger.Error("Failed to register SendContractExpiryReminders job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.EventReminders, s.jobs.SendEventReminders)
	if err != nil {
		logger.Error("Failed to register SendEventReminders job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.PendingRequestDigest, s.jobs.SendPendingRequestDigest)
	if err != nil {
		logger.Error("Failed to register SendPendingRequestDigest job", "error", err)
	}
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting scheduler")
	s.cron.Start()
}

// Stop halts the cron scheduler, waiting for running jobs to finish
func (s *Scheduler) Stop() {
	logger.Info("Stopping scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
}
