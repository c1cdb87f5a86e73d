package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"go-agroprod-ws/internal/service"
)

// Scheduler runs the nightly cloud backup.
type Scheduler struct {
	cron      *cron.Cron
	backupSvc service.BackupService
	schedule  string
	logger    *zap.Logger
}

func NewScheduler(backupSvc service.BackupService, schedule string, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:      cron.New(),
		backupSvc: backupSvc,
		schedule:  schedule,
		logger:    logger,
	}
}

// Start registers the backup job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.schedule))

	_, err := s.cron.AddFunc(s.schedule, s.runCloudBackup)
	if err != nil {
		s.logger.Error("failed to schedule cloud backup", zap.Error(err))
		return
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runCloudBackup() {
	s.logger.Info("running scheduled cloud backup")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	exportDate, err := s.backupSvc.CloudSave(ctx)
	if err != nil {
		s.logger.Error("scheduled cloud backup failed", zap.Error(err))
		return
	}

	s.logger.Info("scheduled cloud backup completed", zap.String("export_date", exportDate))
}
