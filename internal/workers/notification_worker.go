package workers

import (
	"context"
	"time"

	"github.com/semihsari152/CoreGameApp-sub006/internal/logger"
	"github.com/semihsari152/CoreGameApp-sub006/internal/repositories"
)

// NotificationWorker prunes the notification table: rows past their
// explicit expiry, and anything older than the retention window.
type NotificationWorker struct {
	repo          repositories.NotificationRepository
	interval      time.Duration
	retentionDays int
}

func NewNotificationWorker(repo repositories.NotificationRepository, interval time.Duration, retentionDays int) *NotificationWorker {
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	if retentionDays <= 0 {
		retentionDays = 90
	}
	return &NotificationWorker{
		repo:          repo,
		interval:      interval,
		retentionDays: retentionDays,
	}
}

func (w *NotificationWorker) Start(ctx context.Context) {
	go w.cleanupLoop(ctx)
}

func (w *NotificationWorker) cleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("notification worker stopped")
			return
		case <-ticker.C:
			w.RunOnce()
		}
	}
}

// RunOnce executes one cleanup pass. Exported so the admin endpoint
// and tests can trigger it directly.
func (w *NotificationWorker) RunOnce() {
	expired, err := w.repo.DeleteExpired()
	logger.WorkerLog("notification", "delete_expired", err)
	if err == nil && expired > 0 {
		logger.Info("pruned expired notifications", "count", expired)
	}

	cutoff := time.Now().AddDate(0, 0, -w.retentionDays)
	stale, err := w.repo.DeleteOlderThan(cutoff)
	logger.WorkerLog("notification", "delete_stale", err)
	if err == nil && stale > 0 {
		logger.Info("pruned stale notifications", "count", stale, "retention_days", w.retentionDays)
	}
}
