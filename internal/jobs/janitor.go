package jobs

import (
	"context"

	"github.com/robfig/cron/v3"

	"fixitfast/internal/services"
	"fixitfast/pkg/logger"
	mem "fixitfast/pkg/memcache"
)

// Janitor runs the periodic housekeeping: expired reset tokens are purged
// hourly and a daily snapshot of the operational numbers goes to the log.
type Janitor struct {
	cron        *cron.Cron
	resetTokens mem.ResetTokenStore
	dashboard   services.DashboardServiceInterface
}

func NewJanitor(resetTokens mem.ResetTokenStore, dashboard services.DashboardServiceInterface) *Janitor {
	return &Janitor{
		cron:        cron.New(),
		resetTokens: resetTokens,
		dashboard:   dashboard,
	}
}

func (j *Janitor) Start() error {
	if _, err := j.cron.AddFunc("@hourly", j.purgeResetTokens); err != nil {
		return err
	}
	if _, err := j.cron.AddFunc("@daily", j.logDailySnapshot); err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

func (j *Janitor) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

func (j *Janitor) purgeResetTokens() {
	if removed := j.resetTokens.PurgeExpired(); removed > 0 {
		logger.Info().Int("removed", removed).Msg("purged expired reset tokens")
	}
}

func (j *Janitor) logDailySnapshot() {
	stats, err := j.dashboard.AdminDashboard(context.Background())
	if err != nil {
		logger.Error().Err(err).Msg("daily snapshot failed")
		return
	}
	logger.Info().
		Int64("total_complaints", stats.Complaints.Total).
		Int64("pending", stats.Complaints.Pending).
		Int64("in_progress", stats.Complaints.InProgress).
		Int64("resolved", stats.Complaints.Resolved).
		Int64("pending_status_updates", stats.PendingUpdates).
		Msg("daily complaint snapshot")
}
