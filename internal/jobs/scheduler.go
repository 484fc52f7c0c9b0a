package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"awkwardturtle/api/internal/config"
	"awkwardturtle/api/internal/service"
)

// Scheduler runs periodic maintenance: read notifications older than
// the retention window are purged on the configured schedule.
type Scheduler struct {
	cron          *cron.Cron
	notifications *service.NotificationService
	cfg           *config.AppConfig
	log           zerolog.Logger
}

func NewScheduler(notifications *service.NotificationService, cfg *config.AppConfig, log zerolog.Logger) *Scheduler {
	c := cron.New(cron.WithSeconds())
	return &Scheduler{
		cron:          c,
		notifications: notifications,
		cfg:           cfg,
		log:           log,
	}
}

func (s *Scheduler) Start() error {
	if s.notifications == nil {
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.Notifications.PurgeSchedule, s.purgeReadNotifications); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// Stop halts scheduling and waits briefly for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
	}
}

func (s *Scheduler) purgeReadNotifications() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	purged, err := s.notifications.PurgeRead(ctx, s.cfg.Notifications.PurgeRetention)
	if err != nil {
		s.log.Error().Err(err).Msg("notification purge failed")
		return
	}
	if purged > 0 {
		s.log.Info().Int64("purged", purged).Msg("read notifications purged")
	}
}
