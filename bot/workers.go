package bot

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	log "github.com/sirupsen/logrus"
)

// StartAutoPlayWorker schedules the auto-play job that finishes due
// matches. Returns a stop function; a nil stop means the worker is
// disabled.
func (b *Bot) StartAutoPlayWorker(ctx context.Context, intervalMinutes int) error {
	if intervalMinutes <= 0 {
		log.Info("Auto-play worker disabled")
		return nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(time.Duration(intervalMinutes)*time.Minute),
		gocron.NewTask(func() {
			b.matches.RunAutoPlay(ctx, time.Now().UTC())
		}),
	)
	if err != nil {
		return err
	}

	scheduler.Start()
	log.WithField("interval_minutes", intervalMinutes).Info("Auto-play worker started")

	b.stopAutoPlayWorker = func() {
		if err := scheduler.Shutdown(); err != nil {
			log.WithError(err).Warn("Failed to shut down auto-play scheduler")
		}
	}
	return nil
}
