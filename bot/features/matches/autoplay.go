package matches

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// RunAutoPlay simulates every open match whose kick-off time has
// passed. With a results channel configured each match runs in its own
// transaction so the result can be announced as it lands; otherwise the
// bulk path finishes them all in one transaction.
func (f *Feature) RunAutoPlay(ctx context.Context, now time.Time) {
	if f.resultsChannelID == "" {
		f.runAutoPlayBulk(ctx, now)
		return
	}

	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.WithError(err).Error("Auto-play: failed to begin transaction")
		return
	}

	upcoming, err := f.matchService(uow).ListUpcoming(ctx)
	if err != nil {
		uow.Rollback()
		log.WithError(err).Error("Auto-play: failed to list matches")
		return
	}
	uow.Rollback()

	for _, match := range upcoming {
		if match.ScheduledAt == nil || match.ScheduledAt.After(now) {
			continue
		}
		f.autoPlayOne(ctx, match.ID)
	}
}

func (f *Feature) autoPlayOne(ctx context.Context, matchID string) {
	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.WithError(err).Error("Auto-play: failed to begin transaction")
		return
	}
	defer uow.Rollback()

	svc := f.matchService(uow)
	outcome, err := svc.SimulateMatch(ctx, matchID)
	if err != nil {
		log.WithError(err).WithField("match_id", matchID).Error("Auto-play: simulation failed")
		return
	}

	match, err := svc.GetMatch(ctx, matchID)
	if err != nil {
		log.WithError(err).WithField("match_id", matchID).Error("Auto-play: failed to reload match")
		return
	}

	if err := uow.Commit(); err != nil {
		log.WithError(err).WithField("match_id", matchID).Error("Auto-play: failed to commit")
		return
	}

	log.WithFields(log.Fields{
		"match_id": matchID,
		"score":    outcome.Score(),
	}).Info("Auto-play: match simulated")

	f.announceResult(matchResultEmbed(match, outcome))
}

func (f *Feature) runAutoPlayBulk(ctx context.Context, now time.Time) {
	uow := f.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.WithError(err).Error("Auto-play: failed to begin transaction")
		return
	}
	defer uow.Rollback()

	finished, err := f.matchService(uow).SimulateDue(ctx, now)
	if err != nil {
		log.WithError(err).Error("Auto-play: bulk simulation failed")
		return
	}

	if err := uow.Commit(); err != nil {
		log.WithError(err).Error("Auto-play: failed to commit")
		return
	}

	if finished > 0 {
		log.WithField("matches", finished).Info("Auto-play: due matches simulated")
	}
}
