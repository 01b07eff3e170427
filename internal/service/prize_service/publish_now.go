package prize_service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/raffle/internal/raffle_errors"
)

// PublishNow moves the publish instant of a prize to the current server
// time, making its results visible immediately.
func (p *PrizeService) PublishNow(
	ctx context.Context,
	prizeID string,
) (Prize, error) {
	dbPrize, err := p.DB.PublishPrizeNow(ctx, prizeID)
	if err != nil {
		return Prize{}, raffle_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot publish prize %s now", prizeID),
		)
	}

	log.WithFields(log.Fields{
		"prize_id":    prizeID,
		"publish_utc": dbPrize.PublishTimeUtc,
	}).Info("prize published now")

	return prizeFromDB(dbPrize), nil
}
