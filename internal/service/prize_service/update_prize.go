package prize_service

import (
	"context"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/raffle/internal/database"
	"github.com/tcp_snm/raffle/internal/jst"
	"github.com/tcp_snm/raffle/internal/raffle_errors"
	"github.com/tcp_snm/raffle/internal/service"
)

func (p *PrizeService) UpdatePrize(
	ctx context.Context,
	prizeID string,
	update PrizeUpdate,
) (updated Prize, err error) {
	if err = service.ValidateInput(update); err != nil {
		return
	}

	if update.Name == nil && update.ResultTimeJST == nil {
		err = fmt.Errorf("%w, no updatable fields", raffle_errors.ErrInvalidRequest)
		log.Error(err)
		return
	}

	// a new jst text always re-derives the publish instant, keeping the
	// stored pair in agreement
	var publishUTC *time.Time
	if update.ResultTimeJST != nil {
		trimmed := strings.TrimSpace(*update.ResultTimeJST)
		update.ResultTimeJST = &trimmed

		var instant time.Time
		instant, err = jst.TextToUTC(trimmed)
		if err != nil {
			err = fmt.Errorf("%w, %s", raffle_errors.ErrInvalidRequest, err.Error())
			log.Error(err)
			return
		}
		publishUTC = &instant
	}

	dbPrize, err := p.DB.UpdatePrize(ctx, database.UpdatePrizeParams{
		ID:             prizeID,
		Name:           update.Name,
		ResultTimeJst:  update.ResultTimeJST,
		PublishTimeUtc: publishUTC,
	})
	if err != nil {
		err = raffle_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot update prize %s", prizeID),
		)
		return
	}

	log.WithField("prize_id", prizeID).Info("updated prize")

	return prizeFromDB(dbPrize), nil
}
