package prize_service

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/raffle/internal/database"
	"github.com/tcp_snm/raffle/internal/jst"
	"github.com/tcp_snm/raffle/internal/raffle_errors"
	"github.com/tcp_snm/raffle/internal/service"
)

func (p *PrizeService) CreatePrize(
	ctx context.Context,
	prize Prize,
) (created Prize, err error) {
	prize.ID = strings.TrimSpace(prize.ID)
	prize.Name = strings.TrimSpace(prize.Name)
	prize.ResultTimeJST = strings.TrimSpace(prize.ResultTimeJST)

	// validate the prize
	if err = service.ValidateInput(prize); err != nil {
		return
	}

	// derive the publish instant from the jst text. the stored pair must
	// never disagree, so the utc value is always computed here
	publishUTC, err := jst.TextToUTC(prize.ResultTimeJST)
	if err != nil {
		err = fmt.Errorf("%w, %s", raffle_errors.ErrInvalidRequest, err.Error())
		log.Error(err)
		return
	}

	dbPrize, err := p.DB.CreatePrize(ctx, database.CreatePrizeParams{
		ID:             prize.ID,
		Name:           prize.Name,
		ResultTimeJst:  prize.ResultTimeJST,
		PublishTimeUtc: publishUTC,
	})
	if err != nil {
		err = raffle_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf("cannot create prize %s", prize.ID),
		)
		return
	}

	log.WithFields(log.Fields{
		"prize_id":    dbPrize.ID,
		"publish_utc": dbPrize.PublishTimeUtc,
	}).Info("created prize")

	return prizeFromDB(dbPrize), nil
}
