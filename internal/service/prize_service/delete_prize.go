package prize_service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/raffle/internal/raffle_errors"
)

// DeletePrize removes a prize and all of its entries in one transaction.
func (p *PrizeService) DeletePrize(
	ctx context.Context,
	prizeID string,
) (entriesDeleted int64, err error) {
	tx, err := p.Pool.Begin(ctx)
	if err != nil {
		err = fmt.Errorf(
			"%w, cannot begin transaction to delete prize %s, %w",
			raffle_errors.ErrInternal,
			prizeID,
			err,
		)
		log.Error(err)
		return
	}
	defer tx.Rollback(ctx)

	qtx := p.DB.WithTx(tx)

	entriesDeleted, err = qtx.DeleteEntriesByPrize(ctx, prizeID)
	if err != nil {
		err = raffle_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot delete entries of prize %s", prizeID),
		)
		return
	}

	prizesDeleted, err := qtx.DeletePrize(ctx, prizeID)
	if err != nil {
		err = raffle_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot delete prize %s", prizeID),
		)
		return
	}
	if prizesDeleted == 0 {
		err = raffle_errors.ErrNotFound
		return
	}

	if err = tx.Commit(ctx); err != nil {
		err = fmt.Errorf(
			"%w, cannot commit deletion of prize %s, %w",
			raffle_errors.ErrInternal,
			prizeID,
			err,
		)
		log.Error(err)
		return
	}

	log.WithFields(log.Fields{
		"prize_id":        prizeID,
		"entries_deleted": entriesDeleted,
	}).Info("deleted prize")

	return entriesDeleted, nil
}
