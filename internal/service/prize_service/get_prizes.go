package prize_service

import (
	"context"
	"fmt"

	"github.com/tcp_snm/raffle/internal/raffle_errors"
)

func (p *PrizeService) GetPrizeByID(
	ctx context.Context,
	prizeID string,
) (Prize, error) {
	dbPrize, err := p.DB.GetPrize(ctx, prizeID)
	if err != nil {
		return Prize{}, raffle_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot fetch prize %s", prizeID),
		)
	}
	return prizeFromDB(dbPrize), nil
}

func (p *PrizeService) ListPrizes(ctx context.Context) ([]Prize, error) {
	dbPrizes, err := p.DB.ListPrizes(ctx)
	if err != nil {
		return nil, raffle_errors.HandleDBErrors(err, nil, "cannot list prizes")
	}

	prizes := make([]Prize, 0, len(dbPrizes))
	for _, dbPrize := range dbPrizes {
		prizes = append(prizes, prizeFromDB(dbPrize))
	}
	return prizes, nil
}
