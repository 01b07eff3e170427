package lottery_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/raffle/internal/database"
	"github.com/tcp_snm/raffle/internal/raffle_errors"
	"github.com/tcp_snm/raffle/internal/service"
)

// Check resolves a participant's result. Before the prize's publish
// instant it answers "not published" without revealing anything, even
// for valid credentials.
func (l *LotteryService) Check(
	ctx context.Context,
	request CheckRequest,
) (result CheckResult, err error) {
	if err = service.ValidateInput(request); err != nil {
		return
	}

	prize, err := l.getPrize(ctx, request.PrizeID)
	if err != nil {
		return
	}

	// one clock reading for the whole check, so the gate and the
	// outcome can never straddle the publish instant
	now := time.Now()
	if now.Before(prize.PublishTimeUtc) {
		return decideOutcome(prize, nil, now), nil
	}

	entry, err := l.DB.GetEntryByCredentials(ctx, database.GetEntryByCredentialsParams{
		PrizeID:     request.PrizeID,
		EntryNumber: request.EntryNumber,
		Password:    request.Password,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decideOutcome(prize, nil, now), nil
		}
		err = raffle_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot look up entry for prize %s", request.PrizeID),
		)
		return
	}

	log.WithFields(log.Fields{
		"prize_id":     request.PrizeID,
		"entry_number": request.EntryNumber,
		"is_winner":    entry.IsWinner,
	}).Info("lottery check resolved")

	return decideOutcome(prize, &entry, now), nil
}

// PublishStatus reports how a prize's publish instant compares to the
// server clock. Admin-facing debug helper.
func (l *LotteryService) PublishStatus(
	ctx context.Context,
	prizeID string,
) (PublishStatus, error) {
	prize, err := l.getPrize(ctx, prizeID)
	if err != nil {
		return PublishStatus{}, err
	}

	now := time.Now().UTC()
	return PublishStatus{
		PrizeID:        prize.ID,
		PrizeName:      prize.Name,
		PublishTimeUTC: prize.PublishTimeUtc,
		NowUTC:         now,
		Published:      !now.Before(prize.PublishTimeUtc),
	}, nil
}

func (l *LotteryService) getPrize(
	ctx context.Context,
	prizeID string,
) (database.Prize, error) {
	if prize, ok := l.prizeCache.Get(prizeID); ok {
		return prize, nil
	}

	prize, err := l.DB.GetPrize(ctx, prizeID)
	if err != nil {
		return database.Prize{}, raffle_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot fetch prize %s for lottery check", prizeID),
		)
	}

	l.prizeCache.Add(prizeID, prize)
	return prize, nil
}

// decideOutcome maps a prize, an optional matched entry and the current
// time onto the public result. A nil entry after the publish instant
// means the credential triple matched nothing.
func decideOutcome(prize database.Prize, entry *database.Entry, now time.Time) CheckResult {
	if now.Before(prize.PublishTimeUtc) {
		return CheckResult{
			Status:  StatusNotPublished,
			Message: "results are not published yet. please check again after the publish time",
		}
	}
	if entry == nil {
		return CheckResult{
			Status:  StatusNotFound,
			Message: "entry not found. please check your entry number and password",
		}
	}
	if entry.IsWinner {
		return CheckResult{
			Status:    StatusWin,
			Message:   fmt.Sprintf("congratulations! you won %q!", prize.Name),
			PrizeName: prize.Name,
		}
	}
	return CheckResult{
		Status:    StatusLose,
		Message:   fmt.Sprintf("sorry, you did not win %q", prize.Name),
		PrizeName: prize.Name,
	}
}
