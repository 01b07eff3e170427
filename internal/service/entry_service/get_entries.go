package entry_service

import (
	"context"
	"fmt"
	"strings"

	"github.com/tcp_snm/raffle/internal/raffle_errors"
)

func (s *EntryService) ListEntries(
	ctx context.Context,
	prizeID string,
) ([]Entry, error) {
	prizeID = strings.TrimSpace(prizeID)
	if prizeID == "" {
		return nil, fmt.Errorf("%w, prize_id is required", raffle_errors.ErrInvalidRequest)
	}

	dbEntries, err := s.DB.ListEntriesByPrize(ctx, prizeID)
	if err != nil {
		return nil, raffle_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot list entries of prize %s", prizeID),
		)
	}

	entries := make([]Entry, 0, len(dbEntries))
	for _, dbEntry := range dbEntries {
		entries = append(entries, entryFromDB(dbEntry))
	}
	return entries, nil
}

func (s *EntryService) CountEntries(
	ctx context.Context,
	prizeID string,
) (int64, error) {
	prizeID = strings.TrimSpace(prizeID)
	if prizeID == "" {
		return 0, fmt.Errorf("%w, prize_id is required", raffle_errors.ErrInvalidRequest)
	}

	count, err := s.DB.CountEntriesByPrize(ctx, prizeID)
	if err != nil {
		return 0, raffle_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot count entries of prize %s", prizeID),
		)
	}
	return count, nil
}
