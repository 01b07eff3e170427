package entry_service

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/raffle/internal/database"
	"github.com/tcp_snm/raffle/internal/raffle_errors"
	"github.com/tcp_snm/raffle/internal/service"
)

func (s *EntryService) CreateEntry(
	ctx context.Context,
	entry Entry,
) (created Entry, err error) {
	entry.PrizeID = strings.TrimSpace(entry.PrizeID)
	entry.EntryNumber = strings.TrimSpace(entry.EntryNumber)

	if err = service.ValidateInput(entry); err != nil {
		return
	}

	dbEntry, err := s.DB.CreateEntry(ctx, database.CreateEntryParams{
		PrizeID:     entry.PrizeID,
		EntryNumber: entry.EntryNumber,
		Password:    entry.Password,
		IsWinner:    entry.IsWinner,
	})
	if err != nil {
		err = raffle_errors.HandleDBErrors(
			err,
			errMsgs,
			fmt.Sprintf(
				"cannot create entry %s for prize %s",
				entry.EntryNumber, entry.PrizeID,
			),
		)
		return
	}

	log.WithFields(log.Fields{
		"prize_id":     dbEntry.PrizeID,
		"entry_number": dbEntry.EntryNumber,
	}).Info("created entry")

	return entryFromDB(dbEntry), nil
}
