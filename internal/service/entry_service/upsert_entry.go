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

// UpsertEntry inserts the entry or, when the (prize_id, entry_number)
// pair already exists, replaces its password and winner flag.
func (s *EntryService) UpsertEntry(
	ctx context.Context,
	entry Entry,
) (stored Entry, err error) {
	entry.PrizeID = strings.TrimSpace(entry.PrizeID)
	entry.EntryNumber = strings.TrimSpace(entry.EntryNumber)

	if err = service.ValidateInput(entry); err != nil {
		return
	}

	dbEntry, err := s.DB.UpsertEntry(ctx, database.UpsertEntryParams{
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
				"cannot upsert entry %s for prize %s",
				entry.EntryNumber, entry.PrizeID,
			),
		)
		return
	}

	log.WithFields(log.Fields{
		"prize_id":     dbEntry.PrizeID,
		"entry_number": dbEntry.EntryNumber,
	}).Info("upserted entry")

	return entryFromDB(dbEntry), nil
}
