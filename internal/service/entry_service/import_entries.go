package entry_service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/tcp_snm/raffle/internal/database"
	"github.com/tcp_snm/raffle/internal/email"
	"github.com/tcp_snm/raffle/internal/raffle_errors"
)

// ImportEntries runs the whole CSV import as one atomic unit:
// parse, validate, plan against the existing entries, apply. Either the
// entire batch commits or nothing does.
//
// Row-level validation failures are returned as the RowError slice
// together with raffle_errors.ErrCSVValidation; batch-level failures
// come back as a plain error with a nil slice.
func (s *EntryService) ImportEntries(
	ctx context.Context,
	request ImportRequest,
) (result ImportResult, rowErrs []RowError, err error) {
	records, rowErrs, err := parseEntriesCSV(
		request.CSVText,
		request.PrizeID,
		s.Config,
	)
	if err != nil {
		return
	}
	if len(rowErrs) > 0 {
		err = raffle_errors.ErrCSVValidation
		return
	}
	if len(records) == 0 {
		// a zero-effect submission is almost always a mistake, reject it
		err = fmt.Errorf("%w, no valid rows in csv", raffle_errors.ErrInvalidRequest)
		return
	}

	// every record carries the same effective prize id after parsing
	prizeID := records[0].prizeID

	tx, err := s.Pool.Begin(ctx)
	if err != nil {
		err = fmt.Errorf(
			"%w, cannot begin import transaction, %w",
			raffle_errors.ErrInternal,
			err,
		)
		log.Error(err)
		return
	}
	defer tx.Rollback(ctx)

	qtx := s.DB.WithTx(tx)

	// the prize must exist before entries are attached to it
	if _, err = qtx.GetPrize(ctx, prizeID); err != nil {
		err = raffle_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot fetch prize %s for import", prizeID),
		)
		return
	}

	existingNumbers, err := qtx.ListEntryNumbersByPrize(ctx, prizeID)
	if err != nil {
		err = raffle_errors.HandleDBErrors(
			err,
			nil,
			fmt.Sprintf("cannot snapshot existing entries of prize %s", prizeID),
		)
		return
	}
	existing := make(map[string]bool, len(existingNumbers))
	for _, number := range existingNumbers {
		existing[number] = true
	}

	plan := buildImportPlan(records, existing, request.Policy)

	for _, record := range plan.inserts {
		if _, err = qtx.CreateEntry(ctx, database.CreateEntryParams{
			PrizeID:     record.prizeID,
			EntryNumber: record.entryNumber,
			Password:    record.password,
			IsWinner:    record.isWinner,
		}); err != nil {
			err = raffle_errors.HandleDBErrors(
				err,
				errMsgs,
				fmt.Sprintf(
					"import aborted, cannot insert entry %s (csv line %d)",
					record.entryNumber, record.line,
				),
			)
			return
		}
	}
	for _, record := range plan.updates {
		if _, err = qtx.UpdateEntry(ctx, database.UpdateEntryParams{
			PrizeID:     record.prizeID,
			EntryNumber: record.entryNumber,
			Password:    record.password,
			IsWinner:    record.isWinner,
		}); err != nil {
			err = raffle_errors.HandleDBErrors(
				err,
				errMsgs,
				fmt.Sprintf(
					"import aborted, cannot update entry %s (csv line %d)",
					record.entryNumber, record.line,
				),
			)
			return
		}
	}

	if err = tx.Commit(ctx); err != nil {
		err = fmt.Errorf(
			"%w, cannot commit import for prize %s, %w",
			raffle_errors.ErrInternal,
			prizeID,
			err,
		)
		log.Error(err)
		return
	}

	result = ImportResult{
		ImportID: uuid.New(),
		Inserted: len(plan.inserts),
		Updated:  len(plan.updates),
		Skipped:  plan.skipped,
	}
	result.Total = result.Inserted + result.Updated + result.Skipped

	log.WithFields(log.Fields{
		"import_id": result.ImportID,
		"prize_id":  prizeID,
		"policy":    request.Policy,
		"inserted":  result.Inserted,
		"updated":   result.Updated,
		"skipped":   result.Skipped,
	}).Info("bulk import applied")

	s.notifyImport(ctx, prizeID, request.Policy, result)

	return result, nil, nil
}

// notifyImport queues a summary mail when a notification address is
// configured. Mail problems never fail an already-committed import.
func (s *EntryService) notifyImport(
	ctx context.Context,
	prizeID string,
	policy ConflictPolicy,
	result ImportResult,
) {
	to := s.Config.NotifyEmail
	if to == "" {
		return
	}

	body := fmt.Sprintf(
		"import %s for prize %s (policy %s)\ninserted: %d\nupdated: %d\nskipped: %d\ntotal: %d\n",
		result.ImportID, prizeID, policy,
		result.Inserted, result.Updated, result.Skipped, result.Total,
	)
	if mailErr := email.NewMail(
		ctx,
		fmt.Sprintf("entry import completed for prize %s", prizeID),
		body,
		email.KeyEmailBodyPlain,
		email.PurposeImportSummary,
		to,
	); mailErr != nil {
		log.Warnf("cannot queue import summary mail: %v", mailErr)
	}
}
