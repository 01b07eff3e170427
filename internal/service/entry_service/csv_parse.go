package entry_service

import (
	"encoding/csv"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tcp_snm/raffle/internal/raffle_errors"
)

const (
	columnEntryNumber = "entry_number"
	columnPassword    = "password"
	columnIsWinner    = "is_winner"
	columnPrizeID     = "prize_id"
)

var requiredColumns = []string{columnEntryNumber, columnPassword, columnIsWinner}

// parseEntriesCSV turns raw CSV text into validated entry records.
//
// Batch-level problems (empty text, bad header, row limit, prize id
// mismatch) come back as the error return and abort everything. Per-row
// problems are collected into RowError values so the admin can fix all
// of them in one pass; any RowError still fails the import, there is no
// partial success.
//
// targetPrizeID may be empty when every row carries its own prize_id
// column; rows with a blank prize_id cell inherit the target.
func parseEntriesCSV(
	csvText string,
	targetPrizeID string,
	cfg ImportConfig,
) (records []entryRecord, rowErrs []RowError, err error) {
	normalized := normalizeCSVText(csvText)
	if strings.TrimSpace(normalized) == "" {
		err = fmt.Errorf("%w, csv text is empty", raffle_errors.ErrInvalidRequest)
		return
	}

	lines := strings.Split(normalized, "\n")

	// header is the first non-blank line
	headerLine := -1
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			headerLine = i
			break
		}
	}

	columns, err := splitCSVLine(lines[headerLine])
	if err != nil {
		err = fmt.Errorf(
			"%w, cannot parse csv header: %s",
			raffle_errors.ErrInvalidRequest,
			err.Error(),
		)
		return
	}

	// column names are matched case-insensitively and order-independently
	columnIndex := make(map[string]int, len(columns))
	for i, column := range columns {
		columnIndex[strings.ToLower(strings.TrimSpace(column))] = i
	}
	var missing []string
	for _, column := range requiredColumns {
		if _, ok := columnIndex[column]; !ok {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		err = fmt.Errorf(
			"%w, csv header is missing column(s): %s",
			raffle_errors.ErrInvalidRequest,
			strings.Join(missing, ", "),
		)
		return
	}
	prizeIDIndex, hasPrizeColumn := columnIndex[columnPrizeID]

	// enforce the row limit before any row is processed
	dataRows := 0
	for _, line := range lines[headerLine+1:] {
		if strings.TrimSpace(line) != "" {
			dataRows++
		}
	}
	if dataRows > cfg.MaxRows {
		err = fmt.Errorf(
			"%w, too many rows: %d (max %d)",
			raffle_errors.ErrInvalidRequest,
			dataRows,
			cfg.MaxRows,
		)
		return
	}

	effectiveTarget := strings.TrimSpace(targetPrizeID)
	seen := make(map[string]int, dataRows) // (prize, number) -> first line

	for i := headerLine + 1; i < len(lines); i++ {
		lineNo := i + 1 // 1-based, header included
		raw := lines[i]
		if strings.TrimSpace(raw) == "" {
			continue
		}

		fields, splitErr := splitCSVLine(raw)
		if splitErr != nil {
			rowErrs = append(rowErrs, RowError{
				Row:     lineNo,
				Message: fmt.Sprintf("malformed csv line: %s", splitErr.Error()),
			})
			continue
		}
		if len(fields) != len(columns) {
			rowErrs = append(rowErrs, RowError{
				Row: lineNo,
				Message: fmt.Sprintf(
					"column count must be %d, got %d", len(columns), len(fields),
				),
			})
			continue
		}

		// prize id cell: blank inherits the target, anything else must
		// match it exactly. a mismatch poisons the whole batch
		if hasPrizeColumn {
			cell := strings.TrimSpace(fields[prizeIDIndex])
			if cell != "" {
				if effectiveTarget == "" {
					effectiveTarget = cell
				} else if cell != effectiveTarget {
					err = fmt.Errorf(
						"%w, prize_id mismatch at line %d: csv has %q, import targets %q",
						raffle_errors.ErrInvalidRequest,
						lineNo, cell, effectiveTarget,
					)
					return nil, nil, err
				}
			}
		}
		if effectiveTarget == "" {
			err = fmt.Errorf(
				"%w, prize_id is required either in the csv or the request body",
				raffle_errors.ErrInvalidRequest,
			)
			return nil, nil, err
		}

		record := entryRecord{prizeID: effectiveTarget, line: lineNo}
		rowOK := true

		record.entryNumber = strings.TrimSpace(fields[columnIndex[columnEntryNumber]])
		if record.entryNumber == "" {
			rowErrs = append(rowErrs, RowError{
				Row: lineNo, Field: columnEntryNumber, Message: "entry_number is required",
			})
			rowOK = false
		}

		// empty password means "no password", distinct from a short one
		password := strings.TrimSpace(fields[columnIndex[columnPassword]])
		if password != "" {
			if msg, ok := checkPassword(password, cfg.PasswordPolicy); !ok {
				rowErrs = append(rowErrs, RowError{
					Row: lineNo, Field: columnPassword, Message: msg,
				})
				rowOK = false
			} else {
				record.password = &password
			}
		}

		switch strings.ToLower(strings.TrimSpace(fields[columnIndex[columnIsWinner]])) {
		case "true":
			record.isWinner = true
		case "false":
			record.isWinner = false
		default:
			rowErrs = append(rowErrs, RowError{
				Row: lineNo, Field: columnIsWinner, Message: "is_winner must be 'true' or 'false'",
			})
			rowOK = false
		}

		if !rowOK {
			continue
		}

		key := record.prizeID + "\x00" + record.entryNumber
		if firstLine, dup := seen[key]; dup {
			rowErrs = append(rowErrs, RowError{
				Row:   lineNo,
				Field: columnEntryNumber,
				Message: fmt.Sprintf(
					"duplicate entry_number %q in csv (first at line %d)",
					record.entryNumber, firstLine,
				),
			})
			continue
		}
		seen[key] = lineNo

		records = append(records, record)
	}

	return records, rowErrs, nil
}

// normalizeCSVText strips a leading byte-order mark and folds all line
// endings to a single '\n'.
func normalizeCSVText(text string) string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// splitCSVLine parses one physical line, honouring quoting.
func splitCSVLine(line string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(line))
	reader.FieldsPerRecord = -1
	return reader.Read()
}

func checkPassword(password string, policy PasswordPolicy) (string, bool) {
	length := utf8.RuneCountInString(password)
	if policy != PasswordPolicyProd {
		if length < 4 {
			return "password must be at least 4 characters", false
		}
		return "", true
	}

	hasLower, hasUpper, hasDigit := false, false, false
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if length < 8 || !hasLower || !hasUpper || !hasDigit {
		return "password must be at least 8 characters and include a lowercase letter, an uppercase letter and a digit", false
	}
	return "", true
}
