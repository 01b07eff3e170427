package database

import "context"

const entryColumns = `prize_id, entry_number, password, is_winner, created_at, updated_at`

const createEntry = `
INSERT INTO entries (prize_id, entry_number, password, is_winner, created_at, updated_at)
VALUES ($1, $2, $3, $4, NOW(), NOW())
RETURNING ` + entryColumns

type CreateEntryParams struct {
	PrizeID     string
	EntryNumber string
	Password    *string
	IsWinner    bool
}

func (q *Queries) CreateEntry(ctx context.Context, arg CreateEntryParams) (Entry, error) {
	row := q.db.QueryRow(ctx, createEntry,
		arg.PrizeID,
		arg.EntryNumber,
		arg.Password,
		arg.IsWinner,
	)
	var e Entry
	err := row.Scan(
		&e.PrizeID,
		&e.EntryNumber,
		&e.Password,
		&e.IsWinner,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

const updateEntry = `
UPDATE entries
SET password = $3,
    is_winner = $4,
    updated_at = NOW()
WHERE prize_id = $1 AND entry_number = $2
RETURNING ` + entryColumns

type UpdateEntryParams struct {
	PrizeID     string
	EntryNumber string
	Password    *string
	IsWinner    bool
}

func (q *Queries) UpdateEntry(ctx context.Context, arg UpdateEntryParams) (Entry, error) {
	row := q.db.QueryRow(ctx, updateEntry,
		arg.PrizeID,
		arg.EntryNumber,
		arg.Password,
		arg.IsWinner,
	)
	var e Entry
	err := row.Scan(
		&e.PrizeID,
		&e.EntryNumber,
		&e.Password,
		&e.IsWinner,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

const upsertEntry = `
INSERT INTO entries (prize_id, entry_number, password, is_winner, created_at, updated_at)
VALUES ($1, $2, $3, $4, NOW(), NOW())
ON CONFLICT (prize_id, entry_number)
DO UPDATE SET password = EXCLUDED.password,
              is_winner = EXCLUDED.is_winner,
              updated_at = NOW()
RETURNING ` + entryColumns

type UpsertEntryParams struct {
	PrizeID     string
	EntryNumber string
	Password    *string
	IsWinner    bool
}

func (q *Queries) UpsertEntry(ctx context.Context, arg UpsertEntryParams) (Entry, error) {
	row := q.db.QueryRow(ctx, upsertEntry,
		arg.PrizeID,
		arg.EntryNumber,
		arg.Password,
		arg.IsWinner,
	)
	var e Entry
	err := row.Scan(
		&e.PrizeID,
		&e.EntryNumber,
		&e.Password,
		&e.IsWinner,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

const listEntriesByPrize = `
SELECT ` + entryColumns + `
FROM entries
WHERE prize_id = $1
ORDER BY entry_number DESC`

func (q *Queries) ListEntriesByPrize(ctx context.Context, prizeID string) ([]Entry, error) {
	rows, err := q.db.Query(ctx, listEntriesByPrize, prizeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.PrizeID,
			&e.EntryNumber,
			&e.Password,
			&e.IsWinner,
			&e.CreatedAt,
			&e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

const listEntryNumbersByPrize = `
SELECT entry_number
FROM entries
WHERE prize_id = $1`

func (q *Queries) ListEntryNumbersByPrize(ctx context.Context, prizeID string) ([]string, error) {
	rows, err := q.db.Query(ctx, listEntryNumbersByPrize, prizeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

const countEntriesByPrize = `
SELECT COUNT(*)
FROM entries
WHERE prize_id = $1`

func (q *Queries) CountEntriesByPrize(ctx context.Context, prizeID string) (int64, error) {
	row := q.db.QueryRow(ctx, countEntriesByPrize, prizeID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const getEntryByCredentials = `
SELECT ` + entryColumns + `
FROM entries
WHERE prize_id = $1 AND entry_number = $2 AND password = $3`

type GetEntryByCredentialsParams struct {
	PrizeID     string
	EntryNumber string
	Password    string
}

// GetEntryByCredentials does the exact triple lookup used by the public
// result check. A NULL stored password never matches.
func (q *Queries) GetEntryByCredentials(ctx context.Context, arg GetEntryByCredentialsParams) (Entry, error) {
	row := q.db.QueryRow(ctx, getEntryByCredentials,
		arg.PrizeID,
		arg.EntryNumber,
		arg.Password,
	)
	var e Entry
	err := row.Scan(
		&e.PrizeID,
		&e.EntryNumber,
		&e.Password,
		&e.IsWinner,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	return e, err
}

const deleteEntriesByPrize = `
DELETE FROM entries
WHERE prize_id = $1`

func (q *Queries) DeleteEntriesByPrize(ctx context.Context, prizeID string) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteEntriesByPrize, prizeID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
