package database

import (
	"context"
	"time"
)

const prizeColumns = `id, name, result_time_jst, publish_time_utc, created_at, updated_at`

const createPrize = `
INSERT INTO prizes (id, name, result_time_jst, publish_time_utc, created_at, updated_at)
VALUES ($1, $2, $3, $4, NOW(), NOW())
RETURNING ` + prizeColumns

type CreatePrizeParams struct {
	ID             string
	Name           string
	ResultTimeJst  string
	PublishTimeUtc time.Time
}

func (q *Queries) CreatePrize(ctx context.Context, arg CreatePrizeParams) (Prize, error) {
	row := q.db.QueryRow(ctx, createPrize,
		arg.ID,
		arg.Name,
		arg.ResultTimeJst,
		arg.PublishTimeUtc,
	)
	var p Prize
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.ResultTimeJst,
		&p.PublishTimeUtc,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const getPrize = `
SELECT ` + prizeColumns + `
FROM prizes
WHERE id = $1`

func (q *Queries) GetPrize(ctx context.Context, id string) (Prize, error) {
	row := q.db.QueryRow(ctx, getPrize, id)
	var p Prize
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.ResultTimeJst,
		&p.PublishTimeUtc,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const listPrizes = `
SELECT ` + prizeColumns + `
FROM prizes
ORDER BY publish_time_utc, id`

func (q *Queries) ListPrizes(ctx context.Context) ([]Prize, error) {
	rows, err := q.db.Query(ctx, listPrizes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Prize
	for rows.Next() {
		var p Prize
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.ResultTimeJst,
			&p.PublishTimeUtc,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

const updatePrize = `
UPDATE prizes
SET name = COALESCE($2, name),
    result_time_jst = COALESCE($3, result_time_jst),
    publish_time_utc = COALESCE($4, publish_time_utc),
    updated_at = NOW()
WHERE id = $1
RETURNING ` + prizeColumns

type UpdatePrizeParams struct {
	ID             string
	Name           *string
	ResultTimeJst  *string
	PublishTimeUtc *time.Time
}

func (q *Queries) UpdatePrize(ctx context.Context, arg UpdatePrizeParams) (Prize, error) {
	row := q.db.QueryRow(ctx, updatePrize,
		arg.ID,
		arg.Name,
		arg.ResultTimeJst,
		arg.PublishTimeUtc,
	)
	var p Prize
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.ResultTimeJst,
		&p.PublishTimeUtc,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const publishPrizeNow = `
UPDATE prizes
SET publish_time_utc = NOW(),
    updated_at = NOW()
WHERE id = $1
RETURNING ` + prizeColumns

func (q *Queries) PublishPrizeNow(ctx context.Context, id string) (Prize, error) {
	row := q.db.QueryRow(ctx, publishPrizeNow, id)
	var p Prize
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.ResultTimeJst,
		&p.PublishTimeUtc,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

const deletePrize = `
DELETE FROM prizes
WHERE id = $1`

func (q *Queries) DeletePrize(ctx context.Context, id string) (int64, error) {
	tag, err := q.db.Exec(ctx, deletePrize, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
