package prize_service

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tcp_snm/raffle/internal/database"
	"github.com/tcp_snm/raffle/internal/raffle_errors"
)

type PrizeService struct {
	DB   *database.Queries
	Pool *pgxpool.Pool
}

// Prize is the API shape of a raffle unit. ResultTimeJST is the
// admin-entered wall clock text, PublishTimeUTC the derived instant the
// result check compares against. The two are always written together.
type Prize struct {
	ID             string    `json:"id" validate:"required,max=64"`
	Name           string    `json:"name" validate:"required,max=128"`
	ResultTimeJST  string    `json:"result_time_jst" validate:"required"`
	PublishTimeUTC time.Time `json:"publish_time_utc"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PrizeUpdate carries the updatable fields. Nil means leave untouched.
type PrizeUpdate struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=128"`
	ResultTimeJST *string `json:"result_time_jst"`
}

var (
	msgUniqueKey = map[string]string{
		"prizes_pkey": "prize with that id already exist",
	}

	errMsgs = map[string]map[string]string{
		raffle_errors.CodeUniqueConstraint: msgUniqueKey,
	}
)

func prizeFromDB(p database.Prize) Prize {
	return Prize{
		ID:             p.ID,
		Name:           p.Name,
		ResultTimeJST:  p.ResultTimeJst,
		PublishTimeUTC: p.PublishTimeUtc,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
