package lottery_service

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/tcp_snm/raffle/internal/database"
)

const (
	prizeCacheSize = 256
	prizeCacheTTL  = 30 * time.Second
)

// LotteryService serves the public result check. Prize rows are read
// through a small expiring cache since every check hits the same few
// prizes around publish time.
type LotteryService struct {
	DB         *database.Queries
	prizeCache *expirable.LRU[string, database.Prize]
}

func New(db *database.Queries) *LotteryService {
	return &LotteryService{
		DB:         db,
		prizeCache: expirable.NewLRU[string, database.Prize](prizeCacheSize, nil, prizeCacheTTL),
	}
}

type CheckRequest struct {
	PrizeID     string `json:"prize_id" validate:"required"`
	EntryNumber string `json:"entry_number" validate:"required"`
	Password    string `json:"password"`
}

type CheckStatus string

const (
	StatusNotPublished CheckStatus = "not_published"
	StatusNotFound     CheckStatus = "not_found"
	StatusWin          CheckStatus = "win"
	StatusLose         CheckStatus = "lose"
)

type CheckResult struct {
	Status    CheckStatus `json:"status"`
	Message   string      `json:"message"`
	PrizeName string      `json:"prize_name,omitempty"`
}

type PublishStatus struct {
	PrizeID        string    `json:"prize_id"`
	PrizeName      string    `json:"prize_name"`
	PublishTimeUTC time.Time `json:"publish_time_utc"`
	NowUTC         time.Time `json:"now_utc"`
	Published      bool      `json:"published"`
}

// Invalidate drops a prize from the cache. Called after prize
// mutations so a publish-now takes effect immediately.
func (l *LotteryService) Invalidate(prizeID string) {
	l.prizeCache.Remove(prizeID)
}
