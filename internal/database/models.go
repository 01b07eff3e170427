package database

import "time"

type Prize struct {
	ID             string
	Name           string
	ResultTimeJst  string
	PublishTimeUtc time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Entry struct {
	PrizeID     string
	EntryNumber string
	Password    *string
	IsWinner    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
