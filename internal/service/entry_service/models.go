package entry_service

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tcp_snm/raffle/internal/database"
	"github.com/tcp_snm/raffle/internal/raffle_errors"
	"github.com/tcp_snm/raffle/internal/service"
)

type EntryService struct {
	DB     *database.Queries
	Pool   *pgxpool.Pool
	Config ImportConfig
}

// Entry is the API shape of one claim ticket. Password is nil when the
// entry was imported without one; a nil password never matches at the
// result check.
type Entry struct {
	PrizeID     string    `json:"prize_id" validate:"required,max=64"`
	EntryNumber string    `json:"entry_number" validate:"required,max=32"`
	Password    *string   `json:"password"`
	IsWinner    bool      `json:"is_winner"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PasswordPolicy string

const (
	PasswordPolicyDev  PasswordPolicy = "development"
	PasswordPolicyProd PasswordPolicy = "production"
)

// ImportConfig is passed into the import pipeline explicitly instead
// of being read from ambient process state, so both policies and the
// notification path are testable. NotifyEmail empty disables the
// summary mail.
type ImportConfig struct {
	MaxRows        int
	PasswordPolicy PasswordPolicy
	NotifyEmail    string
}

const defaultMaxRows = 2000

func DefaultImportConfig() ImportConfig {
	policy := PasswordPolicyDev
	if service.IsProduction() {
		policy = PasswordPolicyProd
	}
	return ImportConfig{
		MaxRows:        defaultMaxRows,
		PasswordPolicy: policy,
		NotifyEmail:    strings.TrimSpace(os.Getenv(service.KeyAdminNotifyEmail)),
	}
}

// ConflictPolicy governs what happens when an imported row's key
// already exists in storage. There are exactly two behaviours; the
// legacy synonyms are collapsed at the boundary by ParseConflictPolicy.
type ConflictPolicy string

const (
	PolicyIgnore    ConflictPolicy = "ignore"
	PolicyOverwrite ConflictPolicy = "overwrite"
)

func ParseConflictPolicy(raw string) (ConflictPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(PolicyIgnore):
		return PolicyIgnore, nil
	case string(PolicyOverwrite), "upsert", "merge":
		return PolicyOverwrite, nil
	default:
		return "", fmt.Errorf(
			"%w, conflict_policy must be 'ignore' or 'overwrite'",
			raffle_errors.ErrInvalidRequest,
		)
	}
}

type ImportRequest struct {
	PrizeID string
	CSVText string
	Policy  ConflictPolicy
}

type ImportResult struct {
	ImportID uuid.UUID `json:"import_id"`
	Inserted int       `json:"inserted"`
	Updated  int       `json:"updated"`
	Skipped  int       `json:"skipped"`
	Total    int       `json:"total"`
}

// RowError is a validation failure scoped to one CSV line. Row numbers
// are physical line numbers in the submitted text, header included.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// entryRecord is one validated CSV row held until the plan is applied.
type entryRecord struct {
	prizeID     string
	entryNumber string
	password    *string
	isWinner    bool
	line        int
}

var (
	msgUniqueKey = map[string]string{
		"entries_pkey": "entry with that number already exist for this prize",
	}
	msgForeignKey = map[string]string{
		"entries_prize_id_fkey": "prize with that id does not exist",
	}

	errMsgs = map[string]map[string]string{
		raffle_errors.CodeUniqueConstraint:     msgUniqueKey,
		raffle_errors.CodeForeignKeyConstraint: msgForeignKey,
	}
)

func entryFromDB(e database.Entry) Entry {
	return Entry{
		PrizeID:     e.PrizeID,
		EntryNumber: e.EntryNumber,
		Password:    e.Password,
		IsWinner:    e.IsWinner,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
