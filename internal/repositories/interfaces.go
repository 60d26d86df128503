package repositories

import (
	"context"
	"errors"

	"github.com/ecogaon/waste-ledger-service/internal/models"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	// Create assigns the next sequential ID and appends the user.
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByPhone(ctx context.Context, phone string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Count(ctx context.Context) (int, error)
	// Update replaces the stored user with the same ID.
	Update(ctx context.Context, user *models.User) error
}

type WasteRepository interface {
	// Create assigns the next sequential ID and appends the record.
	Create(ctx context.Context, record *models.WasteRecord) error
	GetByUser(ctx context.Context, userID int) ([]models.WasteRecord, error)
	List(ctx context.Context) ([]models.WasteRecord, error)
	Count(ctx context.Context) (int, error)
}

type VerificationCodeRepository interface {
	Create(ctx context.Context, code *models.VerificationCode) error
	// Consume marks the first unused record matching (code, operatorPhone)
	// exactly as used and returns it. No match returns ErrNotFound and
	// mutates nothing. Matching never normalizes the phone.
	Consume(ctx context.Context, code, operatorPhone string) (*models.VerificationCode, error)
	List(ctx context.Context) ([]models.VerificationCode, error)
}

// Repository bundles the ledger's record collections. WithTransaction runs fn
// under the store's single writer lock so multi-step mutations (consume code,
// append record, update aggregates) are serialized against every other
// mutation and read. There is no rollback: partial progress inside fn sticks,
// matching the ledger's availability-over-consistency policy.
type Repository interface {
	User() UserRepository
	Waste() WasteRepository
	VerificationCode() VerificationCodeRepository

	WithTransaction(ctx context.Context, fn func(Repository) error) error
	Ping(ctx context.Context) error
	Close() error
}
