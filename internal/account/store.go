package account

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("account: not found")
	ErrAlreadyExists = errors.New("account: already exists")
	ErrUnknownRole   = errors.New("account: unknown role")
)

// Store describes persistence for accounts and verification codes.
type Store interface {
	Create(ctx context.Context, a *Account) error
	FindByEmail(ctx context.Context, role Role, email string) (*Account, error)
	FindByID(ctx context.Context, role Role, id int64) (*Account, error)
	ExistsByEmail(ctx context.Context, role Role, email string) (bool, error)
	ListByRole(ctx context.Context, role Role) ([]PublicView, error)
	UpdateStatus(ctx context.Context, role Role, id int64, status string) error

	// ReplaceVerificationCode discards any prior code for the user and stores
	// the new one; at most one code is active per user.
	ReplaceVerificationCode(ctx context.Context, userID int64, code int) error
	// ConsumeVerificationCode destroys the code and marks the customer's
	// e-mail verified when it matches; a non-matching code consumes nothing.
	ConsumeVerificationCode(ctx context.Context, userID int64, code int) (bool, error)
}
