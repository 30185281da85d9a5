package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure surfaced by the core wraps exactly one of these,
// so transports can map them to status codes with errors.Is.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForbidden  = errors.New("forbidden")
	// ErrStorage marks ledger transaction/commit failures. Callers may retry.
	ErrStorage = errors.New("storage failure")
)

var (
	ErrUserNotFound  = fmt.Errorf("%w: user", ErrNotFound)
	ErrShareNotFound = fmt.Errorf("%w: share", ErrNotFound)

	ErrEmailTaken       = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrAlreadyFollowing = fmt.Errorf("%w: already following this account", ErrConflict)

	ErrSelfFollow    = fmt.Errorf("%w: cannot follow yourself", ErrValidation)
	ErrNotFollowable = fmt.Errorf("%w: account must complete its profile before it can be followed", ErrValidation)

	ErrInvalidAction = fmt.Errorf("%w: action must be BUY or SELL", ErrValidation)
	ErrInvalidAmount = fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	ErrInvalidPrice  = fmt.Errorf("%w: price must be greater than zero", ErrValidation)

	ErrOwnShare            = fmt.Errorf("%w: cannot buy a share you already own", ErrValidation)
	ErrShareAlreadySold    = fmt.Errorf("%w: share is already sold", ErrValidation)
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient data income balance", ErrValidation)

	ErrInvestorRequired = fmt.Errorf("%w: investor role required", ErrForbidden)
	ErrNotShareOwner    = fmt.Errorf("%w: share is owned by another account", ErrForbidden)
)

// IsDomainError reports whether err carries one of the five core error kinds.
// Errors that do not are treated as storage failures by the transaction
// runner.
func IsDomainError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrStorage)
}
