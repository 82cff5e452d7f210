package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error surfaced by the engine wraps exactly one of these.
var (
	// ErrValidationFailure marks input or ledger data that will never become valid on retry
	ErrValidationFailure = errors.New("validation failure")

	// ErrNotFound marks a missing entity
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a request that contradicts current state
	ErrConflict = errors.New("conflict")

	// ErrTransient marks a failure of an external dependency that may succeed on retry
	ErrTransient = errors.New("transient failure")

	// ErrLedgerRejection marks a contract call the ledger refused
	ErrLedgerRejection = errors.New("permanent ledger rejection")
)

// MarketError is a named engine error carrying its kind
type MarketError struct {
	Code    string
	Kind    error
	Message string
}

func (e *MarketError) Error() string {
	return e.Message
}

// Unwrap exposes the kind so callers can branch with errors.Is
func (e *MarketError) Unwrap() error {
	return e.Kind
}

// Is matches two MarketErrors by code
func (e *MarketError) Is(target error) bool {
	t, ok := target.(*MarketError)
	return ok && t.Code == e.Code
}

func newMarketError(code string, kind error, message string) *MarketError {
	return &MarketError{Code: code, Kind: kind, Message: message}
}

var (
	ErrInvalidSchedule          = newMarketError("INVALID_SCHEDULE", ErrValidationFailure, "listing end timestamp must be in the future")
	ErrNotOwner                 = newMarketError("NOT_OWNER", ErrConflict, "caller is not the owner of this nft")
	ErrAccountNotResolved       = newMarketError("ACCOUNT_NOT_RESOLVED", ErrValidationFailure, "account could not be resolved to an evm address")
	ErrNftNotFound              = newMarketError("NFT_NOT_FOUND", ErrNotFound, "nft not found")
	ErrAlreadyProcessed         = newMarketError("ALREADY_PROCESSED", ErrConflict, "deal with this transaction id was already recorded")
	ErrNotABidAcceptTransaction = newMarketError("NOT_A_BID_ACCEPT_TRANSACTION", ErrValidationFailure, "transaction is not a bid accept transaction")
	ErrEventMismatch            = newMarketError("EVENT_MISMATCH", ErrValidationFailure, "accept bid event does not match the claim")
	ErrRateLimited              = newMarketError("RATE_LIMITED", ErrConflict, "too many requests, try again later")
	ErrUserNotRegistered        = newMarketError("USER_NOT_REGISTERED", ErrNotFound, "user is not registered")
	ErrCollectionNotValidated   = newMarketError("COLLECTION_NOT_VALIDATED", ErrNotFound, "token id is not a validated collection")
)

// Validation wraps a formatted message as a validation failure
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidationFailure, fmt.Sprintf(format, args...))
}

// Transient wraps err as a transient failure
func Transient(err error) error {
	if err == nil || errors.Is(err, ErrTransient) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrTransient, err)
}

// Retryable reports whether a queue should attempt the failed work again
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrValidationFailure) &&
		!errors.Is(err, ErrNotFound) &&
		!errors.Is(err, ErrConflict) &&
		!errors.Is(err, ErrLedgerRejection)
}

// KindOf names the error kind err wraps, or "" when it wraps none
func KindOf(err error) string {
	for _, kind := range []error{ErrValidationFailure, ErrNotFound, ErrConflict, ErrTransient, ErrLedgerRejection} {
		if errors.Is(err, kind) {
			return kind.Error()
		}
	}
	return ""
}
