package wallet

import (
	"errors"
	"fmt"
)

// Kind classifies wallet connection failures
type Kind int

const (
	// KindUnavailable means no provider capability is present (informational)
	KindUnavailable Kind = iota
	// KindRejected means the user declined the authorization request
	KindRejected
	// KindFailed means the provider raised an error while answering
	KindFailed
	// KindNoAccounts means the provider answered with an empty account list
	KindNoAccounts
)

func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindRejected:
		return "rejected"
	case KindFailed:
		return "failed"
	case KindNoAccounts:
		return "no-accounts"
	}
	return "unknown"
}

// Error is a structured connection error carrying a user-facing message
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error // wrapped provider error, never shown verbatim
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrUnavailable reports that no wallet provider is installed
func ErrUnavailable() *Error {
	return &Error{Kind: KindUnavailable, Code: "WALLET_001", Message: "No wallet provider installed. Continuing in demo mode."}
}

// ErrRejected wraps a user denial of the authorization request
func ErrRejected(err error) *Error {
	return &Error{Kind: KindRejected, Code: "WALLET_002", Message: "Wallet connection was rejected.", Err: err}
}

// ErrFailed wraps any other provider failure
func ErrFailed(err error) *Error {
	return &Error{Kind: KindFailed, Code: "WALLET_003", Message: "Wallet connection failed.", Err: err}
}

// ErrNoAccounts reports an authorization that returned no addresses
func ErrNoAccounts() *Error {
	return &Error{Kind: KindNoAccounts, Code: "WALLET_004", Message: "The wallet did not share any account."}
}

// IsKind reports whether err is a wallet Error of the given kind
func IsKind(err error, kind Kind) bool {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Kind == kind
	}
	return false
}

// asError converts any provider error into a wallet Error.
// Errors that already carry a kind are kept as they are.
func asError(err error) *Error {
	var werr *Error
	if errors.As(err, &werr) {
		return werr
	}
	return ErrFailed(err)
}
