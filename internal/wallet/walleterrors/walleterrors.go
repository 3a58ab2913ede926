// Package walleterrors defines the error taxonomy shared by every fallible
// operation of the wallet core. Callers receive a *Error with a stable code
// and a message that the UI layer renders verbatim.
package walleterrors

import (
	"unicode"

	"github.com/pkg/errors"
)

// Code identifies the failure class of a wallet core error.
type Code string

const (
	CodeInvalidAddress  Code = "INVALID_ADDRESS"
	CodeInvalidChain    Code = "INVALID_CHAIN"
	CodeRateLimited     Code = "RATE_LIMITED"
	CodeAPIError        Code = "API_ERROR"
	CodeNetworkError    Code = "NETWORK_ERROR"
	CodeBroadcastFailed Code = "BROADCAST_FAILED"
)

// Error is the single failure shape crossing the public boundary of the core.
// Message is user-renderable and never carries stack traces or wrapped
// internal error text.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is allows errors.Is comparison by code.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// New creates an error with an explicit code and message. Used for codes
// forwarded from external collaborators (RATE_LIMITED, API_ERROR,
// BROADCAST_FAILED) without reinterpretation.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// InvalidAddress reports a malformed or checksum-failing address string.
// The message is identical for every request kind.
func InvalidAddress(kind string) *Error {
	_ = kind // kind selects behavior elsewhere; the message template is fixed
	return &Error{
		Code:    CodeInvalidAddress,
		Message: "Invalid Ethereum address format",
	}
}

// InvalidChain reports an unsupported or malformed chain identifier. Only the
// balance context discloses the supported chain list.
func InvalidChain(context string) *Error {
	message := "Invalid or unsupported chain ID"
	if context == "balance" {
		message = "Invalid or unsupported chain ID. Supported: 1 (mainnet), 8453 (Base)"
	}
	return &Error{Code: CodeInvalidChain, Message: message}
}

// InvalidBigInt reports a value that does not parse as an unsigned decimal
// integer. The NETWORK_ERROR code is a pre-existing wire convention and is
// preserved for compatibility.
func InvalidBigInt(field string) *Error {
	return &Error{
		Code:    CodeNetworkError,
		Message: "Invalid " + field + " format",
	}
}

// NegativeBigInt reports a parsed value below zero. The field name is
// capitalized because it leads the sentence.
func NegativeBigInt(field string) *Error {
	return &Error{
		Code:    CodeNetworkError,
		Message: capitalize(field) + " must be non-negative",
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// AsError extracts the taxonomy error from an error chain, if present.
func AsError(err error) (*Error, bool) {
	var taxErr *Error
	if errors.As(err, &taxErr) {
		return taxErr, true
	}
	return nil, false
}

// IsCode reports whether err carries the given taxonomy code.
func IsCode(err error, code Code) bool {
	taxErr, ok := AsError(err)
	return ok && taxErr.Code == code
}
