// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ledger

import "errors"

// Error is a ledger rule violation with a stable numeric code.
type Error struct {
	code int
	msg  string
}

func newError(code int, msg string) *Error {
	return &Error{code: code, msg: msg}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.msg
}

// Code returns the stable numeric code of the violation.
func (e *Error) Code() int {
	return e.code
}

// Rule violations. Codes follow the historical on-chain numbering, so 6000
// (the old NotEnoughPoints code) is no longer emitted: a shortfall has
// always surfaced as the checked-subtraction failure, 6003.
var (
	ErrInvalidTransferAmount = newError(6001, "cannot transfer zero points")
	ErrOverflow              = newError(6002, "arithmetic overflow occurred")
	ErrInsufficientBalance   = newError(6003, "not enough points to transfer")
	ErrNameTooLong           = newError(6004, "name is too long")
	ErrAccountDoesNotExist   = newError(6005, "user account does not exist")
	ErrIdenticalAccounts     = newError(6006, "sender and receiver accounts are identical")
	ErrUnauthorized          = newError(6007, "unauthorized operation")
)

// Aliases of ErrInsufficientBalance. errors.Is matches all three.
var (
	ErrUnderflow       = ErrInsufficientBalance
	ErrNotEnoughPoints = ErrInsufficientBalance
)

// Code returns the ledger code carried by err, or 0 if err is not a ledger
// rule violation.
func Code(err error) int {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.code
	}
	return 0
}

var byCode = map[int]*Error{
	ErrInvalidTransferAmount.code: ErrInvalidTransferAmount,
	ErrOverflow.code:              ErrOverflow,
	ErrInsufficientBalance.code:   ErrInsufficientBalance,
	ErrNameTooLong.code:           ErrNameTooLong,
	ErrAccountDoesNotExist.code:   ErrAccountDoesNotExist,
	ErrIdenticalAccounts.code:     ErrIdenticalAccounts,
	ErrUnauthorized.code:          ErrUnauthorized,
}

// FromCode returns the rule violation with the given code, or nil if code is
// unknown. Clients use it to restore typed errors from transport responses.
func FromCode(code int) error {
	if e, ok := byCode[code]; ok {
		return e
	}
	return nil
}
