// Copyright (c) 2026 The tokenet developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package reverts

import (
	"errors"
	"fmt"
)

// Kind classifies a revert so callers can branch without string matching.
type Kind int

const (
	Unauthorized Kind = iota + 1
	InvalidParameter
	NotFound
	BelowMinimum
	InsufficientAllowance
	InsufficientBalance
	TooFrequent
	NotReady
	AlreadyInState
	FunctionPaused
	DuplicateAsset
	OrderingViolation
	Mismatch
	UseStakeFunction
)

type ErrRevert struct {
	kind    Kind
	message string
}

func New(kind Kind, format string, args ...any) *ErrRevert {
	return &ErrRevert{
		kind:    kind,
		message: fmt.Sprintf(format, args...),
	}
}

func (e *ErrRevert) Error() string {
	return e.message
}

func (e *ErrRevert) Kind() Kind {
	return e.kind
}

// Is reports whether err is a revert of the given kind.
func Is(err error, kind Kind) bool {
	var ve *ErrRevert
	if !errors.As(err, &ve) {
		return false
	}
	return ve.kind == kind
}

func IsRevertErr(err any) bool {
	if err == nil {
		return false
	}
	e, ok := err.(error)
	if !ok {
		return false
	}
	var ve *ErrRevert
	return errors.As(e, &ve)
}
