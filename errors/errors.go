// Package errors provides error handling for gentokens.
//
// This package re-exports github.com/cockroachdb/errors so callers get
// stack traces, wrapping context and hints from a single import:
//
//	if _, err := io.WriteString(w, line); err != nil {
//	    return errors.Wrap(errors.Mark(err, errors.ErrWrite), "failed to write validTokens")
//	}
//
//	if errors.Is(err, errors.ErrWrite) {
//	    // output stream is gone
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing messages and details
var (
	WithHint      = crdb.WithHint
	WithHintf     = crdb.WithHintf
	WithDetail    = crdb.WithDetail
	WithDetailf   = crdb.WithDetailf
	GetAllHints   = crdb.GetAllHints
	FlattenHints  = crdb.FlattenHints
	GetAllDetails = crdb.GetAllDetails
)

// Error inspection
var (
	Is        = crdb.Is
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// ErrWrite marks failures to write generated output.
// Use with errors.Is(); the underlying cause stays reachable via UnwrapAll.
var ErrWrite = New("write failed")

// WrapWrite marks err as a write failure and adds context.
// Returns nil when err is nil so it can wrap writer results directly.
func WrapWrite(err error, context string) error {
	if err == nil {
		return nil
	}
	return WithHint(
		Wrap(Mark(err, ErrWrite), context),
		"check that standard output is open and writable",
	)
}

// IsWriteError checks if an error is or wraps ErrWrite
func IsWriteError(err error) bool {
	return err != nil && Is(err, ErrWrite)
}
