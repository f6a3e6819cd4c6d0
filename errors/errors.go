// Package errors provides error handling for molrepair.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - Assertion errors for internal-consistency violations
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnknownResidue) {
//	    // handle unrecognized residue name
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
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions. AssertionFailedf marks violations of invariants the code
// itself guarantees; callers must treat these as fatal, never retry.
var (
	AssertionFailedf   = crdb.AssertionFailedf
	HasAssertionFailure = crdb.HasAssertionFailure
)

// Common sentinel errors for use across molrepair.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrUnknownResidue indicates a residue name has no reference topology
	// in the force field. Only this class may be downgraded to non-fatal
	// (permissive system repair drops the molecule instead).
	ErrUnknownResidue = New("unknown residue")

	// ErrNoCommonSubgraph indicates two graphs share no common induced
	// subgraph of size >= 1; the residue cannot be matched at all.
	ErrNoCommonSubgraph = New("no common subgraph")
)

// IsUnknownResidue checks if an error is or wraps ErrUnknownResidue
func IsUnknownResidue(err error) bool {
	return err != nil && Is(err, ErrUnknownResidue)
}

// IsNoCommonSubgraph checks if an error is or wraps ErrNoCommonSubgraph
func IsNoCommonSubgraph(err error) bool {
	return err != nil && Is(err, ErrNoCommonSubgraph)
}

// NewUnknownResidue creates an unknown-residue error naming the residue
func NewUnknownResidue(resname string) error {
	return Wrapf(ErrUnknownResidue, "no reference topology for %q", resname)
}
