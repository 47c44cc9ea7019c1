// Package booking implements the quote and availability engine for the
// guest-house: night counting, rate resolution, quote computation and the
// per-attempt state machine that talks to the booking ledger.  Everything
// in this package is dependency-injected; nothing reads ambient state.
package booking

import "errors"

// ErrInvalidGuestCount is returned when the occupancy is outside {1, 2}.
// This is a caller error, not a user-recoverable condition: the input
// layer is expected to constrain the guest field before calling in.
var ErrInvalidGuestCount = errors.New("guest count must be 1 or 2")

// ErrUnavailable means the room is already booked for an overlapping
// window.  The user can recover by picking different dates.
var ErrUnavailable = errors.New("room not available for the selected dates")

// ErrRequestFailed wraps a transport or ledger failure during an
// availability check.  The same check can simply be retried.
var ErrRequestFailed = errors.New("availability check failed")

// ErrSubmissionFailed wraps a transport or ledger failure during booking
// submission.  The attempt stays in the Available state so the user can
// retry without re-checking availability.
var ErrSubmissionFailed = errors.New("booking submission failed")

// ErrInvalidState is returned when an operation is invoked from a state
// it is not legal in, e.g. submitting a booking that was never confirmed
// available, or submitting the same attempt twice.
var ErrInvalidState = errors.New("operation not allowed in current state")
