package booking

import (
	"context"
	"errors"
	"fmt"
)

// State is the lifecycle position of one booking attempt.
type State string

const (
	StateDrafting   State = "DRAFTING"
	StateChecking   State = "CHECKING_AVAILABILITY"
	StateAvailable  State = "AVAILABLE"
	StateSubmitting State = "SUBMITTING"
	StateBooked     State = "BOOKED"
)

// Ledger is the external system of record for room occupancy.  The
// engine never decides availability itself; it issues exactly one call
// per check and one per submission and trusts the outcome.
//
// CheckAvailability returns nil when the room is free for the window,
// ErrUnavailable when an overlapping booking exists, and any other error
// for transport/server failures.  CreateBooking persists the booking and
// returns its reference.
type Ledger interface {
	CheckAvailability(ctx context.Context, roomID uint64, checkIn, checkOut string) error
	CreateBooking(ctx context.Context, roomID uint64, quote Quote, stay StayRequest) (string, error)
}

// Attempt tracks a single user's progress toward booking one room:
// Drafting -> CheckingAvailability -> Available -> Submitting -> Booked,
// reverting to Drafting when a check fails and to Available when a
// submission fails.  An Attempt is scoped to one caller session and is
// not safe for concurrent use; the caller must not issue overlapping
// calls against the same Attempt.
type Attempt struct {
	room   Room
	ledger Ledger
	stay   StayRequest
	state  State
	frozen *Quote // quote locked at the instant availability confirmed
}

// NewAttempt starts a fresh attempt for a room in the Drafting state.
func NewAttempt(room Room, ledger Ledger) *Attempt {
	return &Attempt{room: room, ledger: ledger, state: StateDrafting}
}

// State reports the current lifecycle position.
func (a *Attempt) State() State { return a.state }

// Stay returns the stay parameters as last set.
func (a *Attempt) Stay() StayRequest { return a.stay }

// SetStay replaces the stay parameters and returns the recomputed live
// quote.  Parameters are only mutable while drafting; once availability
// has been confirmed they are locked to the frozen quote.
func (a *Attempt) SetStay(stay StayRequest) (Quote, error) {
	if a.state != StateDrafting {
		return Quote{}, fmt.Errorf("%w: stay is locked in state %s", ErrInvalidState, a.state)
	}
	a.stay = stay
	return ComputeQuote(a.room, stay)
}

// Quote returns the frozen quote after availability has been confirmed,
// or the live recomputed quote while drafting.
func (a *Attempt) Quote() (Quote, error) {
	if a.frozen != nil {
		return *a.frozen, nil
	}
	return ComputeQuote(a.room, a.stay)
}

// CheckAvailability asks the ledger whether the room is free for the
// drafted window.  On success the attempt moves to Available and the
// quote is frozen as the authoritative price for submission.  On any
// failure the attempt reverts to Drafting; ErrUnavailable is passed
// through and everything else is wrapped in ErrRequestFailed.  No retry
// is attempted.
func (a *Attempt) CheckAvailability(ctx context.Context) (Quote, error) {
	if a.state != StateDrafting {
		return Quote{}, fmt.Errorf("%w: cannot check availability in state %s", ErrInvalidState, a.state)
	}
	// Resolve the quote first: a bad guest count should never reach the
	// ledger.
	q, err := ComputeQuote(a.room, a.stay)
	if err != nil {
		return Quote{}, err
	}
	a.state = StateChecking
	if err := a.ledger.CheckAvailability(ctx, a.room.ID, a.stay.CheckIn, a.stay.CheckOut); err != nil {
		a.state = StateDrafting
		if errors.Is(err, ErrUnavailable) {
			return Quote{}, err
		}
		return Quote{}, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	a.state = StateAvailable
	a.frozen = &q
	return q, nil
}

// Submit sends the confirmed quote to the ledger.  It is only legal from
// the Available state: calling it while drafting, or again after the
// attempt is already Booked, returns ErrInvalidState.  On failure the
// attempt reverts to Available so the user may retry submission without
// a fresh availability check.
func (a *Attempt) Submit(ctx context.Context) (string, error) {
	if a.state != StateAvailable || a.frozen == nil {
		return "", fmt.Errorf("%w: cannot submit in state %s", ErrInvalidState, a.state)
	}
	a.state = StateSubmitting
	ref, err := a.ledger.CreateBooking(ctx, a.room.ID, *a.frozen, a.stay)
	if err != nil {
		a.state = StateAvailable
		return "", fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	a.state = StateBooked
	return ref, nil
}

// Reset abandons the attempt and returns to Drafting with the stay
// parameters intact and any frozen quote discarded.  Used when the user
// starts a new quote after changing dates.
func (a *Attempt) Reset() {
	a.state = StateDrafting
	a.frozen = nil
}
