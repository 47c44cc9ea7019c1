package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger scripts the collaborator's answers and records how many
// calls the attempt actually issued.
type fakeLedger struct {
	checkErr   error
	createErr  error
	createdRef string

	checks  int
	creates int

	gotQuote Quote
	gotStay  StayRequest
}

func (f *fakeLedger) CheckAvailability(_ context.Context, _ uint64, _, _ string) error {
	f.checks++
	return f.checkErr
}

func (f *fakeLedger) CreateBooking(_ context.Context, _ uint64, q Quote, s StayRequest) (string, error) {
	f.creates++
	f.gotQuote = q
	f.gotStay = s
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.createdRef, nil
}

func newDraft(t *testing.T, l Ledger) *Attempt {
	t.Helper()
	a := NewAttempt(teesta, l)
	_, err := a.SetStay(StayRequest{
		CheckIn:  "2025-06-20",
		CheckOut: "2025-06-23",
		Guests:   1,
		Purpose:  PurposePersonal,
		RoomType: RoomTypeNonAC,
	})
	require.NoError(t, err)
	return a
}

func TestAttemptHappyPath(t *testing.T) {
	ledger := &fakeLedger{createdRef: "BK-41"}
	a := newDraft(t, ledger)
	assert.Equal(t, StateDrafting, a.State())

	q, err := a.CheckAvailability(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StateAvailable, a.State())
	assert.Equal(t, 3600, q.Total)
	assert.Equal(t, 1, ledger.checks)

	ref, err := a.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "BK-41", ref)
	assert.Equal(t, StateBooked, a.State())
	assert.Equal(t, 1, ledger.creates)
	// The ledger must receive the quote frozen at confirmation time.
	assert.Equal(t, q, ledger.gotQuote)
}

func TestAttemptUnavailableRevertsToDrafting(t *testing.T) {
	ledger := &fakeLedger{checkErr: ErrUnavailable}
	a := newDraft(t, ledger)

	_, err := a.CheckAvailability(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, StateDrafting, a.State())

	// No quote was frozen, so submission is a caller error.
	_, err = a.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Zero(t, ledger.creates)
}

func TestAttemptCheckFailureWrapsRequestFailed(t *testing.T) {
	ledger := &fakeLedger{checkErr: errors.New("connection refused")}
	a := newDraft(t, ledger)

	_, err := a.CheckAvailability(context.Background())
	assert.ErrorIs(t, err, ErrRequestFailed)
	assert.Equal(t, StateDrafting, a.State())

	// The check is re-triggerable after a transient failure.
	ledger.checkErr = nil
	_, err = a.CheckAvailability(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, StateAvailable, a.State())
}

func TestAttemptSubmitFailureRevertsToAvailable(t *testing.T) {
	ledger := &fakeLedger{createErr: errors.New("deadlock"), createdRef: "BK-7"}
	a := newDraft(t, ledger)

	_, err := a.CheckAvailability(context.Background())
	require.NoError(t, err)

	_, err = a.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionFailed)
	assert.Equal(t, StateAvailable, a.State())

	// Retry without a fresh availability check.
	ledger.createErr = nil
	ref, err := a.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "BK-7", ref)
	assert.Equal(t, 1, ledger.checks, "retrying submission must not re-check availability")
}

func TestAttemptDoubleSubmitIsCallerError(t *testing.T) {
	ledger := &fakeLedger{createdRef: "BK-9"}
	a := newDraft(t, ledger)

	_, err := a.CheckAvailability(context.Background())
	require.NoError(t, err)
	_, err = a.Submit(context.Background())
	require.NoError(t, err)

	_, err = a.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, 1, ledger.creates)
}

func TestAttemptQuoteFrozenAtConfirmation(t *testing.T) {
	ledger := &fakeLedger{createdRef: "BK-11"}
	a := newDraft(t, ledger)

	frozen, err := a.CheckAvailability(context.Background())
	require.NoError(t, err)

	// Stay parameters are locked once availability is confirmed.
	_, err = a.SetStay(StayRequest{CheckIn: "2025-07-01", CheckOut: "2025-07-05", Guests: 2})
	assert.ErrorIs(t, err, ErrInvalidState)

	q, err := a.Quote()
	require.NoError(t, err)
	assert.Equal(t, frozen, q)
}

func TestAttemptResetDiscardsFrozenQuote(t *testing.T) {
	ledger := &fakeLedger{}
	a := newDraft(t, ledger)

	_, err := a.CheckAvailability(context.Background())
	require.NoError(t, err)
	a.Reset()
	assert.Equal(t, StateDrafting, a.State())

	// Back to a live quote; new parameters are accepted again.
	_, err = a.SetStay(StayRequest{
		CheckIn:  "2025-07-01",
		CheckOut: "2025-07-03",
		Guests:   2,
		Purpose:  PurposePersonal,
		RoomType: RoomTypeAC,
	})
	require.NoError(t, err)
	q, err := a.Quote()
	require.NoError(t, err)
	assert.Equal(t, 2*1800+2*500, q.Total)
}

func TestAttemptBadGuestCountNeverReachesLedger(t *testing.T) {
	ledger := &fakeLedger{}
	a := NewAttempt(teesta, ledger)
	_, err := a.SetStay(StayRequest{CheckIn: "2025-06-20", CheckOut: "2025-06-23", Guests: 5})
	assert.ErrorIs(t, err, ErrInvalidGuestCount)

	_, err = a.CheckAvailability(context.Background())
	assert.ErrorIs(t, err, ErrInvalidGuestCount)
	assert.Equal(t, StateDrafting, a.State())
	assert.Zero(t, ledger.checks)
}
