// Package ledger adapts the bookings repository to the engine's Ledger
// collaborator interface.  The engine treats the ledger as the system
// of record for room occupancy: availability is answered by an overlap
// query and submission persists the frozen quote.  A ledger instance is
// scoped to one authenticated user and is handed to the engine
// explicitly; nothing here reads ambient session state.
package ledger

import (
	"context"

	"github.com/jgec-alumni/kanchenjunga-booking/internal/booking"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/model"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/repository"
)

// UserLedger implements booking.Ledger on top of the SQL bookings
// repository for a single user session.
type UserLedger struct {
	bookings *repository.BookingRepo
	userID   uint64

	// LastBooking holds the record persisted by the most recent
	// CreateBooking call, so the handler can publish it without a
	// second read.
	LastBooking *model.Booking
}

// ForUser builds a ledger bound to the given user.
func ForUser(b *repository.BookingRepo, userID uint64) *UserLedger {
	return &UserLedger{bookings: b, userID: userID}
}

// CheckAvailability reports booking.ErrUnavailable when a CONFIRMED
// booking overlaps the requested window, nil when the room is free, and
// passes through any query error for the engine to classify as a
// request failure.
func (l *UserLedger) CheckAvailability(ctx context.Context, roomID uint64, checkIn, checkOut string) error {
	overlap, err := l.bookings.HasOverlap(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return err
	}
	if overlap {
		return booking.ErrUnavailable
	}
	return nil
}

// CreateBooking persists the confirmed quote as a CONFIRMED booking and
// returns its human-facing reference.
func (l *UserLedger) CreateBooking(ctx context.Context, roomID uint64, q booking.Quote, stay booking.StayRequest) (string, error) {
	b := &model.Booking{
		RoomID:      roomID,
		UserID:      l.userID,
		CheckIn:     stay.CheckIn,
		CheckOut:    stay.CheckOut,
		Guests:      stay.Guests,
		RoomType:    string(stay.RoomType),
		Purpose:     string(stay.Purpose),
		BaseRate:    q.BaseRate,
		Surcharge:   q.Surcharge,
		TotalAmount: q.Total,
	}
	if err := l.bookings.Create(ctx, b); err != nil {
		return "", err
	}
	l.LastBooking = b
	return b.BookingRef, nil
}
