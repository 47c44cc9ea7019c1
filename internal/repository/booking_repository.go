// This file defines the repository backing the booking ledger: overlap
// detection, booking creation and cancellation, and the listings shown
// on the profile page and the admin shell.  Nights exclude the
// check-out day, so a window overlaps an existing CONFIRMED booking
// when check_in < :out AND check_out > :in; back-to-back stays that
// share a turnover date do not collide.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jgec-alumni/kanchenjunga-booking/internal/booking"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/model"
)

// BookingRepo encapsulates all database queries related to bookings.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = "id, booking_ref, room_id, user_id, check_in, check_out, guests, room_type, purpose, base_rate, surcharge, total_amount, status, created_at, updated_at"

func scanBooking(row interface{ Scan(...interface{}) error }) (model.Booking, error) {
	var (
		b       model.Booking
		in, out time.Time
	)
	err := row.Scan(&b.ID, &b.BookingRef, &b.RoomID, &b.UserID, &in, &out,
		&b.Guests, &b.RoomType, &b.Purpose, &b.BaseRate, &b.Surcharge, &b.TotalAmount,
		&b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return model.Booking{}, err
	}
	// DATE columns arrive as time.Time under parseTime=true; the model
	// carries calendar-date strings.
	b.CheckIn = in.Format(booking.DateLayout)
	b.CheckOut = out.Format(booking.DateLayout)
	return b, nil
}

// HasOverlap reports whether any CONFIRMED booking occupies the room
// for part of the [checkIn, checkOut) window.
func (r *BookingRepo) HasOverlap(ctx context.Context, roomID uint64, checkIn, checkOut string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings
		 WHERE room_id = ? AND status = ? AND check_in < ? AND check_out > ?`,
		roomID, model.BookingStatusConfirmed, checkOut, checkIn).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts a CONFIRMED booking and stamps its human-facing
// reference.  The reference is derived from the auto-increment id
// ("BK-000041") in a follow-up update; both statements run in one
// transaction so a booking never exists without its reference.  On
// success the record's ID, BookingRef and timestamps are populated.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (booking_ref, room_id, user_id, check_in, check_out, guests, room_type, purpose, base_rate, surcharge, total_amount, status)
		 VALUES ('', ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.RoomID, b.UserID, b.CheckIn, b.CheckOut, b.Guests, b.RoomType, b.Purpose,
		b.BaseRate, b.Surcharge, b.TotalAmount, model.BookingStatusConfirmed)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	b.BookingRef = fmt.Sprintf("BK-%06d", b.ID)
	if _, err := tx.ExecContext(ctx,
		"UPDATE bookings SET booking_ref=? WHERE id=?", b.BookingRef, b.ID); err != nil {
		return err
	}
	got, err := scanBooking(tx.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE id = ?", b.ID))
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	*b = got
	return nil
}

// CancelForUser cancels a booking owned by the given user.  Bookings
// whose stay has already begun cannot be cancelled (ErrConflict), and a
// booking belonging to someone else yields ErrForbidden.  Admin callers
// pass ownerID 0 to bypass the ownership check.
func (r *BookingRepo) CancelForUser(ctx context.Context, id, ownerID uint64) error {
	var (
		userID  uint64
		checkIn time.Time
		status  string
	)
	err := r.db.QueryRowContext(ctx,
		"SELECT user_id, check_in, status FROM bookings WHERE id = ? LIMIT 1", id).
		Scan(&userID, &checkIn, &status)
	if err == sql.ErrNoRows {
		return ErrBookingNotFound
	}
	if err != nil {
		return err
	}
	if ownerID != 0 && userID != ownerID {
		return ErrForbidden
	}
	if status != model.BookingStatusConfirmed {
		return ErrConflict
	}
	// A stay is cancellable only while its check-in is still in the
	// future.
	if !checkIn.After(time.Now().UTC().Truncate(24 * time.Hour)) {
		return ErrConflict
	}
	_, err = r.db.ExecContext(ctx,
		"UPDATE bookings SET status=? WHERE id=?", model.BookingStatusCancelled, id)
	return err
}

// BookingDetail is a booking joined with its room's title and block for
// display on the profile page and in the admin listing.
type BookingDetail struct {
	ID          uint64 `json:"id"`
	BookingRef  string `json:"bookingId"`
	RoomID      uint64 `json:"roomId"`
	RoomTitle   string `json:"title"`
	Block       string `json:"block"`
	CheckIn     string `json:"startDate"`
	CheckOut    string `json:"endDate"`
	Guests      int    `json:"guests"`
	RoomType    string `json:"type"`
	Purpose     string `json:"purpose"`
	TotalAmount int    `json:"total"`
	Status      string `json:"status"`
	UserID      uint64 `json:"userId,omitempty"`
	UserName    string `json:"userName,omitempty"`
}

const bookingDetailQuery = `
	SELECT b.id, b.booking_ref, b.room_id, r.title, r.block,
	       b.check_in, b.check_out, b.guests, b.room_type, b.purpose,
	       b.total_amount, b.status, b.user_id, u.name
	  FROM bookings b
	  JOIN rooms r ON r.id = b.room_id
	  JOIN users u ON u.id = b.user_id`

func collectDetails(rows *sql.Rows) ([]BookingDetail, error) {
	defer rows.Close()
	var out []BookingDetail
	for rows.Next() {
		var (
			d         BookingDetail
			inD, outD time.Time
		)
		if err := rows.Scan(&d.ID, &d.BookingRef, &d.RoomID, &d.RoomTitle, &d.Block,
			&inD, &outD, &d.Guests, &d.RoomType, &d.Purpose,
			&d.TotalAmount, &d.Status, &d.UserID, &d.UserName); err != nil {
			return nil, err
		}
		d.CheckIn = inD.Format(booking.DateLayout)
		d.CheckOut = outD.Format(booking.DateLayout)
		out = append(out, d)
	}
	return out, rows.Err()
}

// ListByUser returns a user's bookings, newest stay first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		bookingDetailQuery+" WHERE b.user_id = ? ORDER BY b.check_in DESC", userID)
	if err != nil {
		return nil, err
	}
	return collectDetails(rows)
}

// ListAll returns every booking for the admin shell, newest first.
func (r *BookingRepo) ListAll(ctx context.Context) ([]BookingDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		bookingDetailQuery+" ORDER BY b.created_at DESC")
	if err != nil {
		return nil, err
	}
	return collectDetails(rows)
}
