package model

import "time"

// Booking records one confirmed stay in the `bookings` table.  The
// price columns are the quote frozen at the moment availability was
// confirmed: base_rate and surcharge are whole-stay amounts and
// total_amount is their sum.  check_in/check_out are calendar dates;
// the check-out day is not occupied, so back-to-back stays share it.
//
// Fields:
//  ID          – primary key identifier.
//  BookingRef  – human-facing reference, e.g. "BK-000041".
//  RoomID      – booked room.
//  UserID      – alumnus who booked.
//  CheckIn     – first occupied date ("2006-01-02").
//  CheckOut    – departure date ("2006-01-02").
//  Guests      – occupancy, 1 or 2.
//  RoomType    – AC or NonAC as selected for the stay.
//  Purpose     – Personal or Campus_Recruitment.
//  BaseRate    – nightly base rate at confirmation, in rupees.
//  Surcharge   – whole-stay AC surcharge at confirmation, in rupees.
//  TotalAmount – frozen total for the stay, in rupees.
//  Status      – CONFIRMED or CANCELLED.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Booking struct {
	ID          uint64    // bookings.id
	BookingRef  string    // bookings.booking_ref
	RoomID      uint64    // bookings.room_id
	UserID      uint64    // bookings.user_id
	CheckIn     string    // bookings.check_in
	CheckOut    string    // bookings.check_out
	Guests      int       // bookings.guests
	RoomType    string    // bookings.room_type
	Purpose     string    // bookings.purpose
	BaseRate    int       // bookings.base_rate
	Surcharge   int       // bookings.surcharge
	TotalAmount int       // bookings.total_amount
	Status      string    // bookings.status
	CreatedAt   time.Time // bookings.created_at
	UpdatedAt   time.Time // bookings.updated_at
}

// Booking status values.
const (
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
)
