package booking

import (
	"math"
	"time"
)

// DateLayout is the calendar-date format used across the booking API.
// Stay dates carry no time-of-day component.
const DateLayout = "2006-01-02"

// Nights returns the number of whole nights between a check-in and a
// check-out date, both given as "2006-01-02" strings.  A missing or
// unparseable date yields zero, as does a check-out on or before the
// check-in.  The result is never negative and the function never fails,
// so it is safe to call on every form change.
func Nights(checkIn, checkOut string) int {
	in, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return 0
	}
	diff := out.Sub(in)
	if diff <= 0 {
		return 0
	}
	// Calendar dates parse to midnight, so the difference is a whole
	// number of days; the ceiling keeps partial days from rounding away
	// if a caller ever feeds timestamps through the same path.
	return int(math.Ceil(diff.Hours() / 24))
}
