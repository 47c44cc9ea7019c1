package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2025-06-20", "2025-06-23", 3},
		{"one night", "2025-06-20", "2025-06-21", 1},
		{"same day", "2025-06-20", "2025-06-20", 0},
		{"reversed", "2025-06-23", "2025-06-20", 0},
		{"missing check-in", "", "2025-06-23", 0},
		{"missing check-out", "2025-06-20", "", 0},
		{"both missing", "", "", 0},
		{"garbage check-in", "not-a-date", "2025-06-23", 0},
		{"garbage check-out", "2025-06-20", "23/06/2025", 0},
		{"across month boundary", "2025-06-28", "2025-07-02", 4},
		{"across year boundary", "2025-12-30", "2026-01-02", 3},
		{"long stay", "2025-01-01", "2025-12-31", 364},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Nights(tc.checkIn, tc.checkOut)
			assert.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got, 0, "nights must never be negative")
		})
	}
}
