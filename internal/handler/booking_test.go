package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jgec-alumni/kanchenjunga-booking/internal/booking"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/model"
)

func newTestContext(t *testing.T) echo.Context {
	t.Helper()
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec)
}

var teesta = model.Room{
	ID:              7,
	Title:           "Executive Suite - Teesta",
	RoomType:        "Both",
	SingleOccupancy: 1200,
	DoubleOccupancy: 1800,
}

func TestBuildStayMapsRoomAndRequest(t *testing.T) {
	room, stay, err := buildStay(teesta, stayReq{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-04",
		Guests:    2,
		RoomType:  "AC",
		Purpose:   "Personal",
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(7), room.ID)
	assert.Equal(t, 1200, room.SingleOccupancy)
	assert.Equal(t, 1800, room.DoubleOccupancy)
	assert.Equal(t, booking.RoomTypeBoth, room.Type)

	assert.Equal(t, "2026-09-01", stay.CheckIn)
	assert.Equal(t, "2026-09-04", stay.CheckOut)
	assert.Equal(t, booking.RoomTypeAC, stay.RoomType)
	assert.Equal(t, booking.PurposePersonal, stay.Purpose)
}

func TestBuildStayDefaultsPurposeToPersonal(t *testing.T) {
	_, stay, err := buildStay(teesta, stayReq{RoomType: "NonAC", Guests: 1})
	require.NoError(t, err)
	assert.Equal(t, booking.PurposePersonal, stay.Purpose)
}

func TestBuildStayRejectsUnknownPurpose(t *testing.T) {
	_, _, err := buildStay(teesta, stayReq{RoomType: "AC", Purpose: "Wedding"})
	assert.EqualError(t, err, "invalid purpose")
}

func TestBuildStayRoomTypeSelection(t *testing.T) {
	acOnly := teesta
	acOnly.RoomType = "AC"

	// A single-offering room needs no explicit selection.
	_, stay, err := buildStay(acOnly, stayReq{Guests: 1})
	require.NoError(t, err)
	assert.Equal(t, booking.RoomTypeAC, stay.RoomType)

	// But a contradictory selection is rejected.
	_, _, err = buildStay(acOnly, stayReq{RoomType: "NonAC", Guests: 1})
	assert.EqualError(t, err, "room does not offer that type")

	// A "Both" room requires the guest to pick a concrete type.
	_, _, err = buildStay(teesta, stayReq{Guests: 1})
	assert.EqualError(t, err, "invalid room type")

	// "Both" itself is not a bookable selection.
	_, _, err = buildStay(teesta, stayReq{RoomType: "Both", Guests: 1})
	assert.EqualError(t, err, "invalid room type")
}

func TestGetUserIDAcceptsJWTNumericForms(t *testing.T) {
	// Claims decoded from JSON arrive as float64.
	for _, v := range []interface{}{float64(42), uint64(42), int(42), int64(42), "42"} {
		c := newTestContext(t)
		c.Set("user_id", v)
		got, err := getUserID(c)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), got)
	}

	c := newTestContext(t)
	_, err := getUserID(c)
	assert.Error(t, err)
}
