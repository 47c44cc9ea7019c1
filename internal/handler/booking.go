package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jgec-alumni/kanchenjunga-booking/internal/booking"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/ledger"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/model"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/queue"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/repository"
	queue_publisher "github.com/jgec-alumni/kanchenjunga-booking/internal/service"
)

// BookingHandler drives booking attempts against the engine.  Each
// request builds a fresh attempt bound to the caller's user through a
// per-request ledger; no attempt state survives between requests.
type BookingHandler struct {
	Rooms    *repository.RoomRepo
	Bookings *repository.BookingRepo
}

func NewBookingHandler(r *repository.RoomRepo, b *repository.BookingRepo) *BookingHandler {
	return &BookingHandler{Rooms: r, Bookings: b}
}

// stayReq is the request body shared by the availability, quote and
// create endpoints.  Total is only read by create, which compares it
// against the server-side quote.
type stayReq struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Guests    int    `json:"guests"`
	RoomType  string `json:"type"`
	Purpose   string `json:"purpose"`
	Total     int    `json:"total"`
}

// buildStay validates a request body against the room's published
// offering and maps both onto the engine's types.  The returned error
// text is safe to echo back to the client.
func buildStay(room model.Room, req stayReq) (booking.Room, booking.StayRequest, error) {
	purpose := booking.Purpose(req.Purpose)
	if purpose == "" {
		purpose = booking.PurposePersonal
	}
	if purpose != booking.PurposePersonal && purpose != booking.PurposeCampusRecruitment {
		return booking.Room{}, booking.StayRequest{}, errors.New("invalid purpose")
	}

	offered := booking.RoomType(room.RoomType)
	sel := booking.RoomType(req.RoomType)
	if sel == "" && offered != booking.RoomTypeBoth {
		sel = offered // rooms with a single offering need no selection
	}
	if sel != booking.RoomTypeAC && sel != booking.RoomTypeNonAC {
		return booking.Room{}, booking.StayRequest{}, errors.New("invalid room type")
	}
	if offered != booking.RoomTypeBoth && sel != offered {
		return booking.Room{}, booking.StayRequest{}, errors.New("room does not offer that type")
	}

	engineRoom := booking.Room{
		ID:              room.ID,
		SingleOccupancy: room.SingleOccupancy,
		DoubleOccupancy: room.DoubleOccupancy,
		Type:            offered,
	}
	stay := booking.StayRequest{
		CheckIn:  req.StartDate,
		CheckOut: req.EndDate,
		Guests:   req.Guests,
		RoomType: sel,
		Purpose:  purpose,
	}
	return engineRoom, stay, nil
}

// loadRoom resolves the :id parameter to an active room.
func (h *BookingHandler) loadRoom(c echo.Context, ctx context.Context) (model.Room, bool) {
	id, err := pathID(c)
	if err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
		return model.Room{}, false
	}
	room, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			_ = c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		} else {
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"error": "load room failed"})
		}
		return model.Room{}, false
	}
	return room, true
}

// CheckAvailability answers whether the room is free for the window.
// Guests defaults to 1 here so the date picker can probe availability
// before the rest of the form is filled in.
func (h *BookingHandler) CheckAvailability(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req stayReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Guests == 0 {
		req.Guests = 1
	}
	if booking.Nights(req.StartDate, req.EndDate) < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid dates"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	room, ok := h.loadRoom(c, ctx)
	if !ok {
		return nil
	}
	if req.RoomType == "" && room.RoomType == "Both" {
		// The AC selection has no bearing on availability, so the
		// probe does not insist on one.
		req.RoomType = "NonAC"
	}
	engineRoom, stay, err := buildStay(room, req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	attempt := booking.NewAttempt(engineRoom, ledger.ForUser(h.Bookings, uid))
	if _, err := attempt.SetStay(stay); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if _, err := attempt.CheckAvailability(ctx); err != nil {
		switch {
		case errors.Is(err, booking.ErrUnavailable):
			return c.JSON(http.StatusOK, echo.Map{
				"success": false,
				"message": "room is not available for the selected dates",
			})
		case errors.Is(err, booking.ErrInvalidGuestCount):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "guests must be 1 or 2"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "availability check failed"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "room is available",
	})
}

// Quote returns the server-side price for a candidate stay without
// touching the ledger.  Zero-night windows are allowed and price at
// zero, matching the live preview on the booking form.
func (h *BookingHandler) Quote(c echo.Context) error {
	var req stayReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	room, ok := h.loadRoom(c, ctx)
	if !ok {
		return nil
	}
	engineRoom, stay, err := buildStay(room, req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	q, err := booking.ComputeQuote(engineRoom, stay)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidGuestCount) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "guests must be 1 or 2"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"quote": q})
}

// Create runs a full booking attempt: draft, availability check, then
// submission of the frozen quote.  The client's total is compared with
// the server's; a drifted total is rejected so stale prices on the
// form can never be persisted.  On success a booking.confirmed event
// is published for downstream consumers.
func (h *BookingHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req stayReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if booking.Nights(req.StartDate, req.EndDate) < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid dates"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	room, ok := h.loadRoom(c, ctx)
	if !ok {
		return nil
	}
	engineRoom, stay, err := buildStay(room, req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	userLedger := ledger.ForUser(h.Bookings, uid)
	attempt := booking.NewAttempt(engineRoom, userLedger)
	if _, err := attempt.SetStay(stay); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	q, err := attempt.CheckAvailability(ctx)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrUnavailable):
			return c.JSON(http.StatusConflict, echo.Map{
				"success": false,
				"message": "room is not available for the selected dates",
			})
		case errors.Is(err, booking.ErrInvalidGuestCount):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "guests must be 1 or 2"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "availability check failed"})
		}
	}

	// The quote is frozen now; a client total computed against older
	// rates must not be written to the ledger.
	if req.Total != q.Total {
		return c.JSON(http.StatusConflict, echo.Map{
			"success": false,
			"message": "price has changed, please review the quote",
			"quote":   q,
		})
	}

	ref, err := attempt.Submit(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	if b := userLedger.LastBooking; b != nil {
		ev := queue.BookingConfirmedEvent{
			BookingID:   b.ID,
			BookingRef:  b.BookingRef,
			UserID:      uid,
			RoomID:      room.ID,
			RoomTitle:   room.Title,
			Block:       room.Block,
			CheckIn:     b.CheckIn,
			CheckOut:    b.CheckOut,
			Guests:      b.Guests,
			RoomType:    b.RoomType,
			Purpose:     b.Purpose,
			TotalAmount: b.TotalAmount,
			ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
		}
		// Fire and forget; the publisher logs its own failures.
		go func() {
			pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer pubCancel()
			_ = queue_publisher.PublishBookingConfirmed(pubCtx, ev)
		}()
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success":   true,
		"message":   "booking confirmed",
		"bookingId": ref,
		"total":     q.Total,
	})
}

// Delete cancels one of the caller's upcoming bookings.
func (h *BookingHandler) Delete(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	switch err := h.Bookings.CancelForUser(ctx, id, uid); err {
	case nil:
		return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "booking cancelled"})
	case repository.ErrBookingNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	case repository.ErrForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"error": "not your booking"})
	case repository.ErrConflict:
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking can no longer be cancelled"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}
}

// ListMine returns the caller's bookings, newest stay first.
func (h *BookingHandler) ListMine(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	out, err := h.Bookings.ListByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list bookings failed"})
	}
	if out == nil {
		out = []repository.BookingDetail{}
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": out})
}
