package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jgec-alumni/kanchenjunga-booking/internal/middleware"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/model"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/repository"
)

// AdminHandler implements the admin shell: room management and
// oversight of bookings and users.  All routes are gated on the ADMIN
// role by the router.  Room mutations flush the catalog cache so
// alumni never see a stale listing.
type AdminHandler struct {
	Rooms    *repository.RoomRepo
	Bookings *repository.BookingRepo
	Users    *repository.UserRepo
	Cache    *middleware.Invalidator
}

func NewAdminHandler(r *repository.RoomRepo, b *repository.BookingRepo, u *repository.UserRepo, inv *middleware.Invalidator) *AdminHandler {
	return &AdminHandler{Rooms: r, Bookings: b, Users: u, Cache: inv}
}

type roomReq struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Block           string `json:"block"`
	Floor           string `json:"floor"`
	RoomType        string `json:"roomType"`
	SingleOccupancy int    `json:"singleOccupancy"`
	DoubleOccupancy int    `json:"doubleOccupancy"`
}

func (r roomReq) validate() string {
	if strings.TrimSpace(r.Title) == "" {
		return "title required"
	}
	switch r.RoomType {
	case "AC", "NonAC", "Both":
	default:
		return "roomType must be AC, NonAC or Both"
	}
	if r.SingleOccupancy <= 0 || r.DoubleOccupancy <= 0 {
		return "occupancy rates must be positive"
	}
	return ""
}

// CreateRoom adds a room to the catalog.
func (h *AdminHandler) CreateRoom(c echo.Context) error {
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rm := &model.Room{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		Block:           req.Block,
		Floor:           req.Floor,
		RoomType:        req.RoomType,
		SingleOccupancy: req.SingleOccupancy,
		DoubleOccupancy: req.DoubleOccupancy,
	}
	if err := h.Rooms.Create(ctx, rm); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create room failed"})
	}
	h.Cache.Flush(ctx)
	return c.JSON(http.StatusCreated, echo.Map{"room": toRoomPart(*rm)})
}

// UpdateRoom replaces a room's catalog fields.  Existing bookings keep
// the rates frozen in their quotes; only future quotes see the change.
func (h *AdminHandler) UpdateRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rm, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load room failed"})
	}

	rm.Title = strings.TrimSpace(req.Title)
	rm.Description = req.Description
	rm.Block = req.Block
	rm.Floor = req.Floor
	rm.RoomType = req.RoomType
	rm.SingleOccupancy = req.SingleOccupancy
	rm.DoubleOccupancy = req.DoubleOccupancy

	if err := h.Rooms.Update(ctx, &rm); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update room failed"})
	}
	h.Cache.Flush(ctx)
	return c.JSON(http.StatusOK, echo.Map{"room": toRoomPart(rm)})
}

// DeleteRoom soft-deletes a room so it disappears from the catalog but
// existing bookings keep their join target.
func (h *AdminHandler) DeleteRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Rooms.Deactivate(ctx, id); err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete room failed"})
	}
	h.Cache.Flush(ctx)
	return c.NoContent(http.StatusNoContent)
}

// ListBookings returns every booking, newest first.
func (h *AdminHandler) ListBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	out, err := h.Bookings.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list bookings failed"})
	}
	if out == nil {
		out = []repository.BookingDetail{}
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": out})
}

// adminUserPart serializes a user for the admin listing; the password
// hash never leaves the repository layer.
type adminUserPart struct {
	ID             uint64    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Department     string    `json:"department"`
	GraduationYear int       `json:"graduationYear"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListUsers returns all registered users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list users failed"})
	}
	out := make([]adminUserPart, 0, len(users))
	for _, u := range users {
		out = append(out, adminUserPart{
			ID:             u.ID,
			Name:           u.Name,
			Email:          u.Email,
			Department:     u.Department,
			GraduationYear: u.GraduationYear,
			Role:           u.Role,
			IsActive:       u.IsActive,
			CreatedAt:      u.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"users": out})
}

// DeactivateUser disables an account and revokes nothing else; the
// login and refresh paths both reject inactive users, so outstanding
// tokens die at their next use.
func (h *AdminHandler) DeactivateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	if uid, err := getUserID(c); err == nil && uid == id {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot deactivate yourself"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.SetActive(ctx, id, false); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "deactivate failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "user deactivated"})
}
