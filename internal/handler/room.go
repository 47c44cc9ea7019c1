package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jgec-alumni/kanchenjunga-booking/internal/model"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/repository"
)

// RoomHandler serves the public room catalog.
type RoomHandler struct {
	Rooms   *repository.RoomRepo
	Reviews *repository.ReviewRepo
}

func NewRoomHandler(r *repository.RoomRepo, rv *repository.ReviewRepo) *RoomHandler {
	return &RoomHandler{Rooms: r, Reviews: rv}
}

// roomPart is the catalog serialization of a room.
type roomPart struct {
	ID              uint64 `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Block           string `json:"block"`
	Floor           string `json:"floor"`
	RoomType        string `json:"roomType"`
	SingleOccupancy int    `json:"singleOccupancy"`
	DoubleOccupancy int    `json:"doubleOccupancy"`
}

func toRoomPart(r model.Room) roomPart {
	return roomPart{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Block:           r.Block,
		Floor:           r.Floor,
		RoomType:        r.RoomType,
		SingleOccupancy: r.SingleOccupancy,
		DoubleOccupancy: r.DoubleOccupancy,
	}
}

// List returns active rooms with optional ?search= title filtering and
// ?page=/?limit= pagination.
func (h *RoomHandler) List(c echo.Context) error {
	search := c.QueryParam("search")
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rooms, total, err := h.Rooms.List(ctx, search, limit, (page-1)*limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list rooms failed"})
	}

	out := make([]roomPart, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, toRoomPart(r))
	}
	return c.JSON(http.StatusOK, echo.Map{
		"rooms": out,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// Detail returns one room with its image gallery and reviews.
func (h *RoomHandler) Detail(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	room, err := h.Rooms.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load room failed"})
	}

	images, err := h.Rooms.ImagesByRoom(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load images failed"})
	}
	urls := make([]string, 0, len(images))
	for _, img := range images {
		urls = append(urls, img.URL)
	}

	reviews, err := h.Reviews.ListByRoom(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load reviews failed"})
	}
	if reviews == nil {
		reviews = []repository.ReviewDetail{}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"room":    toRoomPart(room),
		"images":  urls,
		"reviews": reviews,
	})
}
