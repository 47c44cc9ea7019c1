package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jgec-alumni/kanchenjunga-booking/internal/model"
	"github.com/jgec-alumni/kanchenjunga-booking/internal/repository"
)

// ReviewHandler lets guests review rooms they can see in the catalog.
type ReviewHandler struct {
	Reviews *repository.ReviewRepo
	Rooms   *repository.RoomRepo
}

func NewReviewHandler(rv *repository.ReviewRepo, r *repository.RoomRepo) *ReviewHandler {
	return &ReviewHandler{Reviews: rv, Rooms: r}
}

type reviewReq struct {
	RoomID  uint64 `json:"roomId"`
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

// Create stores a review for an active room.
func (h *ReviewHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req reviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.RoomID == 0 || req.Content == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "roomId and content required"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if _, err := h.Rooms.GetByID(ctx, req.RoomID); err != nil {
		if err == repository.ErrRoomNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load room failed"})
	}

	rv := &model.Review{
		RoomID:  req.RoomID,
		UserID:  uid,
		Rating:  req.Rating,
		Content: req.Content,
	}
	if err := h.Reviews.Create(ctx, rv); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create review failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"success": true, "id": rv.ID})
}
