package repository

import (
	"context"
	"database/sql"

	"github.com/jgec-alumni/kanchenjunga-booking/internal/model"
)

// ReviewRepo encapsulates database queries for room reviews.
type ReviewRepo struct {
	db *sql.DB
}

// NewReviewRepo returns a new ReviewRepo bound to the given database.
func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// Create inserts a review.  On success the ID field is populated.
func (r *ReviewRepo) Create(ctx context.Context, rv *model.Review) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO reviews (room_id, user_id, rating, content) VALUES (?,?,?,?)",
		rv.RoomID, rv.UserID, rv.Rating, rv.Content)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rv.ID = uint64(id)
	return nil
}

// ReviewDetail is a review joined with its author's name and role, as
// rendered on the room detail page.
type ReviewDetail struct {
	ID      uint64 `json:"id"`
	Rating  int    `json:"rating"`
	Content string `json:"content"`
	User    struct {
		Name string `json:"name"`
		Role string `json:"role"`
	} `json:"user"`
}

// ListByRoom returns a room's reviews, newest first.
func (r *ReviewRepo) ListByRoom(ctx context.Context, roomID uint64) ([]ReviewDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT rv.id, rv.rating, rv.content, u.name, u.role
		   FROM reviews rv
		   JOIN users u ON u.id = rv.user_id
		  WHERE rv.room_id = ?
		  ORDER BY rv.created_at DESC`, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ReviewDetail
	for rows.Next() {
		var d ReviewDetail
		if err := rows.Scan(&d.ID, &d.Rating, &d.Content, &d.User.Name, &d.User.Role); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
