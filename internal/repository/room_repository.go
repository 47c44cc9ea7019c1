// This file defines the repository for the room catalog: listing with
// search and pagination, detail lookups with images, and the CRUD
// operations the admin shell needs.  Business rules (pricing,
// availability) live elsewhere; this layer only moves rows.
package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jgec-alumni/kanchenjunga-booking/internal/model"
)

// RoomRepo encapsulates all database queries related to rooms and their
// images.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the provided DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

const roomColumns = "id, title, description, block, floor, room_type, single_occupancy, double_occupancy, is_active, created_at, updated_at"

func scanRoom(row interface{ Scan(...interface{}) error }) (model.Room, error) {
	var rm model.Room
	err := row.Scan(&rm.ID, &rm.Title, &rm.Description, &rm.Block, &rm.Floor,
		&rm.RoomType, &rm.SingleOccupancy, &rm.DoubleOccupancy, &rm.IsActive,
		&rm.CreatedAt, &rm.UpdatedAt)
	return rm, err
}

// List returns active rooms ordered by title, optionally filtered by a
// case-insensitive search over title and description, with limit/offset
// pagination.  It also returns the total count for the filter so the
// caller can build page metadata.
func (r *RoomRepo) List(ctx context.Context, search string, limit, offset int) ([]model.Room, int, error) {
	search = strings.TrimSpace(search)
	where := "WHERE is_active = 1"
	args := []interface{}{}
	if search != "" {
		where += " AND (title LIKE ? OR description LIKE ?)"
		pat := "%" + search + "%"
		args = append(args, pat, pat)
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM rooms "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := "SELECT " + roomColumns + " FROM rooms " + where + " ORDER BY title LIMIT ? OFFSET ?"
	args = append(args, limit, offset)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []model.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rm)
	}
	return out, total, rows.Err()
}

// GetByID fetches a single active room.  Missing and deactivated rooms
// both map to ErrRoomNotFound so the catalog never leaks hidden rooms.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	rm, err := scanRoom(r.db.QueryRowContext(ctx,
		"SELECT "+roomColumns+" FROM rooms WHERE id = ? AND is_active = 1 LIMIT 1", id))
	if err == sql.ErrNoRows {
		return model.Room{}, ErrRoomNotFound
	}
	return rm, err
}

// ImagesByRoom returns a room's gallery in sort order.
func (r *RoomRepo) ImagesByRoom(ctx context.Context, roomID uint64) ([]model.RoomImage, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, room_id, url, sort_order FROM room_images WHERE room_id = ? ORDER BY sort_order, id", roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RoomImage
	for rows.Next() {
		var img model.RoomImage
		if err := rows.Scan(&img.ID, &img.RoomID, &img.URL, &img.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	return out, rows.Err()
}

// Create inserts a new room.  On success the room's ID field is
// populated and the row is re-read so timestamps come back filled.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO rooms (title, description, block, floor, room_type, single_occupancy, double_occupancy, is_active) VALUES (?,?,?,?,?,?,?,1)",
		rm.Title, rm.Description, rm.Block, rm.Floor, rm.RoomType, rm.SingleOccupancy, rm.DoubleOccupancy)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rm.ID = uint64(id)
	got, err := scanRoom(r.db.QueryRowContext(ctx,
		"SELECT "+roomColumns+" FROM rooms WHERE id = ?", rm.ID))
	if err != nil {
		return err
	}
	*rm = got
	return nil
}

// Update replaces the mutable fields of a room.  Returns
// ErrRoomNotFound when the id does not exist.
func (r *RoomRepo) Update(ctx context.Context, rm *model.Room) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE rooms SET title=?, description=?, block=?, floor=?, room_type=?, single_occupancy=?, double_occupancy=? WHERE id=?",
		rm.Title, rm.Description, rm.Block, rm.Floor, rm.RoomType, rm.SingleOccupancy, rm.DoubleOccupancy, rm.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// Distinguish "no such row" from "no change": re-check existence.
		var one int
		if err := r.db.QueryRowContext(ctx, "SELECT 1 FROM rooms WHERE id=?", rm.ID).Scan(&one); err == sql.ErrNoRows {
			return ErrRoomNotFound
		} else if err != nil {
			return err
		}
	}
	return nil
}

// Deactivate soft-deletes a room so existing bookings keep their
// foreign key while the catalog stops offering it.
func (r *RoomRepo) Deactivate(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "UPDATE rooms SET is_active=0 WHERE id=? AND is_active=1", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRoomNotFound
	}
	return nil
}
