package model

import "time"

// Review is a guest review of a room in the `reviews` table.  Reviews
// are listed on the room detail page together with the reviewer's name
// and role.
//
// Fields:
//  ID        – primary key identifier.
//  RoomID    – reviewed room.
//  UserID    – author of the review.
//  Rating    – star rating, 1 to 5.
//  Content   – review text.
//  CreatedAt – creation timestamp.
type Review struct {
	ID        uint64    // reviews.id
	RoomID    uint64    // reviews.room_id
	UserID    uint64    // reviews.user_id
	Rating    int       // reviews.rating
	Content   string    // reviews.content
	CreatedAt time.Time // reviews.created_at
}
