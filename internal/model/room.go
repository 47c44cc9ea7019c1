package model

import "time"

// Room represents one bookable guest-house room in the `rooms` table.
// A room publishes two nightly rates, one per occupancy level, and
// declares which room types it can be let as: AC, NonAC, or Both when
// the guest may choose at booking time.
//
// Fields:
//  ID              – primary key identifier.
//  Title           – display title, e.g. "Executive Suite - Teesta".
//  Description     – free-text description for the detail page.
//  Block           – building block within the guest house.
//  Floor           – floor label, e.g. "Ground Floor".
//  RoomType        – AC, NonAC or Both.
//  SingleOccupancy – nightly rate for one guest, in whole rupees.
//  DoubleOccupancy – nightly rate for two guests, in whole rupees.
//  IsActive        – inactive rooms are hidden from the catalog.
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type Room struct {
	ID              uint64    // rooms.id
	Title           string    // rooms.title
	Description     string    // rooms.description
	Block           string    // rooms.block
	Floor           string    // rooms.floor
	RoomType        string    // rooms.room_type
	SingleOccupancy int       // rooms.single_occupancy
	DoubleOccupancy int       // rooms.double_occupancy
	IsActive        bool      // rooms.is_active
	CreatedAt       time.Time // rooms.created_at
	UpdatedAt       time.Time // rooms.updated_at
}

// RoomImage is a gallery entry for a room in the `room_images` table.
// Images are served by URL and shown in sort order on the detail page.
type RoomImage struct {
	ID        uint64 // room_images.id
	RoomID    uint64 // room_images.room_id
	URL       string // room_images.url
	SortOrder int    // room_images.sort_order
}
