// Package queue defines message payloads exchanged over the message
// broker together with the consumer that drains them.
package queue

// BookingConfirmedEvent is published after a booking is persisted.  It
// carries enough of the stay and the frozen quote for downstream
// consumers to log or notify without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID   uint64 `json:"booking_id"`
	BookingRef  string `json:"booking_ref"`
	UserID      uint64 `json:"user_id"`
	RoomID      uint64 `json:"room_id"`
	RoomTitle   string `json:"room_title"`
	Block       string `json:"block"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Guests      int    `json:"guests"`
	RoomType    string `json:"room_type"`
	Purpose     string `json:"purpose"`
	TotalAmount int    `json:"total_amount"`
	ConfirmedAt string `json:"confirmed_at"`
}
