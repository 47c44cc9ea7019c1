// Package repository contains the data access layer, separated from HTTP
// handlers.  This file defines sentinel errors reused across multiple
// repositories so higher layers can distinguish failure scenarios: for
// example ErrForbidden indicates the current user is operating on a
// resource owned by someone else, while ErrConflict signals that an
// operation cannot proceed because of dependent state (e.g. cancelling a
// stay that already started).
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.  Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an update cannot be performed because of
// conflicting state, such as cancelling a booking whose stay has already
// begun.  Handlers translate this into HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrEmailExists is returned by user creation when the email address is
// already registered.
var ErrEmailExists = errors.New("email already exists")

// ErrRoomNotFound is returned when a room id does not exist or the room
// has been deactivated.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when a booking id does not exist.
var ErrBookingNotFound = errors.New("booking not found")
