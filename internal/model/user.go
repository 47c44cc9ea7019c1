package model

import "time"

// User represents an alumni-association account as stored in the
// `users` table.  Each field corresponds to a column.  The json tags
// are omitted here because these structs are used internally by the
// repository layer; handlers define their own response types with
// appropriate JSON tags.
//
// Fields:
//  ID             – primary key identifier of the user.
//  Name           – display name shown on reviews and bookings.
//  Email          – unique email address.
//  PasswordHash   – bcrypt hashed password.
//  Department     – department the alumnus graduated from.
//  GraduationYear – year of graduation (zero for admin accounts).
//  Role           – name of the role (ALUMNUS or ADMIN).
//  IsActive       – whether the account is active; admins can deactivate.
//  CreatedAt      – timestamp of creation.
//  UpdatedAt      – timestamp of last update.
type User struct {
	ID             uint64    // users.id
	Name           string    // users.name
	Email          string    // users.email
	PasswordHash   string    // users.password_hash
	Department     string    // users.department
	GraduationYear int       // users.graduation_year
	Role           string    // users.role
	IsActive       bool      // users.is_active
	CreatedAt      time.Time // users.created_at
	UpdatedAt      time.Time // users.updated_at
}
