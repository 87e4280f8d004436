package entity

import "time"

type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleAdmin    UserRole = "admin"
)

// User represents the users table. Only the fields the backend reads are mapped.
type User struct {
	ID        int       `db:"id"`
	Email     string    `db:"email"`
	Role      UserRole  `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}
