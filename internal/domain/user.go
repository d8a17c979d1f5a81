package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User accounts are provisioned by the identity service; this service only
// reads them for the admin projection.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
