package auth

import "time"

// User is the domain entity.
type User struct {
	ID        string
	Email     string
	Password  string
	Allergies []string
	CreatedAt time.Time
}
