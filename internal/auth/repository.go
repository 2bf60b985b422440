package auth

import "context"

// UserRepository defines the data-access contract.
// Service depends ONLY on this interface.
type UserRepository interface {
	// Insert persists a new user. Returns ErrEmailTaken when the email
	// is already registered. The insert must be atomic: no separate
	// exists-check before the write.
	Insert(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	// UpdateAllergies replaces the allergy list wholesale.
	UpdateAllergies(ctx context.Context, id string, allergies []string) error
}
