package entity

import "time"

// Split is a named workout routine (e.g. Push, Pull, Legs) owned by exactly
// one user. Ownership is fixed at creation and never transferred.
type Split struct {
	ID          int64
	Name        string
	Description string
	OwnerID     int64 // References the owning User. Immutable after creation.
	CreatedAt   time.Time
}
