// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an identity record. The hashed password lives on the entity so the
// login flow can verify credentials, but it must never leave the service in a
// response body or a log line.
type User struct {
	ID             int64     // Database-assigned numeric id, immutable.
	Username       string    // Unique display/login name.
	Email          string    // Unique, used as the login identifier.
	HashedPassword string    // bcrypt digest; the plaintext is never stored.
	CreatedAt      time.Time // Timestamp of registration.
}
