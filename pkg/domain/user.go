package domain

import "github.com/google/uuid"

// UserID identifies the user a run or endpoint was created by. It wraps
// uuid.UUID to provide type safety at the domain layer; the zero value marks
// an anonymous caller.
type UserID uuid.UUID

// IsZero reports whether the ID is the zero UUID, meaning no authenticated
// user was attached.
func (id UserID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }

// String returns the canonical textual form of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }
