package entity

import "time"

// Workout is a single exercise entry belonging to a split. Deleting the split
// deletes its workouts, so an orphaned workout cannot exist.
type Workout struct {
	ID        int64
	Name      string
	Sets      int
	Reps      int
	Weight    int // Implied unit, stored as an integer.
	OwnerID   int64
	SplitID   int64 // References the parent Split. Immutable after creation.
	CreatedAt time.Time
}
