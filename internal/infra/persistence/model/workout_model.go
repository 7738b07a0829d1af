package model

import "time"

// WorkoutModel mirrors the 'workout' table.
type WorkoutModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null"`
	Sets      int    `gorm:"not null"`
	Reps      int    `gorm:"not null"`
	Weight    int    `gorm:"not null"`
	OwnerID   int64  `gorm:"not null;index"`
	SplitID   int64  `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkoutModel) TableName() string {
	return "workout"
}
