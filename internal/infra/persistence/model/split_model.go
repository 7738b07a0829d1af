package model

import "time"

// SplitModel mirrors the 'split' table.
type SplitModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	OwnerID     int64  `gorm:"not null;index"`
	CreatedAt   time.Time

	// Deleting a split cascades to its workouts, so orphans cannot exist.
	Workouts []WorkoutModel `gorm:"foreignKey:SplitID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SplitModel) TableName() string {
	return "split"
}
