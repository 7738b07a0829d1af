// Package model contains the GORM persistence models mirroring the database schema.
package model

import "time"

// UserModel mirrors the 'users' table. The database assigns ids from a sequence.
type UserModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Username       string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email          string `gorm:"type:varchar(255);uniqueIndex;not null"`
	HashedPassword string `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time

	// Deleting a user cascades to everything they own.
	Splits   []SplitModel   `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Workouts []WorkoutModel `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
