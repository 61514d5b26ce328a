package model

import (
	"time"
)

// User represents the database model for users. Measurements are stored in
// centi-units (NUMERIC(5,2) semantics without floating point).
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Name         string    `gorm:"not null;size:50"`
	Username     string    `gorm:"uniqueIndex;not null;size:30"`
	Email        string    `gorm:"not null;size:50"`
	PasswordHash string    `gorm:"not null;size:100"`
	Mobile       string    `gorm:"not null;size:20"`
	DateOfBirth  time.Time `gorm:"not null;type:date"`
	Gender       string    `gorm:"not null;size:10"`
	HeightCenti  int64     `gorm:"not null"`
	WeightCenti  int64     `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
